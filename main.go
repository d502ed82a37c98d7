/*
Copyright © 2025 tieubaoca
*/
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/tieubaoca/ocr-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is for local development only, its absence is fine
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}
}
