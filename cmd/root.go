/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ocr-be",
	Short: "Convert scanned documents to DOCX with multimodal LLM OCR",
	Long: `ocr-be takes a PDF or image, renders each page, sends every page image
to a multimodal language model for OCR and assembles the extracted text
into a downloadable DOCX document.

Run "ocr-be start" for the upload server or "ocr-be convert" for a
one-shot conversion of a local file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
