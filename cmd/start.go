/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/ocr-be/config"
	"github.com/tieubaoca/ocr-be/handler"
	"github.com/tieubaoca/ocr-be/service"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the OCR conversion server",
	Long:  `Starts a server that accepts document uploads and returns OCRed DOCX files`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		backend, err := service.NewOCRBackend(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to create OCR backend: %v", err)
		}
		if closer, ok := backend.(io.Closer); ok {
			defer closer.Close()
		}

		pageService := service.NewPageService(cfg.DPI)
		docxService := service.NewDocxService()
		fileService := service.NewFileService(cfg.UploadDir)
		pipeline := service.NewPipelineService(
			pageService,
			backend,
			docxService,
			fileService,
			service.PromptForStyle(cfg.PromptStyle),
			time.Duration(cfg.RequestTimeout)*time.Second,
		)

		wsManager := service.NewWebSocketManager()
		wsManager.Start()
		pipeline.SetNotifier(wsManager.BroadcastJobUpdate)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		indexHandler := handler.NewIndexHandler()
		convertHandler := handler.NewConvertHandler(cfg, fileService, pipeline)
		wsHandler := handler.NewWsHandler(wsManager)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		router.GET("/", indexHandler.HandleIndex)
		router.POST("/upload", convertHandler.HandleConvert)
		router.GET("/ws", wsHandler.HandleProgress)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
