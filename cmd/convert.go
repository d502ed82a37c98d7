/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/ocr-be/config"
	"github.com/tieubaoca/ocr-be/service"
	"github.com/tieubaoca/ocr-be/types"
	"github.com/tieubaoca/ocr-be/utils"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a local document to DOCX without starting the server",
	Long: `Runs the OCR pipeline once against a local PDF or image file and
writes the assembled DOCX next to it (or to the path given with -o).`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		outPath, _ := cmd.Flags().GetString("output")
		if filePath == "" {
			log.Fatal("No input file given, use -f")
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if cfg.APIKey() == "" {
			log.Fatalf("Not configured: %v", types.ErrMissingAPIKey)
		}

		backend, err := service.NewOCRBackend(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to create OCR backend: %v", err)
		}
		if closer, ok := backend.(io.Closer); ok {
			defer closer.Close()
		}

		fileService := service.NewFileService(cfg.UploadDir)
		pipeline := service.NewPipelineService(
			service.NewPageService(cfg.DPI),
			backend,
			service.NewDocxService(),
			fileService,
			service.PromptForStyle(cfg.PromptStyle),
			time.Duration(cfg.RequestTimeout)*time.Second,
		)

		src, err := os.Open(filePath)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", filePath, err)
		}

		// Save copies the input into the upload dir; the pipeline deletes
		// that copy, the original stays untouched.
		doc, err := fileService.Save(src, filePath)
		src.Close()
		if err != nil {
			log.Fatalf("Failed to stage %s: %v", filePath, err)
		}

		output, err := pipeline.Process(context.Background(), doc)
		if err != nil {
			log.Fatalf("Failed to convert %s: %v", filePath, err)
		}

		if outPath == "" {
			outPath = utils.OutputFileName(filePath, cfg.OutputSuffix)
		}
		if err := os.WriteFile(outPath, output, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", outPath, err)
		}
		log.Printf("Wrote %s", outPath)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("file", "f", "", "Path to the file to convert")
	convertCmd.Flags().StringP("output", "o", "", "Path for the output DOCX")
}
