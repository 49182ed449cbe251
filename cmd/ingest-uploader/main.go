package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/unleashai/inquiries-backend/internal/builder"
	"github.com/unleashai/inquiries-backend/internal/config"
	"github.com/unleashai/inquiries-backend/internal/uploader"
	"go.uber.org/zap"
)

func main() {
	filePath := flag.String("file", "", "Path to the CSV file to ingest (required)")
	startBatch := flag.Int("start-batch", -1, "Batch index to resume from (overrides UPLOADER_START_BATCH)")
	environment := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: ingest-uploader -file <path/to/data.csv> [-start-batch N] [-env local]")
		os.Exit(1)
	}

	cfg, err := config.LoadUploaderConfig(*environment)
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if *startBatch >= 0 {
		cfg.StartBatch = *startBatch
	}

	logger, err := builder.SetupLogger(cfg.LogLevel)
	if err != nil {
		color.Red("Failed to set up logger: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	up := uploader.New(*cfg, logger, uploader.WithProgress(printProgress))

	color.Cyan("Uploading %s (batch size %d, starting at batch %d)", *filePath, cfg.BatchSize, cfg.StartBatch+1)

	if err := up.Run(context.Background(), *filePath); err != nil {
		logger.Error("upload failed", zap.Error(err))
		color.Red("Upload failed: %v", err)
		os.Exit(1)
	}

	color.Green("All batches uploaded successfully")
}

func printProgress(p uploader.Progress) {
	color.Yellow("Batch %d of %d (%d records sent) - %q", p.Batch, p.TotalBatches, p.Sent, p.Preview)
}
