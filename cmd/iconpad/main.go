package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/phambaophuc/icon-padding/internal/config"
	"github.com/phambaophuc/icon-padding/internal/models"
	"github.com/phambaophuc/icon-padding/internal/services/processor"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.Log.Level)
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	code := run(cfg, logger, os.Stdout, os.Stderr)
	logger.Sync()
	os.Exit(code)
}

// run pads the configured icon and reports the outcome. It returns the
// process exit code.
func run(cfg *config.Config, logger *zap.Logger, stdout, stderr io.Writer) int {
	req := &models.PaddingRequest{
		InputPath:      cfg.Icon.InputPath,
		OutputPath:     cfg.Icon.OutputPath,
		PaddingPercent: cfg.Icon.PaddingPercent,
	}

	result, err := processor.NewImageProcessor(logger).Pad(req)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	printReport(stdout, result)
	return 0
}

func printReport(w io.Writer, result *models.PaddingResult) {
	l := result.Layout
	fmt.Fprintf(w, "✓ Created padded icon: %s\n", result.OutputPath)
	fmt.Fprintf(w, "  Original size: %dx%d\n", l.OriginalWidth, l.OriginalHeight)
	fmt.Fprintf(w, "  New size: %dx%d\n", l.NewWidth, l.NewHeight)
	fmt.Fprintf(w, "  Padding: %g%% (%dpx horizontal, %dpx vertical)\n", result.PaddingPercent, l.PaddingX, l.PaddingY)
}
