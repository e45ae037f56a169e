package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tone-backend/internal/bootstrap"
	"tone-backend/internal/extract"
	"tone-backend/internal/shared/config"
	"tone-backend/internal/shared/telemetry"
)

var (
	colorMode string
	verbose   bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tonecheck",
	Short: "Emotional tone analysis for manuscripts",
	Long: `tonecheck scores the sentiment and emotions of a manuscript, reports
shifts and paragraph inconsistencies, and proposes sentence rewrites toward
a target emotion.

Example usage:
  tonecheck analyze chapter1.txt
  tonecheck analyze chapter1.docx --json
  tonecheck suggest chapter1.txt --target joy --intensity subtle
  tonecheck phrasebook seed`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initCLI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always or never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write service logs to stderr")
}

func initCLI() error {
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
	default:
		return fmt.Errorf("invalid color mode %q: must be auto, always, or never", colorMode)
	}
	if verbose {
		telemetry.SetOutput(os.Stderr)
	} else {
		telemetry.SetOutput(io.Discard)
	}
	cfg = config.Load()
	return nil
}

func buildApp(ctx context.Context) (*bootstrap.App, error) {
	return bootstrap.Build(ctx, cfg)
}

// readManuscript loads path, or stdin for "-", extracting text from PDF and DOCX files.
func readManuscript(ctx context.Context, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx":
		return extract.ExtractTextFromBytes(ctx, data, "", filepath.Base(path))
	default:
		return extract.ExtractTextFromBytes(ctx, data, "text/plain", filepath.Base(path))
	}
}
