package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tone-backend/internal/suggestions"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest FILE",
	Short: "Propose rewrites toward a target emotion",
	Long: `Propose sentence rewrites and general advice that move a manuscript
toward a target emotion.

Examples:
  tonecheck suggest story.txt --target joy
  tonecheck suggest story.txt --target fear --intensity strong --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().String("target", "", "target emotion (required)")
	suggestCmd.Flags().String("intensity", "", "rewrite intensity: subtle, moderate or strong")
	suggestCmd.Flags().Bool("json", false, "output the suggestions as JSON")
	_ = suggestCmd.MarkFlagRequired("target")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	target, _ := cmd.Flags().GetString("target")
	intensity, _ := cmd.Flags().GetString("intensity")
	intensity = strings.ToLower(strings.TrimSpace(intensity))
	switch intensity {
	case "", "subtle", "moderate", "strong":
	default:
		return fmt.Errorf("invalid intensity %q: must be subtle, moderate, or strong", intensity)
	}

	text, err := readManuscript(ctx, args[0])
	if err != nil {
		return err
	}
	app, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.SuggestionsService.Suggest(ctx, suggestions.Request{
		Text:          text,
		TargetEmotion: target,
		Intensity:     intensity,
	})
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return writeSuggestions(os.Stdout, result)
}
