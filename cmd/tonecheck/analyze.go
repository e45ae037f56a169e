package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Analyse the emotional tone of a manuscript",
	Long: `Analyse a plain text, Markdown, PDF or DOCX manuscript ("-" reads stdin).

Examples:
  tonecheck analyze story.txt          # Console report
  tonecheck analyze story.pdf --json   # Full analysis as JSON`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().Bool("json", false, "output the full analysis as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	text, err := readManuscript(ctx, args[0])
	if err != nil {
		return err
	}
	app, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.AnalysisService.AnalyzeDocument(ctx, text)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return writeReport(os.Stdout, result)
}
