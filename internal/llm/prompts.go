package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/rewrite.txt
var rewritePrompt string

// RewritePrompt fills the sentence rewrite template.
func RewritePrompt(original, targetEmotion, intensity string) string {
	if strings.TrimSpace(intensity) == "" {
		intensity = "moderate"
	}
	r := strings.NewReplacer(
		"{{TARGET_EMOTION}}", targetEmotion,
		"{{INTENSITY}}", intensity,
		"{{ORIGINAL}}", original,
	)
	return r.Replace(strings.TrimRight(rewritePrompt, "\n"))
}
