package suggestions

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"tone-backend/internal/llm"
	"tone-backend/internal/phrasebook"
)

// Rewriter turns a sentence into one that better expresses target.
type Rewriter interface {
	Rewrite(ctx context.Context, sentence, target, intensity string) (string, error)
}

// ServiceRewriter asks a text generation service for the rewrite.
type ServiceRewriter struct {
	Generator llm.Generator
	Config    llm.GenerationConfig
}

// Rewrite implements Rewriter.
func (s ServiceRewriter) Rewrite(ctx context.Context, sentence, target, intensity string) (string, error) {
	if s.Generator == nil {
		return "", llm.ErrNotConfigured
	}
	out, err := s.Generator.Complete(ctx, llm.RewritePrompt(sentence, target, intensity), s.Config)
	if err != nil {
		return "", err
	}
	return StripQuotes(out), nil
}

// StripQuotes removes a wrapping pair of double quotes, or a single dangling
// one at either end.
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	starts := strings.HasPrefix(s, `"`)
	ends := strings.HasSuffix(s, `"`)
	switch {
	case starts && ends && len(s) >= 2:
		return s[1 : len(s)-1]
	case starts:
		return s[1:]
	case ends:
		return s[:len(s)-1]
	default:
		return s
	}
}

// PatternRewriter applies phrasebook replacements and, when they change too
// little, appends the target's closing clause. It never fails.
type PatternRewriter struct {
	Tables phrasebook.Tables

	mu       sync.Mutex
	compiled map[string]*regexp.Regexp
}

// NewPatternRewriter constructs a PatternRewriter over tables.
func NewPatternRewriter(tables phrasebook.Tables) *PatternRewriter {
	return &PatternRewriter{Tables: tables, compiled: map[string]*regexp.Regexp{}}
}

// Apply runs the replacements in table order on the progressively rewritten
// sentence.
func (p *PatternRewriter) Apply(sentence, target string) string {
	improved := sentence
	for _, r := range p.Tables.ReplacementsFor(target) {
		improved = p.pattern(r.Phrase).ReplaceAllLiteralString(improved, r.With)
	}
	if improved == sentence || addedWords(sentence, improved) < 2 {
		improved = strings.TrimRight(improved, ".") + p.Tables.EndingFor(target)
	}
	return improved
}

func (p *PatternRewriter) pattern(phrase string) *regexp.Regexp {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.compiled == nil {
		p.compiled = map[string]*regexp.Regexp{}
	}
	if re, ok := p.compiled[phrase]; ok {
		return re
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(phrase))
	p.compiled[phrase] = re
	return re
}

// addedWords counts distinct whitespace-separated words in improved that do
// not appear in original.
func addedWords(original, improved string) int {
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(original) {
		seen[w] = struct{}{}
	}
	added := make(map[string]struct{})
	for _, w := range strings.Fields(improved) {
		if _, ok := seen[w]; !ok {
			added[w] = struct{}{}
		}
	}
	return len(added)
}
