// Package segment splits prose into paragraphs and sentences.
package segment

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

var blankLine = regexp.MustCompile(`\n\s*\n`)

// Segments is the ordered output of one segmentation.
type Segments struct {
	Sentences  []string `json:"sentences"`
	Paragraphs []string `json:"paragraphs"`
}

// Segmenter wraps an English punkt sentence tokenizer. It is safe for
// concurrent use once constructed.
type Segmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// New loads the English punkt model.
func New() (*Segmenter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence tokenizer: %w", err)
	}
	return &Segmenter{tokenizer: tok}, nil
}

// Segment returns the sentences and paragraphs of text. Blank input yields
// empty sequences.
func (s *Segmenter) Segment(text string) Segments {
	return Segments{
		Sentences:  s.Sentences(text),
		Paragraphs: SplitParagraphs(text),
	}
}

// Sentences splits text into trimmed, whitespace-collapsed sentences.
func (s *Segmenter) Sentences(text string) []string {
	normalized := NormalizeSpace(text)
	if normalized == "" {
		return []string{}
	}
	out := make([]string, 0, 8)
	for _, sent := range s.tokenizer.Tokenize(normalized) {
		if t := NormalizeSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		out = append(out, normalized)
	}
	return out
}

// SplitParagraphs splits on runs of blank lines and drops empty spans.
func SplitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	out := []string{}
	for _, p := range blankLine.Split(text, -1) {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// NormalizeSpace trims text and collapses internal whitespace runs to one space.
func NormalizeSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
