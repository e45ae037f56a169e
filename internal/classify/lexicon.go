package classify

import (
	"context"
	"strings"
	"unicode"
)

var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "happy": {}, "love": {}, "wonderful": {}, "beautiful": {},
	"nice": {}, "joy": {}, "delight": {}, "bright": {}, "excellent": {}, "kind": {},
	"warm": {}, "glad": {}, "perfect": {}, "hope": {}, "smiled": {}, "laughed": {},
	"content": {}, "calm": {}, "pleasant": {}, "brilliant": {}, "amazing": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "sad": {}, "angry": {}, "hate": {}, "terrible": {}, "awful": {},
	"dark": {}, "miserable": {}, "afraid": {}, "cold": {}, "cruel": {}, "grief": {},
	"storm": {}, "pain": {}, "lonely": {}, "furious": {}, "terrified": {}, "cried": {},
	"gloomy": {}, "horrible": {}, "broken": {}, "fear": {}, "worse": {},
}

// LexiconSentiment is a local positive/negative classifier for development
// environments without model access. Scores are Laplace-smoothed word counts.
type LexiconSentiment struct{}

// Classify returns positive and negative labels that sum to one.
func (LexiconSentiment) Classify(ctx context.Context, text string) ([]Label, error) {
	_ = ctx
	var pos, neg float64
	for _, w := range Words(text) {
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
	}
	p := (pos + 1) / (pos + neg + 2)
	return []Label{
		{Label: "positive", Score: p},
		{Label: "negative", Score: 1 - p},
	}, nil
}

// Words lower-cases text and splits it into word tokens, keeping
// hyphenated compounds whole.
func Words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
}
