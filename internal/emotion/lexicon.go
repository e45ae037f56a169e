package emotion

import "tone-backend/internal/classify"

// Lexicon maps lower-case words to the category they signal.
type Lexicon map[string]Category

// DefaultLexicon returns the built-in word list.
func DefaultLexicon() Lexicon {
	return Lexicon{
		"happy":      Joy,
		"content":    Joy,
		"sad":        Sadness,
		"miserable":  Sadness,
		"angry":      Anger,
		"furious":    Anger,
		"afraid":     Fear,
		"terrified":  Fear,
		"surprised":  Surprise,
		"astonished": Surprise,
		"disgusted":  Disgust,
		"revolted":   Disgust,
	}
}

// Score counts lexicon hits and turns them into proportions. Every category
// is present in the returned scores. With no hits all scores are zero and the
// dominant category is Neutral.
func (l Lexicon) Score(text string) Result {
	counts := make(map[Category]float64, len(Categories))
	var total float64
	for _, w := range classify.Words(text) {
		if c, ok := l[w]; ok {
			counts[c]++
			total++
		}
	}

	scores := make(Scores, len(Categories))
	for _, c := range Categories {
		if total > 0 {
			scores[c] = counts[c] / total
		} else {
			scores[c] = 0
		}
	}
	dominant := Neutral
	if total > 0 {
		dominant = scores.Dominant()
	}
	return Result{Scores: scores, Dominant: dominant, Source: SourceLexicon}
}
