// Package sentiment scores text as positive or negative.
package sentiment

import (
	"context"

	"tone-backend/internal/classify"
)

const (
	Positive = "positive"
	Negative = "negative"
)

// Result carries the per-label confidences and the overall verdict.
type Result struct {
	Scores  map[string]float64 `json:"scores"`
	Overall string             `json:"overall_sentiment"`
}

// Scorer wraps a two-label classifier.
type Scorer struct {
	classifier classify.Classifier
}

// NewScorer builds a Scorer on c.
func NewScorer(c classify.Classifier) *Scorer {
	if c == nil {
		c = classify.Placeholder{}
	}
	return &Scorer{classifier: c}
}

// Score classifies text. Overall is positive only when the positive score
// strictly exceeds the negative one; a missing label counts as zero.
func (s *Scorer) Score(ctx context.Context, text string) (Result, error) {
	labels, err := s.classifier.Classify(ctx, text)
	if err != nil {
		if classify.IsFailure(err) {
			return Result{}, err
		}
		return Result{}, &classify.Error{Err: err}
	}
	scores := make(map[string]float64, len(labels))
	for _, l := range labels {
		scores[classify.NormalizeLabel(l.Label)] = l.Score
	}
	overall := Negative
	if scores[Positive] > scores[Negative] {
		overall = Positive
	}
	return Result{Scores: scores, Overall: overall}, nil
}
