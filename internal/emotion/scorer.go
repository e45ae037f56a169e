package emotion

import (
	"context"
	"fmt"

	"tone-backend/internal/classify"
	"tone-backend/internal/shared/metrics"
	"tone-backend/internal/shared/telemetry"
)

// Strategy scores one span of text.
type Strategy interface {
	Score(ctx context.Context, text string) (Result, error)
}

// ModelBacked scores through an emotion classifier.
type ModelBacked struct {
	Classifier classify.Classifier
}

// Score keeps only labels in the closed category set. A response with no
// known category is a failure.
func (m ModelBacked) Score(ctx context.Context, text string) (Result, error) {
	if m.Classifier == nil {
		return Result{}, classify.ErrNotConfigured
	}
	labels, err := m.Classifier.Classify(ctx, text)
	if err != nil {
		return Result{}, err
	}
	scores := make(Scores, len(labels))
	for _, l := range labels {
		if c, ok := Parse(l.Label); ok {
			scores[c] = l.Score
		}
	}
	if len(scores) == 0 {
		return Result{}, &classify.Error{Err: fmt.Errorf("no emotion categories in %d labels", len(labels))}
	}
	return Result{Scores: scores, Dominant: scores.Dominant(), Source: SourceModel}, nil
}

// LexiconBacked scores by word list and never fails.
type LexiconBacked struct {
	Lexicon Lexicon
}

// Score implements Strategy.
func (l LexiconBacked) Score(ctx context.Context, text string) (Result, error) {
	_ = ctx
	lex := l.Lexicon
	if lex == nil {
		lex = DefaultLexicon()
	}
	return lex.Score(text), nil
}

// Scorer tries the primary strategy and substitutes the lexicon when it fails.
type Scorer struct {
	primary  Strategy
	fallback LexiconBacked
}

// NewScorer builds a Scorer. A nil classifier leaves the scorer lexicon-only.
func NewScorer(classifier classify.Classifier, lexicon Lexicon) *Scorer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	s := &Scorer{fallback: LexiconBacked{Lexicon: lexicon}}
	if classifier != nil {
		s.primary = ModelBacked{Classifier: classifier}
	}
	return s
}

// Score never fails.
func (s *Scorer) Score(ctx context.Context, text string) Result {
	if s.primary != nil {
		res, err := s.primary.Score(ctx, text)
		if err == nil {
			return res
		}
		metrics.IncEmotionFallback()
		telemetry.Warn("emotion.fallback", map[string]any{
			"err":      err,
			"text_len": len(text),
		})
	}
	res, _ := s.fallback.Score(ctx, text)
	return res
}
