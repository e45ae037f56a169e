// Package suggestions proposes sentence rewrites and general advice that move
// a text toward a target emotion.
package suggestions

import (
	"context"
	"errors"
	"strings"

	"tone-backend/internal/analysis"
	"tone-backend/internal/phrasebook"
	"tone-backend/internal/shared/metrics"
	"tone-backend/internal/shared/telemetry"
)

// ErrInvalidInput is returned when text or target emotion is missing.
var ErrInvalidInput = errors.New("text and target emotion are required")

// Analyzer produces the document analysis used to pick sentences.
type Analyzer interface {
	AnalyzeDocument(ctx context.Context, text string) (analysis.DocumentAnalysis, error)
}

// Service builds suggestion results.
type Service struct {
	Analyzer         Analyzer
	Tables           phrasebook.Tables
	Primary          Rewriter
	Fallback         *PatternRewriter
	DefaultIntensity string
}

// NewService wires a Service. A nil primary rewriter leaves pattern rewriting
// as the only strategy.
func NewService(analyzer Analyzer, tables phrasebook.Tables, primary Rewriter, defaultIntensity string) *Service {
	return &Service{
		Analyzer:         analyzer,
		Tables:           tables,
		Primary:          primary,
		Fallback:         NewPatternRewriter(tables),
		DefaultIntensity: defaultIntensity,
	}
}

// Suggest analyzes req.Text, rewrites the selected sentences and attaches the
// general advice for the target emotion.
func (s *Service) Suggest(ctx context.Context, req Request) (Result, error) {
	text := strings.TrimSpace(req.Text)
	target := strings.ToLower(strings.TrimSpace(req.TargetEmotion))
	if text == "" || target == "" {
		metrics.IncSuggestions("invalid")
		return Result{}, ErrInvalidInput
	}
	intensity := strings.ToLower(strings.TrimSpace(req.Intensity))
	if intensity == "" {
		intensity = s.DefaultIntensity
	}

	doc, err := s.Analyzer.AnalyzeDocument(ctx, text)
	if err != nil {
		metrics.IncSuggestions("failed")
		return Result{}, err
	}

	selected := SelectSentences(doc.Sentences, target)
	specific := make([]Specific, 0, len(selected))
	for _, rec := range selected {
		improved, method := s.rewrite(ctx, rec.Text, target, intensity)
		specific = append(specific, Specific{
			Original: rec.Text,
			Improved: improved,
			Emotion:  EmotionChange{Current: rec.Emotions.Dominant, Target: target},
			Method:   method,
		})
	}

	general := append([]string(nil), s.Tables.GeneralFor(target)...)
	if general == nil {
		general = []string{}
	}
	metrics.IncSuggestions("completed")
	return Result{
		CurrentDominant: doc.DocumentEmotions.Dominant,
		TargetEmotion:   target,
		Specific:        specific,
		General:         general,
	}, nil
}

func (s *Service) rewrite(ctx context.Context, sentence, target, intensity string) (string, string) {
	if s.Primary != nil {
		out, err := s.Primary.Rewrite(ctx, sentence, target, intensity)
		if err == nil && strings.TrimSpace(out) != "" {
			metrics.IncRewrite(MethodGeneration)
			return out, MethodGeneration
		}
		telemetry.Warn("rewrite.fallback", map[string]any{
			"err":    err,
			"target": target,
		})
	}
	fallback := s.Fallback
	if fallback == nil {
		fallback = NewPatternRewriter(s.Tables)
	}
	metrics.IncRewrite(MethodPattern)
	return fallback.Apply(sentence, target), MethodPattern
}
