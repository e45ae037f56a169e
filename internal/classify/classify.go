// Package classify defines the text classification capability consumed by the
// sentiment and emotion scorers.
package classify

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned by classifiers that have no backing model.
var ErrNotConfigured = errors.New("classifier not configured")

// Label is one class with the model's confidence for it.
type Label struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier returns per-label confidences for a span of text.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]Label, error)
}

// Func adapts a plain function to Classifier.
type Func func(ctx context.Context, text string) ([]Label, error)

// Classify calls f.
func (f Func) Classify(ctx context.Context, text string) ([]Label, error) {
	return f(ctx, text)
}

// Placeholder always fails with ErrNotConfigured.
type Placeholder struct{}

// Classify returns ErrNotConfigured.
func (Placeholder) Classify(ctx context.Context, text string) ([]Label, error) {
	_ = ctx
	_ = text
	return nil, ErrNotConfigured
}

// Error reports a failed classification call.
type Error struct {
	Model string
	Err   error
}

func (e *Error) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("classification failed: %v", e.Err)
	}
	return fmt.Sprintf("classification failed (%s): %v", e.Model, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsFailure reports whether err is a classification failure.
func IsFailure(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// NormalizeLabel lower-cases and trims a model label.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
