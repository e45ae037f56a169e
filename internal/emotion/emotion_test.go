package emotion

import (
	"context"
	"errors"
	"math"
	"testing"

	"tone-backend/internal/classify"
)

func TestDominantTieBreaksByCanonicalOrder(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		want   Category
	}{
		{name: "clear max", scores: Scores{Joy: 0.1, Fear: 0.8}, want: Fear},
		{name: "tie", scores: Scores{Surprise: 0.5, Sadness: 0.5}, want: Sadness},
		{name: "empty", scores: Scores{}, want: Neutral},
		{name: "neutral wins", scores: Scores{Neutral: 0.9, Joy: 0.05}, want: Neutral},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scores.Dominant(); got != tt.want {
				t.Fatalf("Dominant() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLexiconScore(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		dominant Category
		check    Category
		want     float64
	}{
		{name: "single hit", text: "She was happy.", dominant: Joy, check: Joy, want: 1},
		{name: "split", text: "Happy but afraid, so afraid.", dominant: Fear, check: Joy, want: 1.0 / 3.0},
		{name: "tie", text: "Sad and angry", dominant: Sadness, check: Anger, want: 0.5},
		{name: "no hits", text: "The cat sat on the mat.", dominant: Neutral, check: Joy, want: 0},
		{name: "case folded", text: "FURIOUS", dominant: Anger, check: Anger, want: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res := DefaultLexicon().Score(tt.text)
			if res.Dominant != tt.dominant {
				t.Fatalf("dominant = %s, want %s", res.Dominant, tt.dominant)
			}
			if math.Abs(res.Scores[tt.check]-tt.want) > 1e-9 {
				t.Fatalf("score[%s] = %v, want %v", tt.check, res.Scores[tt.check], tt.want)
			}
			if len(res.Scores) != len(Categories) {
				t.Fatalf("expected every category scored, got %d", len(res.Scores))
			}
			if total := res.Scores.Total(); total > 0 && math.Abs(total-1) > 1e-9 {
				t.Fatalf("expected proportions to sum to 1, got %v", total)
			}
			if res.Source != SourceLexicon {
				t.Fatalf("unexpected source %q", res.Source)
			}
		})
	}
}

func TestScorerFallsBackOnFailure(t *testing.T) {
	failing := classify.Func(func(ctx context.Context, text string) ([]classify.Label, error) {
		return nil, errors.New("model down")
	})
	res := NewScorer(failing, nil).Score(context.Background(), "I am terrified.")
	if res.Dominant != Fear || res.Source != SourceLexicon {
		t.Fatalf("expected lexicon fear, got %+v", res)
	}
}

func TestScorerFallsBackOnUnknownLabels(t *testing.T) {
	odd := classify.Func(func(ctx context.Context, text string) ([]classify.Label, error) {
		return []classify.Label{{Label: "LABEL_0", Score: 0.9}}, nil
	})
	res := NewScorer(odd, nil).Score(context.Background(), "Nothing to see.")
	if res.Dominant != Neutral || res.Source != SourceLexicon {
		t.Fatalf("expected lexicon neutral, got %+v", res)
	}
}

func TestScorerUsesModel(t *testing.T) {
	model := classify.Func(func(ctx context.Context, text string) ([]classify.Label, error) {
		return []classify.Label{
			{Label: "Joy", Score: 0.2},
			{Label: "sadness", Score: 0.7},
			{Label: "other", Score: 0.1},
		}, nil
	})
	res := NewScorer(model, nil).Score(context.Background(), "I am happy.")
	if res.Dominant != Sadness || res.Source != SourceModel {
		t.Fatalf("expected model sadness, got %+v", res)
	}
	if _, ok := res.Scores["other"]; ok {
		t.Fatalf("unknown label should be dropped")
	}
}

func TestNilClassifierIsLexiconOnly(t *testing.T) {
	res := NewScorer(nil, nil).Score(context.Background(), "so disgusted")
	if res.Dominant != Disgust {
		t.Fatalf("expected disgust, got %s", res.Dominant)
	}
}

func TestParseAndColor(t *testing.T) {
	if c, ok := Parse(" SURPRISE "); !ok || c != Surprise {
		t.Fatalf("expected surprise, got %q %v", c, ok)
	}
	if _, ok := Parse("love"); ok {
		t.Fatalf("love is not a category")
	}
	if Joy.Color() != "green" || Neutral.Color() != "gray" {
		t.Fatalf("unexpected palette")
	}
}
