package suggestions

import (
	"context"
	"errors"
	"testing"

	"tone-backend/internal/analysis"
	"tone-backend/internal/emotion"
	"tone-backend/internal/phrasebook"
)

type stubAnalyzer struct {
	doc   analysis.DocumentAnalysis
	err   error
	calls int
}

func (s *stubAnalyzer) AnalyzeDocument(ctx context.Context, text string) (analysis.DocumentAnalysis, error) {
	s.calls++
	return s.doc, s.err
}

func records(pairs ...string) []analysis.SentenceRecord {
	out := make([]analysis.SentenceRecord, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, analysis.SentenceRecord{
			Text:     pairs[i],
			Emotions: emotion.Result{Dominant: emotion.Category(pairs[i+1])},
		})
	}
	return out
}

func texts(recs []analysis.SentenceRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Text
	}
	return out
}

func TestSelectSentences(t *testing.T) {
	tests := []struct {
		name    string
		records []analysis.SentenceRecord
		want    []string
	}{
		{
			name:    "four mismatches capped at three",
			records: records("a", "sadness", "b", "joy", "c", "fear", "d", "anger", "e", "neutral"),
			want:    []string{"a", "c", "d"},
		},
		{
			name:    "no mismatches takes first two",
			records: records("a", "joy", "b", "joy", "c", "joy", "d", "joy", "e", "joy"),
			want:    []string{"a", "b"},
		},
		{
			name:    "no mismatches with one sentence",
			records: records("a", "joy"),
			want:    []string{"a"},
		},
		{
			name:    "mismatches kept as is",
			records: records("a", "joy", "b", "fear", "c", "joy"),
			want:    []string{"b"},
		},
		{
			name:    "empty",
			records: nil,
			want:    []string{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := texts(SelectSentences(tt.records, "joy"))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSuggestUsesPatternWithoutGenerator(t *testing.T) {
	an := &stubAnalyzer{doc: analysis.DocumentAnalysis{
		DocumentEmotions: emotion.Result{Dominant: emotion.Sadness},
		Sentences:        records("It was a good day.", "sadness", "He ran.", "neutral"),
	}}
	svc := NewService(an, phrasebook.Builtin(), nil, "moderate")
	res, err := svc.Suggest(context.Background(), Request{Text: "It was a good day. He ran.", TargetEmotion: " JOY "})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if res.TargetEmotion != "joy" || res.CurrentDominant != emotion.Sadness {
		t.Fatalf("unexpected header %+v", res)
	}
	if len(res.Specific) != 2 {
		t.Fatalf("expected 2 suggestions, got %+v", res.Specific)
	}
	first := res.Specific[0]
	if first.Improved != "It was a wonderful perfect day." || first.Method != MethodPattern {
		t.Fatalf("unexpected first suggestion %+v", first)
	}
	if first.Emotion.Current != emotion.Sadness || first.Emotion.Target != "joy" {
		t.Fatalf("unexpected emotion change %+v", first.Emotion)
	}
	if res.Specific[1].Improved != "He ran, filling the moment with pure happiness." {
		t.Fatalf("unexpected second suggestion %+v", res.Specific[1])
	}
	if len(res.General) != 3 {
		t.Fatalf("expected 3 general suggestions, got %v", res.General)
	}
}

func TestSuggestPrefersGeneratorAndFallsBack(t *testing.T) {
	an := &stubAnalyzer{doc: analysis.DocumentAnalysis{
		Sentences: records("He ran.", "neutral"),
	}}
	gen := &fakeGenerator{out: `"He sprinted with glee!"`}
	svc := NewService(an, phrasebook.Builtin(), ServiceRewriter{Generator: gen}, "moderate")

	res, err := svc.Suggest(context.Background(), Request{Text: "He ran.", TargetEmotion: "joy", Intensity: "strong"})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if res.Specific[0].Improved != "He sprinted with glee!" || res.Specific[0].Method != MethodGeneration {
		t.Fatalf("unexpected generation result %+v", res.Specific[0])
	}

	gen.err = errors.New("quota exceeded")
	res, err = svc.Suggest(context.Background(), Request{Text: "He ran.", TargetEmotion: "joy"})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if res.Specific[0].Method != MethodPattern {
		t.Fatalf("expected pattern fallback, got %+v", res.Specific[0])
	}
}

func TestSuggestInvalidInput(t *testing.T) {
	an := &stubAnalyzer{}
	svc := NewService(an, phrasebook.Builtin(), nil, "moderate")
	for _, req := range []Request{
		{Text: "", TargetEmotion: "joy"},
		{Text: "Hello.", TargetEmotion: "  "},
		{Text: " \n ", TargetEmotion: "joy"},
	} {
		if _, err := svc.Suggest(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", req, err)
		}
	}
	if an.calls != 0 {
		t.Fatalf("analysis must not run on invalid input")
	}
}

func TestSuggestPropagatesAnalysisFailure(t *testing.T) {
	boom := errors.New("sentiment down")
	svc := NewService(&stubAnalyzer{err: boom}, phrasebook.Builtin(), nil, "moderate")
	if _, err := svc.Suggest(context.Background(), Request{Text: "x", TargetEmotion: "joy"}); !errors.Is(err, boom) {
		t.Fatalf("expected analysis error, got %v", err)
	}
}
