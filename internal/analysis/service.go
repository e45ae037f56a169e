package analysis

import (
	"context"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"tone-backend/internal/emotion"
	"tone-backend/internal/segment"
	"tone-backend/internal/sentiment"
	"tone-backend/internal/shared/metrics"
	"tone-backend/internal/shared/telemetry"
	"tone-backend/internal/shared/util"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)


// Service runs the multi-level analysis pipeline. Its collaborators are
// constructed once and shared read-only across calls.
type Service struct {
	Segmenter *segment.Segmenter
	Sentiment *sentiment.Scorer
	Emotions  *emotion.Scorer
	// CacheSize bounds the per-call memo of scored spans. Zero disables it.
	CacheSize int
}

// NewService constructs a Service.
func NewService(seg *segment.Segmenter, sent *sentiment.Scorer, emo *emotion.Scorer, cacheSize int) *Service {
	return &Service{Segmenter: seg, Sentiment: sent, Emotions: emo, CacheSize: cacheSize}
}

type scored struct {
	sentiment sentiment.Result
	emotions  emotion.Result
}

// AnalyzeDocument scores the whole text, each sentence and each paragraph,
// then derives shifts, consistency, arc and profile. Blank text yields empty
// sentence and paragraph records and a consistent report. A sentiment failure
// anywhere fails the whole call.
func (s *Service) AnalyzeDocument(ctx context.Context, text string) (DocumentAnalysis, error) {
	start := time.Now()
	result, err := s.analyze(ctx, text)
	if err != nil {
		metrics.ObserveAnalysis(StatusFailed, time.Since(start))
		telemetry.Error("analysis.failed", map[string]any{
			"err":      err,
			"text_len": len(text),
		})
		return DocumentAnalysis{}, err
	}
	elapsed := time.Since(start)
	metrics.ObserveAnalysis(StatusCompleted, elapsed)
	telemetry.Info("analysis.complete", map[string]any{
		"sentences":   len(result.Sentences),
		"paragraphs":  len(result.Paragraphs),
		"shifts":      len(result.Shifts),
		"consistent":  result.Consistency.IsConsistent,
		"duration_ms": elapsed.Milliseconds(),
	})
	return result, nil
}

func (s *Service) analyze(ctx context.Context, text string) (DocumentAnalysis, error) {
	memo := s.newMemo()
	segments := s.Segmenter.Segment(text)

	doc, err := s.score(ctx, memo, text)
	if err != nil {
		return DocumentAnalysis{}, err
	}
	sentences, err := s.scoreSentences(ctx, memo, segments.Sentences)
	if err != nil {
		return DocumentAnalysis{}, err
	}

	paragraphs := make([]ParagraphRecord, 0, len(segments.Paragraphs))
	for _, p := range segments.Paragraphs {
		sc, err := s.score(ctx, memo, p)
		if err != nil {
			return DocumentAnalysis{}, err
		}
		nested, err := s.scoreSentences(ctx, memo, s.Segmenter.Sentences(p))
		if err != nil {
			return DocumentAnalysis{}, err
		}
		paragraphs = append(paragraphs, ParagraphRecord{
			Text:      p,
			Sentiment: sc.sentiment,
			Emotions:  sc.emotions,
			Sentences: nested,
		})
	}

	return DocumentAnalysis{
		DocumentSentiment: doc.sentiment,
		DocumentEmotions:  doc.emotions,
		Sentences:         sentences,
		Paragraphs:        paragraphs,
		Shifts:            DetectShifts(sentences),
		Consistency:       CheckConsistency(paragraphs),
		Arc:               BuildArc(sentences),
		Profile:           BuildProfile(sentences),
	}, nil
}

func (s *Service) scoreSentences(ctx context.Context, memo *lru.Cache[string, scored], sentences []string) ([]SentenceRecord, error) {
	records := make([]SentenceRecord, 0, len(sentences))
	for _, sent := range sentences {
		if strings.TrimSpace(sent) == "" {
			continue
		}
		sc, err := s.score(ctx, memo, sent)
		if err != nil {
			return nil, err
		}
		records = append(records, SentenceRecord{
			Text:      sent,
			Sentiment: sc.sentiment,
			Emotions:  sc.emotions,
		})
	}
	return records, nil
}

func (s *Service) score(ctx context.Context, memo *lru.Cache[string, scored], text string) (scored, error) {
	key := util.HashText(text)
	if memo != nil {
		if hit, ok := memo.Get(key); ok {
			return hit, nil
		}
	}
	sent, err := s.Sentiment.Score(ctx, text)
	if err != nil {
		return scored{}, err
	}
	out := scored{sentiment: sent, emotions: s.Emotions.Score(ctx, text)}
	if memo != nil {
		memo.Add(key, out)
	}
	return out, nil
}

func (s *Service) newMemo() *lru.Cache[string, scored] {
	if s.CacheSize <= 0 {
		return nil
	}
	memo, err := lru.New[string, scored](s.CacheSize)
	if err != nil {
		return nil
	}
	return memo
}
