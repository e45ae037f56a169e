package suggestions

import "tone-backend/internal/analysis"

const (
	maxRewrites     = 3
	defaultRewrites = 2
)

// SelectSentences picks the sentences worth rewriting: those whose dominant
// emotion differs from target, capped at three. When every sentence already
// matches, the first two are returned instead.
func SelectSentences(records []analysis.SentenceRecord, target string) []analysis.SentenceRecord {
	var mismatched []analysis.SentenceRecord
	for _, r := range records {
		if string(r.Emotions.Dominant) != target {
			mismatched = append(mismatched, r)
		}
	}
	switch {
	case len(mismatched) == 0:
		if len(records) > defaultRewrites {
			return records[:defaultRewrites]
		}
		return records
	case len(mismatched) > maxRewrites:
		return mismatched[:maxRewrites]
	default:
		return mismatched
	}
}
