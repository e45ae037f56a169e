package analysis

import (
	"gonum.org/v1/gonum/stat"

	"tone-backend/internal/emotion"
)

// BuildArc lists the dominant emotion of each sentence in order.
func BuildArc(records []SentenceRecord) []ArcPoint {
	arc := make([]ArcPoint, 0, len(records))
	for i, r := range records {
		arc = append(arc, ArcPoint{
			Position: i,
			Emotion:  r.Emotions.Dominant,
			Color:    r.Emotions.Dominant.Color(),
		})
	}
	return arc
}

// BuildProfile averages each category's score over the sentences that report
// it. Categories absent from every sentence are omitted.
func BuildProfile(records []SentenceRecord) []ProfileEntry {
	profile := []ProfileEntry{}
	for _, c := range emotion.Categories {
		var values []float64
		for _, r := range records {
			if v, ok := r.Emotions.Scores[c]; ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		profile = append(profile, ProfileEntry{Emotion: c, Mean: stat.Mean(values, nil)})
	}
	return profile
}
