// Package emotion scores text against a closed set of emotion categories.
package emotion

import "strings"

// Category is one member of the closed emotion set.
type Category string

const (
	Joy      Category = "joy"
	Sadness  Category = "sadness"
	Anger    Category = "anger"
	Fear     Category = "fear"
	Surprise Category = "surprise"
	Disgust  Category = "disgust"
	Neutral  Category = "neutral"
)

// Categories lists every category in canonical order. Dominant breaks ties
// by this order.
var Categories = []Category{Joy, Sadness, Anger, Fear, Surprise, Disgust, Neutral}

// Parse maps a label to a known category.
func Parse(label string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(label)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Color is the display color used for a category in charts and reports.
func (c Category) Color() string {
	switch c {
	case Joy:
		return "green"
	case Sadness:
		return "blue"
	case Anger:
		return "red"
	case Fear:
		return "purple"
	case Surprise:
		return "orange"
	case Disgust:
		return "brown"
	default:
		return "gray"
	}
}

// Scores maps categories to confidences in [0,1].
type Scores map[Category]float64

// Dominant returns the highest scoring category, the earliest in canonical
// order on ties. Empty scores yield Neutral.
func (s Scores) Dominant() Category {
	best := Neutral
	bestScore := 0.0
	found := false
	for _, c := range Categories {
		v, ok := s[c]
		if !ok {
			continue
		}
		if !found || v > bestScore {
			best, bestScore, found = c, v, true
		}
	}
	return best
}

// Total sums all scores.
func (s Scores) Total() float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum
}

// Source identifies which strategy produced a Result.
const (
	SourceModel   = "model"
	SourceLexicon = "lexicon"
)

// Result is a scored span with its dominant category.
type Result struct {
	Scores   Scores   `json:"scores"`
	Dominant Category `json:"dominant_emotion"`
	Source   string   `json:"source"`
}
