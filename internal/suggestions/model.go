package suggestions

import "tone-backend/internal/emotion"

const (
	MethodGeneration = "generation"
	MethodPattern    = "pattern"
)

// Request asks for rewrites pushing Text toward TargetEmotion.
type Request struct {
	Text          string `json:"text"`
	TargetEmotion string `json:"target_emotion"`
	Intensity     string `json:"intensity,omitempty"`
}

// EmotionChange pairs a sentence's current emotion with the requested one.
type EmotionChange struct {
	Current emotion.Category `json:"current"`
	Target  string           `json:"target"`
}

// Specific is one rewritten sentence.
type Specific struct {
	Original string        `json:"original"`
	Improved string        `json:"improved"`
	Emotion  EmotionChange `json:"emotion"`
	Method   string        `json:"method"`
}

// Result is the full suggestion response.
type Result struct {
	CurrentDominant emotion.Category `json:"current_dominant_emotion"`
	TargetEmotion   string           `json:"target_emotion"`
	Specific        []Specific       `json:"specific_suggestions"`
	General         []string         `json:"general_suggestions"`
}
