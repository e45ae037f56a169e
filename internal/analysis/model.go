package analysis

import (
	"tone-backend/internal/emotion"
	"tone-backend/internal/sentiment"
)

// SentenceRecord is one scored sentence.
type SentenceRecord struct {
	Text      string           `json:"sentence"`
	Sentiment sentiment.Result `json:"sentiment"`
	Emotions  emotion.Result   `json:"emotions"`
}

// ParagraphRecord is one scored paragraph with its own sentence records.
type ParagraphRecord struct {
	Text      string           `json:"paragraph"`
	Sentiment sentiment.Result `json:"sentiment"`
	Emotions  emotion.Result   `json:"emotions"`
	Sentences []SentenceRecord `json:"sentence_analysis"`
}

// Shift marks adjacent sentences whose dominant emotions differ. Position is
// the index of the later sentence.
type Shift struct {
	Position     int              `json:"position"`
	FromSentence string           `json:"from_sentence"`
	ToSentence   string           `json:"to_sentence"`
	FromEmotion  emotion.Category `json:"from_emotion"`
	ToEmotion    emotion.Category `json:"to_emotion"`
}

// Inconsistency is a paragraph that disagrees with the main emotion.
type Inconsistency struct {
	ParagraphIndex int              `json:"paragraph_index"`
	Paragraph      string           `json:"paragraph"`
	Emotion        emotion.Category `json:"emotion"`
	MainEmotion    emotion.Category `json:"main_emotion"`
}

// ConsistencyReport summarises cross-paragraph agreement. MainEmotion is
// empty when there are no paragraphs.
type ConsistencyReport struct {
	IsConsistent    bool             `json:"is_consistent"`
	MainEmotion     emotion.Category `json:"main_emotion,omitempty"`
	Inconsistencies []Inconsistency  `json:"inconsistencies"`
}

// ArcPoint is one step of the sentence-by-sentence emotional trajectory.
type ArcPoint struct {
	Position int              `json:"position"`
	Emotion  emotion.Category `json:"emotion"`
	Color    string           `json:"color"`
}

// ProfileEntry is the mean score of one category across sentences.
type ProfileEntry struct {
	Emotion emotion.Category `json:"emotion"`
	Mean    float64          `json:"mean"`
}

// DocumentAnalysis is the full result of one analysis.
type DocumentAnalysis struct {
	DocumentSentiment sentiment.Result  `json:"document_sentiment"`
	DocumentEmotions  emotion.Result    `json:"document_emotions"`
	Sentences         []SentenceRecord  `json:"sentence_analysis"`
	Paragraphs        []ParagraphRecord `json:"paragraph_analysis"`
	Shifts            []Shift           `json:"emotional_shifts"`
	Consistency       ConsistencyReport `json:"consistency_check"`
	Arc               []ArcPoint        `json:"emotional_arc"`
	Profile           []ProfileEntry    `json:"emotion_profile"`
}
