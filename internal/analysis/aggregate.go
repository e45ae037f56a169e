package analysis

import "tone-backend/internal/emotion"

// DetectShifts compares each sentence with its predecessor.
func DetectShifts(records []SentenceRecord) []Shift {
	shifts := []Shift{}
	for i := 1; i < len(records); i++ {
		prev, curr := records[i-1], records[i]
		if prev.Emotions.Dominant == curr.Emotions.Dominant {
			continue
		}
		shifts = append(shifts, Shift{
			Position:     i,
			FromSentence: prev.Text,
			ToSentence:   curr.Text,
			FromEmotion:  prev.Emotions.Dominant,
			ToEmotion:    curr.Emotions.Dominant,
		})
	}
	return shifts
}

// CheckConsistency finds the most common paragraph emotion and lists the
// paragraphs that differ from it. Ties go to the emotion seen first.
func CheckConsistency(paragraphs []ParagraphRecord) ConsistencyReport {
	report := ConsistencyReport{IsConsistent: true, Inconsistencies: []Inconsistency{}}
	if len(paragraphs) == 0 {
		return report
	}

	dominants := make([]emotion.Category, len(paragraphs))
	for i, p := range paragraphs {
		dominants[i] = p.Emotions.Dominant
	}
	main := mode(dominants)
	report.MainEmotion = main

	for i, p := range paragraphs {
		if p.Emotions.Dominant == main {
			continue
		}
		report.Inconsistencies = append(report.Inconsistencies, Inconsistency{
			ParagraphIndex: i,
			Paragraph:      p.Text,
			Emotion:        p.Emotions.Dominant,
			MainEmotion:    main,
		})
	}
	report.IsConsistent = len(report.Inconsistencies) == 0
	return report
}

func mode(values []emotion.Category) emotion.Category {
	counts := make(map[emotion.Category]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	var best emotion.Category
	bestCount := 0
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}
