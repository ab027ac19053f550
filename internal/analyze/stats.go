package analyze

import "strings"

const wordsPerMinute = 200

// DocumentStats holds scalar metrics derived once per document.
type DocumentStats struct {
	WordCount      int `json:"word_count"`
	CharacterCount int `json:"character_count"`
	SentenceCount  int `json:"sentence_count"`
	ParagraphCount int `json:"paragraph_count"`
	// ReadingTime is an estimate in whole minutes at wordsPerMinute.
	ReadingTime int `json:"estimated_reading_time"`
}

// Stats computes basic metrics for a plain-text document.
func Stats(text string) DocumentStats {
	words := len(strings.Fields(text))

	sentences := 0
	for _, s := range strings.Split(text, ".") {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	return DocumentStats{
		WordCount:      words,
		CharacterCount: runeLen(text),
		SentenceCount:  sentences,
		ParagraphCount: paragraphs,
		ReadingTime:    words / wordsPerMinute,
	}
}
