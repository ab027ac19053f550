package analyze

import (
	"strings"
	"testing"
)

func TestStats(t *testing.T) {
	got := Stats("One two three. Four five.\n\nSix seven.")

	if got.WordCount != 7 {
		t.Errorf("WordCount = %d, want 7", got.WordCount)
	}
	if got.SentenceCount != 3 {
		t.Errorf("SentenceCount = %d, want 3", got.SentenceCount)
	}
	if got.ParagraphCount != 2 {
		t.Errorf("ParagraphCount = %d, want 2", got.ParagraphCount)
	}
	if got.CharacterCount != 37 {
		t.Errorf("CharacterCount = %d, want 37", got.CharacterCount)
	}
	if got.ReadingTime != 0 {
		t.Errorf("ReadingTime = %d, want 0", got.ReadingTime)
	}
}

func TestStatsEmpty(t *testing.T) {
	got := Stats("")
	want := DocumentStats{}
	if got != want {
		t.Errorf("Stats(\"\") = %+v, want zero value", got)
	}
}

func TestStatsReadingTime(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 450))
	got := Stats(text)

	if got.WordCount != 450 {
		t.Fatalf("WordCount = %d, want 450", got.WordCount)
	}
	if got.ReadingTime != 2 {
		t.Errorf("ReadingTime = %d, want 2", got.ReadingTime)
	}
}

func TestStatsCountsRunes(t *testing.T) {
	got := Stats("héllo wörld")
	if got.CharacterCount != 11 {
		t.Errorf("CharacterCount = %d, want 11", got.CharacterCount)
	}
}
