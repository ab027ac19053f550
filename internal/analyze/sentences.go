package analyze

import (
	"regexp"
	"strings"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

const minSentenceLen = 10

// splitSentences breaks text on sentence terminators and drops fragments
// shorter than minSentenceLen after trimming. Terminators are not kept.
func splitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len([]rune(p)) >= minSentenceLen {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// containsAny reports whether the lower-cased sentence contains any keyword.
func containsAny(sentence string, keywords []string) bool {
	lower := strings.ToLower(sentence)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// collectMatching returns up to limit sentences containing any keyword,
// in document order.
func collectMatching(sentences []string, keywords []string, limit int) []string {
	var out []string
	for _, s := range sentences {
		if len(out) == limit {
			break
		}
		if containsAny(s, keywords) {
			out = append(out, s)
		}
	}
	return out
}

// truncateRunes cuts s to at most n runes. It is a no-op for shorter input.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func runeLen(s string) int {
	return len([]rune(s))
}
