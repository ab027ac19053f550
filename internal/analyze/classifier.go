package analyze

import (
	"sort"
	"strings"
	"unicode"
)

// Classify detects a coarse document type from trigger keywords. Rules are
// evaluated in table order and the first match wins.
func Classify(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range contentTypeTable {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return defaultContentType
}

// Tags matches the category table against the text and returns the labels
// of every triggered category, in table order, capped at maxTags. A label
// appears at most once.
func Tags(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, rule := range categoryTable {
		if len(tags) == maxTags {
			break
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, rule.Label)
				break
			}
		}
	}
	return tags
}

// Topics returns up to k high-frequency content words. Tokens are
// lower-cased, stripped of non-alphanumeric runes, and dropped when short
// or a stop word. Ties are broken by first appearance in the text.
func Topics(text string, k int) []string {
	if k <= 0 {
		return nil
	}

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, w := range strings.Fields(strings.ToLower(text)) {
		w = stripNonAlnum(w)
		if runeLen(w) <= 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, seen := freq[w]; !seen {
			firstSeen[w] = i
		}
		freq[w]++
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})

	if len(words) > k {
		words = words[:k]
	}
	return words
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
