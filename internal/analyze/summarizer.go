package analyze

import "strings"

// Summarization thresholds, in runes. Tuned by hand together with the
// keyword tables; see KeywordTableVersion.
const (
	minSummarizeLen = 100
	shortDocLen     = 150
	maxSummaryLen   = 300
	truncateTarget  = 297
	maxTitleLen     = 100
	maxFillerLen    = 150
	ellipsis        = "..."
)

// Summarize builds an extractive summary of text: whole sentences are
// selected by layered keyword buckets and joined, bounded to roughly
// maxSummaryLen runes. It never fails; degenerate input degrades to a
// truncated prefix of the text. Output is empty only for empty input.
func Summarize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if runeLen(text) < minSummarizeLen {
		return text
	}

	sentences := splitSentences(text)
	if len(sentences) <= 2 && runeLen(text) > shortDocLen {
		return shortDocSummary(text, sentences)
	}

	selected := selectSentences(sentences)
	if len(selected) == 0 {
		return fallbackSummary(text, sentences)
	}

	summary := strings.Join(selected, ". ")
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	if runeLen(summary) > maxSummaryLen {
		summary = trimToBudget(summary)
	}
	return summary
}

// shortDocSummary handles documents that barely split into sentences:
// prefer an introductory sentence, then the opener, then a raw prefix.
func shortDocSummary(text string, sentences []string) string {
	for _, s := range sentences {
		if containsAny(s, introKeywords) {
			return capSummary(s + ".")
		}
	}
	if len(sentences) > 0 {
		return capSummary(sentences[0] + ".")
	}
	return truncateRunes(strings.TrimSpace(text), shortDocLen) + ellipsis
}

// capSummary bounds a single-sentence summary; a document made of one giant
// sentence must not defeat the length guarantee.
func capSummary(s string) string {
	if runeLen(s) > maxSummaryLen {
		return truncateRunes(s, truncateTarget) + ellipsis
	}
	return s
}

// selectSentences applies the ranked buckets in fixed order. A sentence is
// selected at most once even when it matches several buckets.
func selectSentences(sentences []string) []string {
	var selected []string
	used := make(map[int]bool)
	pick := func(i int) {
		used[i] = true
		selected = append(selected, sentences[i])
	}
	take := func(keywords []string, limit int) {
		n := 0
		for i, s := range sentences {
			if n == limit {
				break
			}
			if used[i] {
				continue
			}
			if containsAny(s, keywords) {
				pick(i)
				n++
			}
		}
	}

	// Title-like opener, only when short and clearly headline-ish.
	if len(sentences) > 0 && runeLen(sentences[0]) < maxTitleLen && containsAny(sentences[0], titleKeywords) {
		pick(0)
	}
	take(achievementKeywords, 2)
	take(featureKeywords, 1)
	take(objectiveKeywords, 1)
	take(statusKeywords, 1)

	// Thin selection: pad with the best-scoring remaining sentence.
	if len(selected) < 2 {
		best, bestScore := -1, -1
		for i, s := range sentences {
			if used[i] {
				continue
			}
			score := 0
			if l := runeLen(s); l >= 50 && l <= 120 {
				score += 2
			}
			lower := strings.ToLower(s)
			for _, kw := range scoringKeywords {
				score += strings.Count(lower, kw)
			}
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best >= 0 && runeLen(sentences[best]) < maxFillerLen {
			pick(best)
		}
	}
	return selected
}

// trimToBudget re-splits an oversized summary and re-accumulates whole
// sentences while the running length stays under truncateTarget.
func trimToBudget(summary string) string {
	parts := strings.Split(summary, ". ")
	var kept []string
	total := 0
	for _, p := range parts {
		l := runeLen(p) + 2
		if total+l >= truncateTarget {
			break
		}
		kept = append(kept, p)
		total += l
	}
	if len(kept) == 0 {
		return truncateRunes(summary, truncateTarget) + ellipsis
	}
	return strings.Join(kept, ". ") + ellipsis
}

// fallbackSummary is the terminal degradation path: first sentences joined,
// or a raw prefix when the text has no usable sentences at all.
func fallbackSummary(text string, sentences []string) string {
	if len(sentences) > 0 {
		n := len(sentences)
		if n > 3 {
			n = 3
		}
		joined := strings.Join(sentences[:n], ". ") + "."
		if runeLen(joined) > maxSummaryLen {
			return truncateRunes(joined, truncateTarget) + ellipsis
		}
		return joined
	}
	return truncateRunes(strings.TrimSpace(text), 200) + ellipsis
}
