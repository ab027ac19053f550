package analyze

import "strings"

// Canned responses for questions the rule-based answerer cannot ground in
// the text. Every dispatch branch returns a non-empty answer.
const (
	noAchievements = "No specific achievements are mentioned in this document."
	noFeatures     = "No specific features or capabilities are mentioned in this document."
	noStatus       = "No specific status information is mentioned in this document."
	noNextSteps    = "No specific next steps or future plans are mentioned in this document."
	noTeamInfo     = "No specific team information is mentioned in this document."
	noBudgetInfo   = "No specific budget or financial information is mentioned in this document."

	howAnswer   = "The document describes various processes and implementations. For specific details, please ask a more specific question about what aspect you're interested in."
	whenAnswer  = "The document doesn't contain specific timeline information. Please ask about specific aspects of the content."
	whereAnswer = "The document doesn't contain specific location information. Please ask about specific aspects of the content."
)

// Answer responds to a natural-language question about text by retrieving
// sentences triggered by keywords in the question. The first matching
// dispatch rule wins. It never returns an empty string for non-empty text.
func Answer(text, question string) string {
	q := strings.ToLower(question)
	sentences := splitSentences(text)

	switch {
	case containsAnyWord(q, "summary", "summarize"):
		return summaryAnswer(text, sentences)
	case containsAnyWord(q, "achievement", "accomplish", "complete"):
		return retrievalAnswer(sentences, achievementKeywords, 3,
			"Key achievements mentioned in the document: ", noAchievements)
	case containsAnyWord(q, "feature", "capability", "function"):
		return retrievalAnswer(sentences, featureKeywords, 3,
			"Key features and capabilities mentioned: ", noFeatures)
	case containsAnyWord(q, "status", "progress", "current"):
		return retrievalAnswer(sentences, statusKeywords, 2,
			"Current status information: ", noStatus)
	case containsAnyWord(q, "next", "future", "plan"):
		return retrievalAnswer(sentences, forwardKeywords, 2,
			"Next steps and future plans: ", noNextSteps)
	case containsAnyWord(q, "team", "member"):
		return retrievalAnswer(sentences, teamKeywords, 2,
			"Team information: ", noTeamInfo)
	case containsAnyWord(q, "budget", "cost", "financial"):
		return retrievalAnswer(sentences, financialKeywords, 2,
			"Budget and financial information: ", noBudgetInfo)
	}
	return genericAnswer(text, q, sentences)
}

func summaryAnswer(text string, sentences []string) string {
	if len(sentences) >= 3 {
		return "Here's a summary of the document: " + strings.Join(sentences[:3], ". ") + "."
	}
	return "Here's the document content: " + text
}

func retrievalAnswer(sentences, keywords []string, limit int, prefix, fallback string) string {
	matched := collectMatching(sentences, keywords, limit)
	if len(matched) == 0 {
		return fallback
	}
	return prefix + strings.Join(matched, ". ") + "."
}

// genericAnswer keys on the leading interrogative word of the question.
func genericAnswer(text, question string, sentences []string) string {
	lead := ""
	if fields := strings.Fields(question); len(fields) > 0 {
		lead = strings.Trim(fields[0], "?,.!")
	}
	switch lead {
	case "what":
		n := len(sentences)
		if n > 2 {
			n = 2
		}
		if n > 0 {
			return "Based on the document content: " + strings.Join(sentences[:n], ". ") + "."
		}
		return "Based on the document content: " + truncateRunes(strings.TrimSpace(text), maxSummaryLen)
	case "how":
		return howAnswer
	case "when":
		return whenAnswer
	case "where":
		return whereAnswer
	}
	return "I found information in the document that might be relevant to your question. Here are the key points: " +
		truncateRunes(strings.TrimSpace(text), maxSummaryLen) + ellipsis
}

func containsAnyWord(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
