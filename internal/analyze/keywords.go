package analyze

// KeywordTableVersion identifies the tuned constant tables below. Output of
// the tagger, classifier and summarizer is defined by these tables; tests pin
// exact results against them, so bump the version when editing.
const KeywordTableVersion = "v1"

// CategoryRule maps a display-ready category label to its trigger keywords.
// A document is tagged with the label when its lower-cased text contains any
// of the keywords as a substring.
type CategoryRule struct {
	Label    string
	Keywords []string
}

// categoryTable is evaluated top to bottom; each label is emitted at most
// once and the tag list is capped at maxTags.
var categoryTable = []CategoryRule{
	{"Technology", []string{"software", "system", "development", "technical", "code", "programming", "api", "database"}},
	{"Business", []string{"company", "business", "management", "strategy", "organization"}},
	{"Finance", []string{"budget", "cost", "financial", "money", "expense", "revenue", "payment", "invoice"}},
	{"Work", []string{"project", "report", "meeting", "deadline", "office"}},
	{"Personal", []string{"love", "family", "friend", "holiday", "birthday"}},
	{"Education", []string{"learning", "study", "course", "education", "training", "academic", "school"}},
	{"Health", []string{"medical", "health", "doctor", "patient", "treatment", "medicine", "hospital"}},
	{"Legal", []string{"legal", "law", "contract", "agreement", "attorney", "court"}},
	{"Marketing", []string{"marketing", "advertising", "campaign", "promotion", "brand", "customer"}},
	{"Research", []string{"research", "analysis", "data", "investigation", "survey"}},
	{"Documentation", []string{"document", "documentation", "manual", "record"}},
}

const maxTags = 5

// contentTypeRule pairs a coarse document type with its trigger keywords.
type contentTypeRule struct {
	label    string
	keywords []string
}

// contentTypeTable is evaluated top to bottom, first match wins.
var contentTypeTable = []contentTypeRule{
	{"Financial Document", []string{"invoice", "bill", "payment", "financial"}},
	{"Report", []string{"report", "analysis", "study"}},
	{"Meeting Document", []string{"meeting", "agenda", "minutes"}},
	{"Legal Document", []string{"contract", "agreement", "legal"}},
	{"Technical Document", []string{"code", "programming", "software"}},
	{"Communication", []string{"email", "message", "correspondence"}},
}

const defaultContentType = "General Document"

// Sentence-selection vocabularies for the extractive summarizer and the
// rule-based answerer.
var (
	introKeywords = []string{"project", "report", "summary", "overview", "introduction"}

	titleKeywords = []string{"report", "document", "project", "overview", "summary", "analysis"}

	achievementKeywords = []string{"achieved", "completed", "implemented", "successfully", "result", "outcome", "delivered", "finished", "accomplished", "developed", "created", "built"}

	featureKeywords = []string{"feature", "system", "technology", "capability", "functionality", "tool", "platform", "solution", "service"}

	objectiveKeywords = []string{"key", "important", "main", "primary", "objective", "goal", "purpose", "aim", "target", "focus"}

	statusKeywords = []string{"currently", "status", "progress", "schedule", "budget", "ready", "deployment", "production"}

	forwardKeywords = []string{"next", "future", "plan", "upcoming", "will", "going to", "intend to"}

	teamKeywords = []string{"team", "member", "developer", "staff", "personnel", "collaborator"}

	financialKeywords = []string{"budget", "cost", "financial", "money", "expense", "revenue", "funding"}

	scoringKeywords = []string{"project", "system", "development", "team", "work", "implementation"}
)

// stopWords are ignored during topic extraction.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "can": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {},
}
