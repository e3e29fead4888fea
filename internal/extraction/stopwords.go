package extraction

// stopWords are common English words that never make useful keywords on their own.
var stopWords = map[string]bool{
	"a": true, "about": true, "above": true, "across": true, "after": true, "again": true,
	"against": true, "all": true, "also": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "as": true, "at": true, "be": true, "because": true,
	"been": true, "before": true, "being": true, "below": true, "between": true, "both": true,
	"but": true, "by": true, "can": true, "could": true, "did": true, "do": true,
	"does": true, "doing": true, "down": true, "during": true, "each": true, "either": true,
	"etc": true, "ever": true, "every": true, "few": true, "for": true, "from": true,
	"further": true, "get": true, "had": true, "has": true, "have": true, "having": true,
	"he": true, "her": true, "here": true, "hers": true, "him": true, "his": true,
	"how": true, "i": true, "if": true, "in": true, "into": true, "is": true,
	"it": true, "its": true, "just": true, "like": true, "looking": true, "may": true,
	"me": true, "might": true, "more": true, "most": true, "must": true, "my": true,
	"no": true, "nor": true, "not": true, "of": true, "off": true, "on": true,
	"once": true, "only": true, "or": true, "other": true, "our": true, "ours": true,
	"out": true, "over": true, "own": true, "per": true, "same": true, "she": true,
	"should": true, "so": true, "some": true, "such": true, "than": true, "that": true,
	"the": true, "their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "to": true, "too": true,
	"under": true, "until": true, "up": true, "us": true, "very": true, "was": true,
	"we": true, "were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "whom": true, "why": true, "will": true, "with": true,
	"within": true, "without": true, "would": true, "you": true, "your": true, "yours": true,
	"able": true, "including": true, "strong": true, "well": true, "new": true, "using": true,
}

func isStopWord(word string) bool {
	return stopWords[word]
}
