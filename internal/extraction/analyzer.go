// Package extraction turns raw resume or job description text into
// categorized candidate keywords.
package extraction

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-gap/internal/skills"
	"github.com/jonathan/resume-gap/internal/types"
)

// Analyzer extracts and categorizes keywords. It holds the NLP tagger and
// the classifier explicitly; both are read-only, so an Analyzer is safe for
// concurrent use if its Tagger is.
type Analyzer struct {
	tagger     Tagger
	classifier *skills.Classifier
	opts       Options
}

// NewAnalyzer creates an Analyzer. A nil tagger disables the part-of-speech
// and named-entity passes; a nil classifier classifies without a taxonomy.
func NewAnalyzer(tagger Tagger, classifier *skills.Classifier, opts Options) *Analyzer {
	if classifier == nil {
		classifier = skills.NewClassifier(nil)
	}
	return &Analyzer{
		tagger:     tagger,
		classifier: classifier,
		opts:       opts,
	}
}

// Options returns the analyzer's default options.
func (a *Analyzer) Options() Options {
	return a.opts
}

// Extract runs extraction with the analyzer's default options.
func (a *Analyzer) Extract(text string) types.ExtractedKeywords {
	return a.ExtractWithOptions(text, a.opts)
}

// ExtractWithOptions extracts candidates from text and places each in exactly
// one category. Empty text yields empty sets.
func (a *Analyzer) ExtractWithOptions(text string, opts Options) types.ExtractedKeywords {
	result := types.NewExtractedKeywords()
	if strings.TrimSpace(text) == "" {
		return result
	}

	for _, term := range a.candidates(text, opts) {
		result.Raw = append(result.Raw, term)
		result.Add(term, a.classify(term))
	}
	return result
}

func (a *Analyzer) classify(term string) types.Category {
	return a.classifier.Classify(strings.ToLower(term))
}

// candidates unions the base keywords, nouns, entities and n-grams in
// first-seen order.
func (a *Analyzer) candidates(text string, opts Options) []string {
	minLength := opts.minLength()
	tokens := tokenize(text)

	var sources [][]string
	sources = append(sources, filterShort(baseKeywords(tokens, opts.RemoveDigits, opts.ExtractPhrases), minLength))
	if a.tagger != nil {
		if tagged, entities, err := a.tagger.Tag(text); err == nil {
			sources = append(sources, nouns(tagged), entityTexts(entities))
		}
	}
	if opts.ExtractPhrases {
		sources = append(sources, ngrams(tokens, 2, 3))
	}

	seen := make(map[string]bool)
	var out []string
	for _, source := range sources {
		for _, candidate := range source {
			candidate = strings.TrimSpace(candidate)
			key := strings.ToLower(candidate)
			if utf8.RuneCountInString(key) < minLength || seen[key] {
				continue
			}
			seen[key] = true
			if opts.Lowercase {
				out = append(out, key)
			} else {
				out = append(out, candidate)
			}
		}
	}
	return out
}

func filterShort(words []string, minLength int) []string {
	kept := words[:0:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) >= minLength {
			kept = append(kept, w)
		}
	}
	return kept
}

func nouns(tokens []Token) []string {
	var out []string
	for _, tok := range tokens {
		if nounTags[tok.Tag] {
			out = append(out, tok.Text)
		}
	}
	return out
}

func entityTexts(entities []Entity) []string {
	out := make([]string, 0, len(entities))
	for _, ent := range entities {
		out = append(out, ent.Text)
	}
	return out
}
