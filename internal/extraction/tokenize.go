package extraction

import (
	"strings"
	"unicode"
)

// tokenEdgeTrim is stripped from both ends of a token. "+" and "#" are kept so
// "c++", "c#" and "5+" survive.
const tokenEdgeTrim = ".-/"

// tokenize splits text into words, keeping letters, digits and the tech
// characters + # . - / inside a word. Case is preserved.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := strings.Trim(word.String(), tokenEdgeTrim)
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("+#.-/", r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return word != ""
}

// baseKeywords is the stopword-filtered keyword pass. It returns every
// non-stopword word and, when phrases is set, each run of two or three
// consecutive non-stopword words as a compound keyword.
func baseKeywords(tokens []string, removeDigits, phrases bool) []string {
	var keywords []string
	var run []string
	flushRun := func() {
		if phrases && len(run) >= 2 && len(run) <= 3 {
			keywords = append(keywords, strings.Join(run, " "))
		}
		run = run[:0]
	}
	for _, token := range tokens {
		lower := strings.ToLower(token)
		if isStopWord(lower) || (removeDigits && isNumeric(token)) {
			flushRun()
			continue
		}
		keywords = append(keywords, token)
		run = append(run, token)
	}
	flushRun()
	return keywords
}

// ngrams returns all n-grams of tokens for n in [lo, hi], shorter first.
func ngrams(tokens []string, lo, hi int) []string {
	var grams []string
	for n := lo; n <= hi; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}
