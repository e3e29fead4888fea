package matching

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-gap/internal/types"
)

// SectionMode selects how job-description sections are located.
type SectionMode string

const (
	// SectionToEnd treats every section as running from its heading phrase to
	// the end of the text. A "Requirements" section therefore also covers a
	// later "Nice to have" section.
	SectionToEnd SectionMode = "to-end"
	// SectionBounded splits the text at heading lines; a section ends at the
	// next recognised heading.
	SectionBounded SectionMode = "bounded"
)

// ParseSectionMode parses a section mode name. Empty selects SectionToEnd.
func ParseSectionMode(s string) (SectionMode, error) {
	switch SectionMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SectionToEnd:
		return SectionToEnd, nil
	case SectionBounded:
		return SectionBounded, nil
	default:
		return "", fmt.Errorf("unknown section mode %q (want %q or %q)", s, SectionToEnd, SectionBounded)
	}
}

var (
	niceToHaveToEndRe   = regexp.MustCompile(`(?is)(?:nice[\s-]to[\s-]have|preferred|bonus|optional).*$`)
	requirementsToEndRe = regexp.MustCompile(`(?is)(?:requirements?|must[\s-]haves?|qualifications?).*$`)

	niceToHaveRe   = regexp.MustCompile(`(?i)nice[\s-]to[\s-]have|preferred|bonus|optional`)
	requirementsRe = regexp.MustCompile(`(?i)requirements?|must[\s-]haves?|qualifications?`)
)

// AnalyzeMissingKeywords buckets unmatched job-description keywords by severity.
//
// A keyword inside a nice-to-have section is nice-to-have. Otherwise it is
// critical when it occurs more than once in the text or appears inside a
// requirements section, and important in every other case. Matching is
// case-insensitive substring matching. Each bucket keeps input order.
func AnalyzeMissingKeywords(missing []string, jdText string, mode SectionMode) types.MissingKeywords {
	buckets := types.MissingKeywords{
		Critical:   []string{},
		Important:  []string{},
		NiceToHave: []string{},
	}

	lowerText := strings.ToLower(jdText)
	var niceSections, reqSections []string
	if mode == SectionBounded {
		niceSections, reqSections = boundedSections(lowerText)
	} else {
		niceSections, reqSections = toEndSections(lowerText)
	}

	for _, kw := range missing {
		lowerKW := strings.ToLower(strings.TrimSpace(kw))
		if lowerKW == "" {
			continue
		}

		switch {
		case containsAny(niceSections, lowerKW):
			buckets.NiceToHave = append(buckets.NiceToHave, kw)
		case strings.Count(lowerText, lowerKW) > 1 || containsAny(reqSections, lowerKW):
			buckets.Critical = append(buckets.Critical, kw)
		default:
			buckets.Important = append(buckets.Important, kw)
		}
	}
	return buckets
}

func toEndSections(lowerText string) (nice, req []string) {
	if m := niceToHaveToEndRe.FindString(lowerText); m != "" {
		nice = append(nice, m)
	}
	if m := requirementsToEndRe.FindString(lowerText); m != "" {
		req = append(req, m)
	}
	return nice, req
}

func containsAny(sections []string, keyword string) bool {
	for _, s := range sections {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
