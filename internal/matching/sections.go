package matching

import (
	"regexp"
	"strings"
)

type sectionKind int

const (
	sectionOther sectionKind = iota
	sectionNiceToHave
	sectionRequirements
)

const maxHeadingWords = 5

var (
	bulletRe          = regexp.MustCompile(`^(?:[-*\x{2022}]\s|\d+[.)]\s)`)
	markdownHeadingRe = regexp.MustCompile(`^#{1,6}\s+(.+)$`)
	labelHeadingRe    = regexp.MustCompile(`^\*{0,2}([a-z][a-z0-9 '&/-]*?)\*{0,2}\s*:`)
	otherHeadingRe    = regexp.MustCompile(`\b(?:responsibilities|duties|about|overview|summary|benefits|perks|compensation|what you|who you|the role)\b`)
)

// headingKind reports whether a lowercased, trimmed line is a section heading
// and which kind of section it opens.
func headingKind(line string) (sectionKind, bool) {
	if bulletRe.MatchString(line) {
		return sectionOther, false
	}

	title := ""
	switch {
	case markdownHeadingRe.MatchString(line):
		title = markdownHeadingRe.FindStringSubmatch(line)[1]
	case labelHeadingRe.MatchString(line):
		title = labelHeadingRe.FindStringSubmatch(line)[1]
	default:
		bare := strings.Trim(line, "*:_ ")
		if strings.ContainsAny(bare, ".,;") {
			return sectionOther, false
		}
		if !niceToHaveRe.MatchString(bare) && !requirementsRe.MatchString(bare) && !otherHeadingRe.MatchString(bare) {
			return sectionOther, false
		}
		title = bare
	}

	if len(strings.Fields(title)) > maxHeadingWords {
		return sectionOther, false
	}
	switch {
	case niceToHaveRe.MatchString(title):
		return sectionNiceToHave, true
	case requirementsRe.MatchString(title):
		return sectionRequirements, true
	default:
		return sectionOther, true
	}
}

// boundedSections splits lowercased text at heading lines and returns the
// bodies of the nice-to-have and requirements sections, heading included.
func boundedSections(lowerText string) (nice, req []string) {
	kind := sectionOther
	var body strings.Builder
	flush := func() {
		switch kind {
		case sectionNiceToHave:
			nice = append(nice, body.String())
		case sectionRequirements:
			req = append(req, body.String())
		}
		body.Reset()
	}

	for _, line := range strings.Split(lowerText, "\n") {
		if next, ok := headingKind(strings.TrimSpace(line)); ok {
			flush()
			kind = next
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	flush()
	return nice, req
}
