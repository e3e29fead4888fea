package parsing

import (
	"regexp"
	"strconv"

	"github.com/jonathan/resume-gap/internal/types"
)

// yearsPatterns are tried in order; the first pattern that matches wins.
var yearsPatterns = []struct {
	re     *regexp.Regexp
	ranged bool
}{
	{re: regexp.MustCompile(`(?i)(\d+)\s*\+\s*years?`)},
	{re: regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*years?`), ranged: true},
	{re: regexp.MustCompile(`(?i)(\d+)\s+to\s+(\d+)\s*years?`), ranged: true},
	{re: regexp.MustCompile(`(?i)(\d+)\s*years?`)},
}

// ExtractYearsOfExperience finds the first years-of-experience expression in
// text ("5+ years", "3-5 years", "3 to 5 years", "4 years"). Open-ended and
// single-value expressions return a nil Max. Returns nil when nothing matches.
func ExtractYearsOfExperience(text string) *types.YearsOfExperience {
	for _, p := range yearsPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		minYears, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		result := &types.YearsOfExperience{Min: minYears}
		if p.ranged {
			if maxYears, err := strconv.Atoi(m[2]); err == nil {
				result.Max = &maxYears
			}
		}
		return result
	}
	return nil
}
