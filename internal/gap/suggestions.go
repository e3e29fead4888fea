package gap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-gap/internal/types"
)

const (
	maxCriticalSuggestions = 3
	maxBundledKeywords     = 3
	maxReorderKeywords     = 5

	sectionSkills     = "skills"
	sectionExperience = "experience"
)

// generateSuggestions builds the fixed suggestion templates and sorts them by
// priority. Within a priority the generation order is kept.
func generateSuggestions(missing types.MissingKeywords, emphasizable []types.SkillMatch, job types.ExtractedKeywords) []types.Suggestion {
	suggestions := []types.Suggestion{}

	for _, kw := range firstN(missing.Critical, maxCriticalSuggestions) {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionAddKeyword,
			Priority:    types.PriorityCritical,
			Description: fmt.Sprintf("Add %q to your resume; the job description treats it as a core requirement.", kw),
			Keywords:    []string{kw},
			Section:     sectionSkills,
		})
	}

	if important := firstN(missing.Important, maxBundledKeywords); len(important) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionAddKeyword,
			Priority:    types.PriorityImportant,
			Description: fmt.Sprintf("Consider adding these keywords where they reflect real experience: %s.", strings.Join(important, ", ")),
			Keywords:    important,
			Section:     sectionSkills,
		})
	}

	if len(emphasizable) > 0 {
		var keywords []string
		var pairs []string
		for _, m := range emphasizable {
			if len(keywords) == maxBundledKeywords {
				break
			}
			keywords = append(keywords, m.Keyword)
			pairs = append(pairs, fmt.Sprintf("%q for %q", m.Keyword, *m.MatchedTo))
		}
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionEmphasize,
			Priority:    types.PriorityImportant,
			Description: fmt.Sprintf("Use the job description's wording for skills you already have: %s.", strings.Join(pairs, ", ")),
			Keywords:    keywords,
			Section:     sectionExperience,
		})
	}

	if jobSkills := firstN(append(append([]string{}, job.Skills...), job.Tools...), maxReorderKeywords); len(jobSkills) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionReorderSkills,
			Priority:    types.PriorityNiceToHave,
			Description: fmt.Sprintf("List the skills this role asks for first: %s.", strings.Join(jobSkills, ", ")),
			Keywords:    jobSkills,
			Section:     sectionSkills,
		})
	}

	if reframe := criticalJobSkills(missing.Critical, job.Skills); len(reframe) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionReframeBullet,
			Priority:    types.PriorityImportant,
			Description: fmt.Sprintf("Reframe an experience bullet to show hands-on use of %s.", strings.Join(reframe, ", ")),
			Keywords:    reframe,
			Section:     sectionExperience,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority.Rank() < suggestions[j].Priority.Rank()
	})
	return suggestions
}

// criticalJobSkills returns the critical keywords that are also job-description skills.
func criticalJobSkills(critical, jobSkills []string) []string {
	skillSet := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		skillSet[strings.ToLower(s)] = true
	}
	var out []string
	for _, kw := range critical {
		if skillSet[strings.ToLower(kw)] {
			out = append(out, kw)
		}
	}
	return firstN(out, maxBundledKeywords)
}

// firstN returns a copy of at most the first n items.
func firstN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string(nil), items...)
}
