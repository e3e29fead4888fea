// Package schemas embeds the JSON Schema files for the artifacts the CLI and server emit.
package schemas

import (
	"embed"
	"sort"
)

// File names of the embedded schemas.
const (
	ExtractedKeywords = "extracted_keywords.schema.json"
	SkillMatchResult  = "skill_match_result.schema.json"
	GapReport         = "gap_report.schema.json"
)

//go:embed *.schema.json
var FS embed.FS

// Names lists every embedded schema file.
func Names() []string {
	return []string{ExtractedKeywords, SkillMatchResult, GapReport}
}

// kinds maps short artifact names, as used on the command line, to schema files.
var kinds = map[string]string{
	"keywords": ExtractedKeywords,
	"match":    SkillMatchResult,
	"gap":      GapReport,
}

// ForKind returns the schema file for a short artifact name: keywords, match or gap.
func ForKind(kind string) (string, bool) {
	name, ok := kinds[kind]
	return name, ok
}

// Kinds lists the short artifact names accepted by ForKind.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
