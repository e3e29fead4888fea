// Package skills provides the skill/knowledge taxonomy tables and the
// classifier that sorts candidate keywords into categories.
package skills

import (
	"fmt"
	"unicode/utf8"

	"github.com/jonathan/resume-gap/internal/parsing"
)

// fuzzyMinLength is the shortest normalized term eligible for fuzzy lookup.
// Shorter terms collide too easily at one edit.
const fuzzyMinLength = 6

// Entry is a single taxonomy row.
type Entry struct {
	Name    string   `yaml:"name" json:"name"`
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// table is one lookup table with its normalized key index.
type table struct {
	entries []Entry
	index   map[string]int
	keys    []tableKey
}

type tableKey struct {
	key   string
	entry int
}

// Taxonomy holds the read-only skills and knowledge tables.
// It is safe for concurrent use once constructed.
type Taxonomy struct {
	skills    table
	knowledge table
}

// New builds a Taxonomy from skills and knowledge entries.
func New(skillEntries, knowledgeEntries []Entry) (*Taxonomy, error) {
	skillTable, err := newTable("skills", skillEntries)
	if err != nil {
		return nil, err
	}
	knowledgeTable, err := newTable("knowledge", knowledgeEntries)
	if err != nil {
		return nil, err
	}
	return &Taxonomy{skills: skillTable, knowledge: knowledgeTable}, nil
}

func newTable(name string, entries []Entry) (table, error) {
	t := table{
		entries: entries,
		index:   make(map[string]int),
	}
	for i, entry := range entries {
		key := parsing.NormalizeSkill(entry.Name)
		if key == "" {
			return table{}, fmt.Errorf("%s entry %d has an empty name", name, i)
		}
		t.add(key, i)
		for _, alias := range entry.Aliases {
			if aliasKey := parsing.NormalizeSkill(alias); aliasKey != "" {
				t.add(aliasKey, i)
			}
		}
	}
	return t, nil
}

func (t *table) add(key string, entry int) {
	if _, exists := t.index[key]; exists {
		return
	}
	t.index[key] = entry
	t.keys = append(t.keys, tableKey{key: key, entry: entry})
}

// find looks a term up by exact normalized key, then by fuzzy similarity in table order.
func (t *table) find(term string) *Entry {
	normalized := parsing.NormalizeSkill(term)
	if normalized == "" {
		return nil
	}
	if i, ok := t.index[normalized]; ok {
		return &t.entries[i]
	}
	if utf8.RuneCountInString(normalized) < fuzzyMinLength {
		return nil
	}
	for _, k := range t.keys {
		if utf8.RuneCountInString(k.key) < fuzzyMinLength {
			continue
		}
		if parsing.Similarity(normalized, k.key) >= parsing.SimilarityThreshold {
			return &t.entries[k.entry]
		}
	}
	return nil
}

// FindMatchingSkill returns the skills entry matching term, or nil.
func (t *Taxonomy) FindMatchingSkill(term string) *Entry {
	return t.skills.find(term)
}

// FindMatchingKnowledge returns the knowledge entry matching term, or nil.
func (t *Taxonomy) FindMatchingKnowledge(term string) *Entry {
	return t.knowledge.find(term)
}

// Skills returns the skills table entries.
func (t *Taxonomy) Skills() []Entry {
	return t.skills.entries
}

// Knowledge returns the knowledge table entries.
func (t *Taxonomy) Knowledge() []Entry {
	return t.knowledge.entries
}
