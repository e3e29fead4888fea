package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-gap/internal/skills"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Validate and summarise a skill/knowledge taxonomy",
	Long: "Loads a taxonomy YAML file (or the embedded default), reports its size, " +
		"and optionally classifies terms given with --lookup.",
	RunE: runTaxonomy,
}

var (
	taxonomyPath   string
	taxonomyLookup []string
	taxonomyList   bool
)

func init() {
	taxonomyCmd.Flags().StringVarP(&taxonomyPath, "path", "p", "", "Path to taxonomy YAML (default: configured or embedded table)")
	taxonomyCmd.Flags().StringSliceVarP(&taxonomyLookup, "lookup", "l", nil, "Comma-separated terms to classify")
	taxonomyCmd.Flags().BoolVar(&taxonomyList, "list", false, "List every entry with its aliases")

	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(cmd *cobra.Command, _ []string) error {
	path := taxonomyPath
	if path == "" {
		a, err := newApp(configPath)
		if err != nil {
			return err
		}
		defer a.close()
		path = a.cfg.Taxonomy.Path
	}

	taxonomy, err := skills.Load(path)
	if err != nil {
		return err
	}
	describeTaxonomy(cmd.OutOrStdout(), path, taxonomy, taxonomyLookup, taxonomyList)
	return nil
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func describeTaxonomy(w io.Writer, path string, taxonomy *skills.Taxonomy, lookup []string, list bool) {
	source := path
	if source == "" {
		source = "embedded default"
	}
	fmt.Fprintf(w, "Taxonomy: %s\n", source)
	fmt.Fprintf(w, "Skills:    %d\n", len(taxonomy.Skills()))
	fmt.Fprintf(w, "Knowledge: %d\n", len(taxonomy.Knowledge()))

	if list {
		writeEntries(w, "Skills", taxonomy.Skills())
		writeEntries(w, "Knowledge", taxonomy.Knowledge())
	}

	if len(lookup) > 0 {
		classifier := skills.NewClassifier(taxonomy)
		fmt.Fprintln(w, "\nLookup:")
		for _, term := range lookup {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			line := fmt.Sprintf("  %-24s %s", term, classifier.Classify(term))
			if entry := taxonomy.FindMatchingSkill(term); entry != nil {
				line += " (" + entry.Name + ")"
			} else if entry := taxonomy.FindMatchingKnowledge(term); entry != nil {
				line += " (" + entry.Name + ")"
			}
			fmt.Fprintln(w, line)
		}
	}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func writeEntries(w io.Writer, label string, entries []skills.Entry) {
	fmt.Fprintf(w, "\n%s:\n", label)
	for _, e := range entries {
		if len(e.Aliases) == 0 {
			fmt.Fprintf(w, "  %s\n", e.Name)
			continue
		}
		fmt.Fprintf(w, "  %s (%s)\n", e.Name, strings.Join(e.Aliases, ", "))
	}
}
