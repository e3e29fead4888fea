package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-gap/internal/schemas"
	embedded "github.com/jonathan/resume-gap/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON artifact against its schema",
	Long: "Validates an ExtractedKeywords (--kind keywords), SkillMatchResult (--kind match) or " +
		"GapReport (--kind gap) JSON file against the embedded schema, or any JSON file against --schema.",
	RunE: runValidate,
}

var (
	validateInput  string
	validateKind   string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to JSON file (required)")
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "Artifact kind: keywords, match or gap")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON Schema file (overrides --kind)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	return validateArtifact(cmd.OutOrStdout(), validateInput, validateKind, validateSchema)
}

func validateArtifact(w io.Writer, in, kind, schemaPath string) error {
	var err error
	switch {
	case schemaPath != "":
		err = schemas.ValidateJSON(schemaPath, in)
	case kind != "":
		name, ok := embedded.ForKind(kind)
		if !ok {
			return fmt.Errorf("unknown kind %q (want one of %s)", kind, strings.Join(embedded.Kinds(), ", "))
		}
		err = schemas.ValidateArtifactFile(name, in)
	default:
		return errors.New("either --kind or --schema must be provided")
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "✓ %s is valid\n", in)
	return nil
}
