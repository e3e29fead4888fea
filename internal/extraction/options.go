package extraction

// DefaultMinLength is the shortest candidate keyword kept, in runes.
const DefaultMinLength = 3

// Options controls keyword extraction.
type Options struct {
	// RemoveDigits drops purely numeric words from the base keyword pass.
	RemoveDigits bool `json:"remove_digits" mapstructure:"remove_digits"`
	// Lowercase reports candidates in lower case. When false, the first-seen
	// surface form is kept; deduplication and classification are case-insensitive either way.
	Lowercase bool `json:"lowercase" mapstructure:"lowercase"`
	// ExtractPhrases enables multi-word candidates (compound keywords, bigrams and trigrams).
	ExtractPhrases bool `json:"extract_phrases" mapstructure:"extract_phrases"`
	// MinLength is the minimum candidate length. Values <= 0 mean DefaultMinLength.
	MinLength int `json:"min_length" mapstructure:"min_length"`
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		RemoveDigits:   false,
		Lowercase:      true,
		ExtractPhrases: true,
		MinLength:      DefaultMinLength,
	}
}

func (o Options) minLength() int {
	if o.MinLength <= 0 {
		return DefaultMinLength
	}
	return o.MinLength
}

// OptionOverrides is a partial Options, as received from a request body.
// Nil fields keep the base value.
type OptionOverrides struct {
	RemoveDigits   *bool `json:"remove_digits,omitempty"`
	Lowercase      *bool `json:"lowercase,omitempty"`
	ExtractPhrases *bool `json:"extract_phrases,omitempty"`
	MinLength      *int  `json:"min_length,omitempty"`
}

// Apply returns base with every non-nil override applied.
func (o *OptionOverrides) Apply(base Options) Options {
	if o == nil {
		return base
	}
	if o.RemoveDigits != nil {
		base.RemoveDigits = *o.RemoveDigits
	}
	if o.Lowercase != nil {
		base.Lowercase = *o.Lowercase
	}
	if o.ExtractPhrases != nil {
		base.ExtractPhrases = *o.ExtractPhrases
	}
	if o.MinLength != nil {
		base.MinLength = *o.MinLength
	}
	return base
}
