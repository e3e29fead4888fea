package ingestion

import "fmt"

// UnsupportedFormatError is returned for files whose format cannot be read.
type UnsupportedFormatError struct {
	Path   string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("unsupported document format for %s", e.Path)
	}
	return fmt.Sprintf("unsupported document format %q for %s", e.Format, e.Path)
}

// ExtractionError represents a failure to pull text out of a document.
type ExtractionError struct {
	Path   string
	Format Format
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s text from %s: %v", e.Format, e.Path, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
