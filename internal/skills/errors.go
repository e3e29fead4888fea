package skills

import "fmt"

// LoadError represents a failure to read or parse a taxonomy table.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	source := e.Path
	if source == "" {
		source = "(embedded)"
	}
	if e.Cause != nil {
		return fmt.Sprintf("failed to load taxonomy %s: %s: %v", source, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load taxonomy %s: %s", source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
