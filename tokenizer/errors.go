package tokenizer

import "fmt"

// LoadError records a tier that failed to initialize. Load errors are
// absorbed by the fallback chain and kept only for status reporting; they
// are never fatal to resolution.
type LoadError struct {
	Tier Tier   // tier that failed
	Hint string // requested model or encoding hint, if any
	Err  error  // underlying error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s tier (%s): %v", e.Tier, e.Hint, e.Err)
	}
	return fmt.Sprintf("%s tier: %v", e.Tier, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *LoadError) Unwrap() error {
	return e.Err
}
