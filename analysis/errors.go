package analysis

import (
	"errors"
	"fmt"
)

// ValidationError reports an invalid configuration value. Validation
// failures are raised before any computation, so a malformed request
// fails all-or-nothing.
type ValidationError struct {
	Field  string // configuration field ("separator", "tokenizer_mode", ...)
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation checks if an error is a configuration validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
