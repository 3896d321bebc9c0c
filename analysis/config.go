package analysis

import (
	"fmt"

	"github.com/randalmurphal/tokencap/tokenizer"
)

// SeparatorMode selects how raw input is split into units.
type SeparatorMode string

const (
	// SeparatorNewline splits on line breaks (default). CRLF is handled.
	SeparatorNewline SeparatorMode = "newline"

	// SeparatorSemicolon splits on ";".
	SeparatorSemicolon SeparatorMode = "semicolon"

	// SeparatorPipe splits on "|".
	SeparatorPipe SeparatorMode = "pipe"

	// SeparatorCustom splits on Config.CustomSeparator.
	SeparatorCustom SeparatorMode = "custom"
)

// Config is an immutable analysis configuration. The zero value is not
// valid on its own; start from DefaultConfig.
type Config struct {
	// Separator selects the unit separator. Empty means newline.
	Separator SeparatorMode `json:"separator"`

	// CustomSeparator is the literal separator when Separator is custom.
	CustomSeparator string `json:"custom_separator,omitempty"`

	// RemoveEmpty drops units that trim to the empty string.
	RemoveEmpty bool `json:"remove_empty"`

	// Lowercase case-folds every unit.
	Lowercase bool `json:"lowercase"`

	// Encoding is the model or encoding hint for the primary tier.
	Encoding string `json:"encoding"`

	// TokenizerMode is the tier resolution preference.
	TokenizerMode tokenizer.Mode `json:"tokenizer_mode"`
}

// DefaultConfig returns the configuration the original calculator ships
// with: newline separation, empty lines removed, default model hint.
func DefaultConfig() Config {
	return Config{
		Separator:     SeparatorNewline,
		RemoveEmpty:   true,
		Encoding:      tokenizer.DefaultModel,
		TokenizerMode: tokenizer.ModeAuto,
	}
}

// Validate checks the configuration, returning a ValidationError for an
// unknown separator or tokenizer mode.
func (c Config) Validate() error {
	switch c.Separator {
	case SeparatorNewline, SeparatorSemicolon, SeparatorPipe, "":
	case SeparatorCustom:
		if c.CustomSeparator == "" {
			return &ValidationError{Field: "custom_separator", Reason: "required when separator is custom"}
		}
	default:
		return &ValidationError{Field: "separator", Reason: fmt.Sprintf("unknown mode %q", c.Separator)}
	}
	if !c.TokenizerMode.Valid() {
		return &ValidationError{Field: "tokenizer_mode", Reason: fmt.Sprintf("unknown mode %q", c.TokenizerMode)}
	}
	return nil
}

// delimiter returns the literal separator string for the configured mode.
func (c Config) delimiter() string {
	switch c.Separator {
	case SeparatorSemicolon:
		return ";"
	case SeparatorPipe:
		return "|"
	case SeparatorCustom:
		return c.CustomSeparator
	default:
		return "\n"
	}
}
