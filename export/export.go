package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/tokencap/analysis"
	"github.com/randalmurphal/tokencap/capacity"
)

// Format selects a serialization format.
type Format string

const (
	// FormatJSON emits indented JSON (default).
	FormatJSON Format = "json"

	// FormatYAML emits YAML.
	FormatYAML Format = "yaml"
)

// Document bundles an analysis result with an optional capacity scenario.
// This is the shape scripted consumers parse.
type Document struct {
	Result   *analysis.Result   `json:"analysis" yaml:"analysis"`
	Capacity *capacity.Scenario `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

// Encode writes v to w in the given format. An empty format means JSON.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
