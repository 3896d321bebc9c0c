package export

import (
	"github.com/invopop/jsonschema"

	"github.com/randalmurphal/tokencap/analysis"
	"github.com/randalmurphal/tokencap/capacity"
)

// ResultSchema returns the JSON Schema of an analysis result.
func ResultSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&analysis.Result{})
}

// ScenarioSchema returns the JSON Schema of a capacity scenario.
func ScenarioSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&capacity.Scenario{})
}

// DocumentSchema returns the JSON Schema of the combined output document.
func DocumentSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Document{})
}
