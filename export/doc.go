// Package export serializes analysis results and capacity scenarios for
// scripted and batch consumers.
//
// The engine computes; this package only encodes. Two formats are
// supported, indented JSON and YAML, plus JSON Schema documents so
// downstream tooling can validate the output shape:
//
//	doc := export.Document{Result: result, Capacity: scenario}
//	_ = export.Encode(os.Stdout, doc, export.FormatJSON)
//
// Human-facing rendering (tables, localization, CSV) is a presentation
// concern and lives with the callers.
package export
