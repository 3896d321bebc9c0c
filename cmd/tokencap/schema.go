package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/tokencap/export"
)

// schemaCmd prints JSON Schema documents for scripted consumers.
var schemaCmd = &cobra.Command{
	Use:       "schema [document|result|scenario]",
	Short:     "Print the JSON Schema of the machine-readable output",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"document", "result", "scenario"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	which := "document"
	if len(args) == 1 {
		which = args[0]
	}

	var v any
	switch which {
	case "document":
		v = export.DocumentSchema()
	case "result":
		v = export.ResultSchema()
	case "scenario":
		v = export.ScenarioSchema()
	default:
		return fmt.Errorf("unknown schema %q (want document, result, or scenario)", which)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
