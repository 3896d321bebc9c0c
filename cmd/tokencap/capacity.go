package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/tokencap/capacity"
	"github.com/randalmurphal/tokencap/export"
)

var (
	flagInputTokens  float64
	flagCapUsers     float64
	flagCapQuestions float64
)

// capacityCmd projects CU demand from a known mean token count, without
// running an analysis.
var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Project daily CU demand from average input tokens",
	Long: `Project daily Capacity-Unit requirements from the average input token
count per request and the expected demand. To derive the token count from a
text batch instead, use the root command with --capacity.`,
	SilenceUsage: true,
	RunE:         runCapacity,
}

func init() {
	f := capacityCmd.Flags()
	f.Float64Var(&flagInputTokens, "input-tokens", 0, "average input tokens per request")
	f.Float64Var(&flagCapUsers, "users-per-day", 0, "users per day")
	f.Float64Var(&flagCapQuestions, "questions-per-user", 0, "questions per user per day")
	_ = capacityCmd.MarkFlagRequired("input-tokens")
	_ = capacityCmd.MarkFlagRequired("users-per-day")
	_ = capacityCmd.MarkFlagRequired("questions-per-user")

	rootCmd.AddCommand(capacityCmd)
}

func runCapacity(cmd *cobra.Command, _ []string) error {
	scenario, err := capacity.Estimate(flagInputTokens, flagCapUsers, flagCapQuestions)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagFormat == "text" {
		renderScenario(out, scenario)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Base formula: cu_seconds = (input*100 + (input*4)*400)/1000")
		return nil
	}
	return export.Encode(out, scenario, export.Format(flagFormat))
}
