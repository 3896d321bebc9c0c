package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/randalmurphal/tokencap/analysis"
	"github.com/randalmurphal/tokencap/capacity"
)

// renderResult prints the per-line table and aggregate block.
func renderResult(w io.Writer, res *analysis.Result) {
	if len(res.Records) == 0 {
		fmt.Fprintln(w, "(no lines)")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tWORDS\tCHARS\tTOKENS\tTIER\tTEXT")
	for _, r := range res.Records {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\n", r.Index, r.Words, r.Chars, r.Tokens, r.Tier, r.Text)
	}
	tw.Flush()

	agg := res.Aggregate
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total lines           : %d\n", agg.Lines)
	fmt.Fprintf(w, "Total words           : %d\n", agg.TotalWords)
	fmt.Fprintf(w, "Total tokens          : %d\n", agg.TotalTokens)
	fmt.Fprintf(w, "Average words / line  : %.2f\n", agg.MeanWords)
	fmt.Fprintf(w, "Average tokens / line : %.2f\n", agg.MeanTokens)
	fmt.Fprintf(w, "Tokens / word         : %.4f\n", agg.TokensPerWord)
	fmt.Fprintf(w, "Dominant tier         : %s\n", res.DominantTier)
}

// renderScenario prints the capacity projection block.
func renderScenario(w io.Writer, sc *capacity.Scenario) {
	fmt.Fprintln(w, "--- Capacity Estimate ---")
	fmt.Fprintf(w, "Avg input tokens / request : %.2f\n", sc.InputTokens)
	fmt.Fprintf(w, "Output tokens (est)        : %.2f\n", sc.OutputTokens)
	fmt.Fprintf(w, "CU Seconds / request       : %.4f\n", sc.CUSeconds)
	fmt.Fprintf(w, "CU Hours / request         : %.8f\n", sc.CUHours)
	fmt.Fprintf(w, "Requests / day             : %.0f\n", sc.RequestsPerDay)
	fmt.Fprintf(w, "Capacity Need (CU)         : %.6f\n", sc.CapacityNeed)
}
