// Package analysis turns raw multi-line input into per-line token metrics
// and aggregate statistics.
//
// The pipeline has three stages. Normalize splits raw input into trimmed
// units according to a Config (separator choice, empty filtering, case
// folding). AnalyzeLines produces one LineRecord per unit with word,
// character, and token counts plus the tokenizer tier that produced them.
// Summarize reduces the records into totals, means, and the dominant tier.
//
//	cfg := analysis.DefaultConfig()
//	lines, _ := analysis.Normalize(raw, cfg)
//	records := analysis.AnalyzeLines(lines, provider)
//	result := analysis.Summarize(records)
//
// Zero normalized lines is not an error: the result is well-formed with
// every aggregate at 0.
package analysis
