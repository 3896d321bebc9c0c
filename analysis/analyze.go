package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/tokencap/tokenizer"
)

// TokenSource yields tokenizer handles and trades failed ones for the
// next lower tier. *tokenizer.Provider satisfies it.
type TokenSource interface {
	Resolve() tokenizer.Handle
	Demote(tokenizer.Handle) tokenizer.Handle
}

// LineRecord holds the metrics of one normalized line.
type LineRecord struct {
	// Index is the 1-based position in the normalized input.
	Index int `json:"index" yaml:"index"`

	// Text is the normalized line.
	Text string `json:"text" yaml:"text"`

	// Words is the count of maximal whitespace-delimited substrings.
	Words int `json:"words" yaml:"words"`

	// Chars is the count of Unicode code points, not bytes.
	Chars int `json:"chars" yaml:"chars"`

	// Tokens is the estimated token count. Always >= 0.
	Tokens int `json:"tokens" yaml:"tokens"`

	// Tier identifies the tokenizer tier that produced Tokens.
	Tier tokenizer.Tier `json:"tier" yaml:"tier"`
}

// AnalyzeLines produces one record per line, in input order.
//
// A handle failure on a specific line never aborts the batch: the
// analyzer demotes to the next lower tier, re-counts that line, and
// attributes it and all subsequent lines to the demoted tier. The
// heuristic floor cannot fail, so every line gets a count.
func AnalyzeLines(lines []string, source TokenSource) []LineRecord {
	records := make([]LineRecord, 0, len(lines))
	handle := source.Resolve()

	for i, line := range lines {
		count, err := handle.EstimateTokenCount(line)
		for err != nil && handle.Tier() != tokenizer.TierHeuristic {
			handle = source.Demote(handle)
			count, err = handle.EstimateTokenCount(line)
		}
		if err != nil {
			// A failing heuristic tier is an implementation bug; keep
			// the batch alive with a zero count rather than abort.
			count = 0
		}

		records = append(records, LineRecord{
			Index:  i + 1,
			Text:   line,
			Words:  len(strings.Fields(line)),
			Chars:  utf8.RuneCountInString(line),
			Tokens: count,
			Tier:   handle.Tier(),
		})
	}
	return records
}
