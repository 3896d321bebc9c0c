package analysis

import "github.com/randalmurphal/tokencap/tokenizer"

// Aggregate holds totals and arithmetic means over a record set. Means
// over zero records are exactly 0, never NaN.
type Aggregate struct {
	Lines       int     `json:"lines" yaml:"lines"`
	TotalWords  int     `json:"total_words" yaml:"total_words"`
	TotalChars  int     `json:"total_chars" yaml:"total_chars"`
	TotalTokens int     `json:"total_tokens" yaml:"total_tokens"`
	MeanWords   float64 `json:"mean_words" yaml:"mean_words"`
	MeanChars   float64 `json:"mean_chars" yaml:"mean_chars"`
	MeanTokens  float64 `json:"mean_tokens" yaml:"mean_tokens"`

	// TokensPerWord is TotalTokens/TotalWords, 0 when there are no words.
	TokensPerWord float64 `json:"tokens_per_word" yaml:"tokens_per_word"`
}

// Result is the outcome of one analysis run. It owns its record sequence;
// records appear in input order.
type Result struct {
	Records   []LineRecord `json:"lines" yaml:"lines"`
	Aggregate Aggregate    `json:"totals" yaml:"totals"`

	// DominantTier is the tier used by the plurality of lines, ties
	// broken toward the more trustworthy tier. TierNone for zero lines.
	DominantTier tokenizer.Tier `json:"dominant_tier,omitempty" yaml:"dominant_tier,omitempty"`
}

// Summarize reduces per-line records into a Result.
func Summarize(records []LineRecord) *Result {
	res := &Result{Records: records}
	agg := &res.Aggregate
	agg.Lines = len(records)

	tierCounts := make(map[tokenizer.Tier]int, len(tokenizer.TierOrder))
	for _, r := range records {
		agg.TotalWords += r.Words
		agg.TotalChars += r.Chars
		agg.TotalTokens += r.Tokens
		tierCounts[r.Tier]++
	}

	if agg.Lines > 0 {
		n := float64(agg.Lines)
		agg.MeanWords = float64(agg.TotalWords) / n
		agg.MeanChars = float64(agg.TotalChars) / n
		agg.MeanTokens = float64(agg.TotalTokens) / n
	}
	if agg.TotalWords > 0 {
		agg.TokensPerWord = float64(agg.TotalTokens) / float64(agg.TotalWords)
	}

	res.DominantTier = dominantTier(tierCounts)
	return res
}

// dominantTier returns the plurality tier. Walking TierOrder with a
// strict comparison makes ties resolve to the higher-priority tier.
func dominantTier(counts map[tokenizer.Tier]int) tokenizer.Tier {
	best := tokenizer.TierNone
	bestCount := 0
	for _, tier := range tokenizer.TierOrder {
		if c := counts[tier]; c > bestCount {
			best, bestCount = tier, c
		}
	}
	return best
}
