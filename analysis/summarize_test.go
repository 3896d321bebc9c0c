package analysis

import (
	"testing"

	"github.com/randalmurphal/tokencap/tokenizer"
)

func TestSummarize_Totals(t *testing.T) {
	records := []LineRecord{
		{Index: 1, Text: "hello world", Words: 2, Chars: 11, Tokens: 3, Tier: tokenizer.TierHeuristic},
		{Index: 2, Text: "foo;bar", Words: 1, Chars: 7, Tokens: 2, Tier: tokenizer.TierHeuristic},
	}

	res := Summarize(records)
	agg := res.Aggregate

	if agg.Lines != 2 {
		t.Errorf("Lines = %d, expected 2", agg.Lines)
	}
	if agg.TotalWords != 3 || agg.TotalChars != 18 || agg.TotalTokens != 5 {
		t.Errorf("totals = %d words, %d chars, %d tokens; expected 3/18/5",
			agg.TotalWords, agg.TotalChars, agg.TotalTokens)
	}
	if agg.MeanTokens != 2.5 {
		t.Errorf("MeanTokens = %v, expected 2.5", agg.MeanTokens)
	}
	if agg.MeanWords != 1.5 {
		t.Errorf("MeanWords = %v, expected 1.5", agg.MeanWords)
	}
	if expected := 5.0 / 3.0; agg.TokensPerWord != expected {
		t.Errorf("TokensPerWord = %v, expected %v", agg.TokensPerWord, expected)
	}
	if res.DominantTier != tokenizer.TierHeuristic {
		t.Errorf("DominantTier = %s, expected heuristic", res.DominantTier)
	}
}

func TestSummarize_EmptyRecords(t *testing.T) {
	res := Summarize(nil)
	agg := res.Aggregate

	if agg.Lines != 0 {
		t.Errorf("Lines = %d, expected 0", agg.Lines)
	}
	// Means over zero records are exactly 0, never NaN.
	if agg.MeanWords != 0 || agg.MeanChars != 0 || agg.MeanTokens != 0 || agg.TokensPerWord != 0 {
		t.Errorf("expected all means 0, got %+v", agg)
	}
	if res.DominantTier != tokenizer.TierNone {
		t.Errorf("DominantTier = %q, expected none", res.DominantTier)
	}
}

func TestSummarize_DominantTier(t *testing.T) {
	tests := []struct {
		name     string
		tiers    []tokenizer.Tier
		expected tokenizer.Tier
	}{
		{
			name:     "plurality wins",
			tiers:    []tokenizer.Tier{tokenizer.TierHeuristic, tokenizer.TierHeuristic, tokenizer.TierPrimary},
			expected: tokenizer.TierHeuristic,
		},
		{
			name: "tie breaks toward the more trustworthy tier",
			tiers: []tokenizer.Tier{
				tokenizer.TierPrimary, tokenizer.TierPrimary,
				tokenizer.TierSecondary, tokenizer.TierSecondary,
			},
			expected: tokenizer.TierPrimary,
		},
		{
			name: "three-way tie reports primary",
			tiers: []tokenizer.Tier{
				tokenizer.TierHeuristic, tokenizer.TierSecondary, tokenizer.TierPrimary,
			},
			expected: tokenizer.TierPrimary,
		},
		{
			name:     "secondary/heuristic tie reports secondary",
			tiers:    []tokenizer.Tier{tokenizer.TierHeuristic, tokenizer.TierSecondary},
			expected: tokenizer.TierSecondary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]LineRecord, len(tt.tiers))
			for i, tier := range tt.tiers {
				records[i] = LineRecord{Index: i + 1, Tier: tier}
			}
			if res := Summarize(records); res.DominantTier != tt.expected {
				t.Errorf("DominantTier = %s, expected %s", res.DominantTier, tt.expected)
			}
		})
	}
}

func TestSummarize_MixedAttributionAfterDegradation(t *testing.T) {
	primary := &flakyHandle{tier: tokenizer.TierPrimary, failAfter: 2}
	secondary := &flakyHandle{tier: tokenizer.TierSecondary}
	source := &chainSource{handles: []tokenizer.Handle{primary, secondary}}

	records := AnalyzeLines([]string{"a", "b", "c"}, source)
	res := Summarize(records)

	// 2 primary lines vs 1 secondary: the mix, not the requested tier,
	// drives the dominant computation.
	if res.DominantTier != tokenizer.TierPrimary {
		t.Errorf("DominantTier = %s, expected primary", res.DominantTier)
	}
	if records[2].Tier != tokenizer.TierSecondary {
		t.Errorf("record 3 tier = %s, expected secondary", records[2].Tier)
	}
}
