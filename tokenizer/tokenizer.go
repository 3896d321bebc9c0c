package tokenizer

import "unicode/utf8"

// Tier identifies one tokenizer implementation in the fallback chain.
type Tier string

const (
	// TierNone means no tier has been resolved yet.
	TierNone Tier = ""

	// TierPrimary is a BPE encoding matched to the requested hint.
	TierPrimary Tier = "primary"

	// TierSecondary is the fixed default BPE encoding.
	TierSecondary Tier = "secondary"

	// TierHeuristic is the character-length estimate.
	TierHeuristic Tier = "heuristic"
)

// TierOrder lists the tiers from most to least trustworthy.
var TierOrder = []Tier{TierPrimary, TierSecondary, TierHeuristic}

// Rank returns the tier's position in the priority order (0 = most
// trustworthy). Unknown tiers rank below all known ones.
func (t Tier) Rank() int {
	for i, tier := range TierOrder {
		if t == tier {
			return i
		}
	}
	return len(TierOrder)
}

// Mode selects how a Provider resolves tiers.
type Mode string

const (
	// ModeAuto tries the tiers in priority order.
	ModeAuto Mode = "auto"

	// ModeHeuristic selects the heuristic tier directly, without
	// attempting the BPE-backed tiers.
	ModeHeuristic Mode = "heuristic"
)

// Valid reports whether the mode is a known tokenizer mode.
// The empty string is treated as ModeAuto.
func (m Mode) Valid() bool {
	return m == ModeAuto || m == ModeHeuristic || m == ""
}

// Handle is an active tokenizer of a specific tier.
type Handle interface {
	// EstimateTokenCount returns a non-negative token count for text.
	// BPE-backed tiers may fail at runtime; the heuristic tier cannot.
	EstimateTokenCount(text string) (int, error)

	// Tier identifies which tier produced the counts.
	Tier() Tier

	// Encoding names the encoding in use ("cl100k_base", "heuristic", ...).
	Encoding() string
}

// HeuristicCharsPerToken is the character-to-token ratio of the heuristic
// tier. Approximately 4 characters equals 1 token for English text.
const HeuristicCharsPerToken = 4

type heuristicHandle struct{}

// NewHeuristicHandle returns the heuristic tier handle. It needs no
// external data and never fails.
func NewHeuristicHandle() Handle { return heuristicHandle{} }

// EstimateTokenCount returns ceil(runeCount/4). Runes (Unicode code
// points) are counted rather than bytes.
func (heuristicHandle) EstimateTokenCount(text string) (int, error) {
	n := utf8.RuneCountInString(text)
	return (n + HeuristicCharsPerToken - 1) / HeuristicCharsPerToken, nil
}

func (heuristicHandle) Tier() Tier { return TierHeuristic }

func (heuristicHandle) Encoding() string { return "heuristic" }
