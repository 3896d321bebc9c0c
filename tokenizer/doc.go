// Package tokenizer provides tiered token counting with graceful degradation.
//
// Three tiers share one capability, estimating the token count of a text
// unit, and differ in fidelity and in what they need to initialize:
//
//   - TierPrimary: a BPE encoding matched to the requested model or
//     encoding name (tiktoken-backed, may need to load encoding data)
//   - TierSecondary: the fixed default encoding (cl100k_base)
//   - TierHeuristic: ceil(characters/4), pure and always available
//
// A Provider resolves the tiers in that order, memoizing the first one that
// initializes. Tier failures are absorbed, never surfaced as fatal errors;
// the caller can inspect ActiveTier to report that a fallback occurred.
//
//	p := tokenizer.NewProvider("gpt-4o-mini", tokenizer.ModeAuto)
//	h := p.Resolve()
//	count, _ := h.EstimateTokenCount("What is sales by region?")
//
// Resolution happens at most once per provider until Invalidate is called.
// Concurrent Resolve calls share a single in-flight attempt. A handle that
// fails mid-batch can be traded for the next lower tier with Demote.
package tokenizer
