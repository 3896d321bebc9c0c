// Package tokencap estimates token counts and capacity requirements for
// batches of text lines.
//
// tokencap is built around a tiered tokenizer strategy: a real BPE encoding
// matched to the requested model or encoding name, a fixed default encoding
// as fallback, and a character-length heuristic that needs no external data.
// Each subpackage can be used independently:
//
//   - tokenizer: tiered tokenizer resolution with graceful degradation
//   - analysis: line normalization, per-line metrics, aggregation
//   - capacity: Capacity-Unit (CU) demand projection
//   - session: analysis orchestration, settings files, input watching
//   - export: JSON/YAML serialization and JSON Schema for scripted use
//
// # Quick Start
//
// Analyze a batch of lines:
//
//	sess, _ := session.New(analysis.DefaultConfig())
//	result, _ := sess.Analyze("What is sales by region?\nShow top customers")
//	fmt.Println(result.Aggregate.MeanTokens, result.DominantTier)
//
// Project daily capacity from the result:
//
//	scenario, _ := capacity.Estimate(result.Aggregate.MeanTokens, 1500, 5)
//	fmt.Println(scenario.CapacityNeed)
//
// # Design Philosophy
//
//   - Tier failures degrade, never abort: a heuristic estimate is always
//     available, and every record carries the tier that produced it
//   - Engine packages compute; callers render, persist, and export
//   - Interfaces for extensibility, concrete types for simplicity
package tokencap
