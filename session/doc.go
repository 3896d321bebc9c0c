// Package session orchestrates analysis runs over the engine packages.
//
// A Session owns one validated analysis.Config and one session-scoped
// tokenizer.Provider. Each Analyze call is tagged with a monotonically
// increasing sequence number; a run that is no longer the latest when it
// completes is discarded with ErrSuperseded, so overlapping requests never
// interleave their results.
//
//	sess, err := session.New(analysis.DefaultConfig())
//	result, err := sess.Analyze(raw)
//	scenario, err := sess.Capacity(result, 1500, 5)
//
// Sessions can also load configuration from a TOML or YAML settings file
// (LoadSettings) and re-analyze a file whenever it changes (WatchFile).
package session
