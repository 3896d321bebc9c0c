package session

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/randalmurphal/tokencap/analysis"
	"github.com/randalmurphal/tokencap/capacity"
	"github.com/randalmurphal/tokencap/tokenizer"
)

// ErrSuperseded marks an analysis discarded because a newer request
// arrived before it completed. Callers that serialize their requests
// never see it.
var ErrSuperseded = errors.New("analysis superseded by a newer request")

// Session runs analyses under one configuration with session-scoped
// tokenizer tier state.
type Session struct {
	mu       sync.Mutex
	cfg      analysis.Config
	provider *tokenizer.Provider

	seq atomic.Uint64
}

// New creates a session with the given configuration. The configuration
// is validated up front; no tokenizer tier is attempted until the first
// analysis.
func New(cfg analysis.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		cfg:      cfg,
		provider: tokenizer.NewProvider(cfg.Encoding, cfg.TokenizerMode),
	}, nil
}

// Config returns the session's current configuration.
func (s *Session) Config() analysis.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// SetConfig replaces the configuration. When the encoding hint or
// tokenizer mode changed, the memoized tier resolution is invalidated and
// the next analysis re-attempts the chain.
func (s *Session) SetConfig(cfg analysis.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.Encoding != s.cfg.Encoding || cfg.TokenizerMode != s.cfg.TokenizerMode {
		s.provider = tokenizer.NewProvider(cfg.Encoding, cfg.TokenizerMode)
	}
	s.cfg = cfg
	return nil
}

// ActiveTier reports the tokenizer tier of the most recent resolution,
// or TierNone before the first analysis.
func (s *Session) ActiveTier() tokenizer.Tier {
	s.mu.Lock()
	p := s.provider
	s.mu.Unlock()
	return p.ActiveTier()
}

// TierFailures returns the tokenizer load errors absorbed so far.
func (s *Session) TierFailures() []error {
	s.mu.Lock()
	p := s.provider
	s.mu.Unlock()
	return p.Failures()
}

// Analyze normalizes raw input, analyzes every line, and summarizes the
// records. A run that has been superseded by a newer Analyze call returns
// ErrSuperseded instead of a result.
func (s *Session) Analyze(raw string) (*analysis.Result, error) {
	return s.analyze(raw, s.seq.Add(1))
}

// analyze runs one sequence-tagged request. The result is kept only when
// seq is still the latest at completion.
func (s *Session) analyze(raw string, seq uint64) (*analysis.Result, error) {
	s.mu.Lock()
	cfg := s.cfg
	provider := s.provider
	s.mu.Unlock()

	lines, err := analysis.Normalize(raw, cfg)
	if err != nil {
		return nil, err
	}
	records := analysis.AnalyzeLines(lines, provider)
	result := analysis.Summarize(records)

	if s.seq.Load() != seq {
		return nil, ErrSuperseded
	}
	return result, nil
}

// Capacity projects a capacity scenario from a completed result's mean
// token count and the given demand parameters.
func (s *Session) Capacity(result *analysis.Result, usersPerDay, questionsPerUser float64) (*capacity.Scenario, error) {
	if result == nil {
		return nil, fmt.Errorf("capacity projection requires a completed analysis result")
	}
	return capacity.Estimate(result.Aggregate.MeanTokens, usersPerDay, questionsPerUser)
}
