package tokenizer

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Provider resolves a working tokenizer handle through the ordered tier
// fallback chain. Tier state is scoped to the provider instance, so
// independent analysis sessions do not interfere.
type Provider struct {
	hint string
	mode Mode

	group singleflight.Group

	mu       sync.RWMutex
	active   Handle
	failures []error

	// Tier constructors, replaceable in tests.
	newPrimary   func(hint string) (Handle, error)
	newSecondary func() (Handle, error)
}

// NewProvider creates a provider for the given model/encoding hint and
// resolution mode. No tier is attempted until Resolve is called.
func NewProvider(hint string, mode Mode) *Provider {
	if mode == "" {
		mode = ModeAuto
	}
	return &Provider{
		hint:         hint,
		mode:         mode,
		newPrimary:   newPrimaryHandle,
		newSecondary: newSecondaryHandle,
	}
}

// Resolve returns the active handle, attempting the tiers in priority
// order on first use. The outcome is memoized until Invalidate; concurrent
// callers arriving during resolution wait on the same attempt instead of
// starting their own. Resolve never fails: the heuristic tier is the floor.
func (p *Provider) Resolve() Handle {
	p.mu.RLock()
	if h := p.active; h != nil {
		p.mu.RUnlock()
		return h
	}
	p.mu.RUnlock()

	v, _, _ := p.group.Do("resolve", func() (any, error) {
		p.mu.RLock()
		h := p.active
		p.mu.RUnlock()
		if h != nil {
			return h, nil
		}

		h, failures := p.attemptTiers()
		p.mu.Lock()
		p.active = h
		p.failures = append(p.failures, failures...)
		p.mu.Unlock()
		return h, nil
	})
	return v.(Handle)
}

// attemptTiers walks the fallback chain and returns the first handle that
// initializes, collecting the load errors absorbed along the way.
func (p *Provider) attemptTiers() (Handle, []error) {
	if p.mode == ModeHeuristic {
		return NewHeuristicHandle(), nil
	}

	var failures []error
	if h, err := p.newPrimary(p.hint); err == nil {
		return h, nil
	} else {
		failures = append(failures, err)
	}
	if h, err := p.newSecondary(); err == nil {
		return h, failures
	} else {
		failures = append(failures, err)
	}
	return NewHeuristicHandle(), failures
}

// Demote resolves the next lower tier after a mid-batch handle failure and
// makes it the active handle for the remainder of the session. Demoting
// the heuristic tier returns it unchanged.
func (p *Provider) Demote(h Handle) Handle {
	var next Handle
	var failure error

	switch h.Tier() {
	case TierPrimary:
		if s, err := p.newSecondary(); err == nil {
			next = s
		} else {
			failure = err
			next = NewHeuristicHandle()
		}
	case TierSecondary:
		next = NewHeuristicHandle()
	default:
		return h
	}

	p.mu.Lock()
	p.active = next
	if failure != nil {
		p.failures = append(p.failures, failure)
	}
	p.mu.Unlock()
	return next
}

// ActiveTier reports which tier is currently active, or TierNone before
// the first resolution. Callers use this to surface fallback notices.
func (p *Provider) ActiveTier() Tier {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.active == nil {
		return TierNone
	}
	return p.active.Tier()
}

// Failures returns the load errors absorbed so far, in occurrence order.
func (p *Provider) Failures() []error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]error, len(p.failures))
	copy(out, p.failures)
	return out
}

// Invalidate clears the memoized handle so the next Resolve re-attempts
// the chain, e.g. after a tokenizer-mode or encoding change.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.active = nil
	p.failures = nil
	p.mu.Unlock()
}
