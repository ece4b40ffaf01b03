package onboarding

import (
	"context"
	"sync"
	"time"
)

// DefaultFinishDelay is how long the finishing screen stays up before the
// main application takes over.
const DefaultFinishDelay = 1500 * time.Millisecond

// Navigator is the entry point into the main application.
type Navigator interface {
	ProceedToMain()
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) ProceedToMain() { f() }

// Handoff delivers the single "proceed to main application" signal that ends
// onboarding. The signal carries no selection.
//
// Cancellation is not part of the contract: Wait honours its context so
// callers can shut down cleanly, but nothing returns a finishing session to
// step 3.
type Handoff struct {
	nav   Navigator
	delay time.Duration
	mu    sync.Mutex
	fired bool
}

// NewHandoff returns a handoff to nav after delay. A non-positive delay uses
// DefaultFinishDelay.
func NewHandoff(nav Navigator, delay time.Duration) *Handoff {
	if delay <= 0 {
		delay = DefaultFinishDelay
	}
	return &Handoff{nav: nav, delay: delay}
}

// Delay returns the fixed finishing duration.
func (h *Handoff) Delay() time.Duration { return h.delay }

// Fire invokes the navigator. Only the first call has any effect; it
// returns true exactly once.
func (h *Handoff) Fire() bool {
	h.mu.Lock()
	if h.fired {
		h.mu.Unlock()
		return false
	}
	h.fired = true
	h.mu.Unlock()

	if h.nav != nil {
		h.nav.ProceedToMain()
	}
	return true
}

// Fired reports whether the navigator has been invoked.
func (h *Handoff) Fired() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fired
}

// Wait blocks for the delay and then fires. If ctx is done first the
// navigator is not invoked and ctx.Err() is returned.
func (h *Handoff) Wait(ctx context.Context) error {
	t := time.NewTimer(h.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		h.Fire()
		return nil
	}
}
