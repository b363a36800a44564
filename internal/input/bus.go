// Package input arbitrates the global keyboard stream.
//
// A Bus hands every key to at most one claimant. Components that need the
// keyboard exclusively (the gallery lightbox) claim it when they become
// active and release the claim when they stop, so there is never more than
// one live handler and none once the claimant is gone.
package input

import (
	"errors"
	"fmt"
)

// ErrClaimed is returned when the bus already has an active claim.
var ErrClaimed = errors.New("keyboard already claimed")

// Handler consumes a key (in Bubble Tea's string form, e.g. "right", "esc")
// and reports whether it was handled.
type Handler func(key string) bool

// Bus holds at most one active claim. The zero value is ready to use.
// It is not safe for concurrent use; Bubble Tea delivers messages on a single
// goroutine.
type Bus struct {
	active *Claim
}

// Claim is an exclusive subscription to the keyboard stream.
type Claim struct {
	bus     *Bus
	owner   string
	handler Handler
}

// Claim grants owner exclusive access to the keyboard.
func (b *Bus) Claim(owner string, h Handler) (*Claim, error) {
	if h == nil {
		return nil, fmt.Errorf("claim %q: nil handler", owner)
	}
	if b.active != nil {
		return nil, fmt.Errorf("claim %q: %w by %q", owner, ErrClaimed, b.active.owner)
	}
	c := &Claim{bus: b, owner: owner, handler: h}
	b.active = c
	return c, nil
}

// Dispatch hands key to the active claimant. It returns false when there is
// no claimant or the claimant did not handle the key.
func (b *Bus) Dispatch(key string) bool {
	if b == nil || b.active == nil {
		return false
	}
	return b.active.handler(key)
}

// Active reports the number of live claims (0 or 1).
func (b *Bus) Active() int {
	if b == nil || b.active == nil {
		return 0
	}
	return 1
}

// Owner returns the name of the current claimant, or "".
func (b *Bus) Owner() string {
	if b == nil || b.active == nil {
		return ""
	}
	return b.active.owner
}

// Release drops the claim. Releasing twice, or releasing a claim that has
// been superseded, is a no-op.
func (c *Claim) Release() {
	if c == nil || c.bus == nil {
		return
	}
	if c.bus.active == c {
		c.bus.active = nil
	}
	c.bus = nil
}

// Held reports whether the claim is still the bus's active claim.
func (c *Claim) Held() bool {
	return c != nil && c.bus != nil && c.bus.active == c
}
