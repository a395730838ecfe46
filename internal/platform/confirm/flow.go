// Package confirm models the confirm-then-delete-then-refresh flow used for
// every destructive action in the console. The flow is a small state machine,
// Idle -> PendingConfirm(target) -> Idle, rather than a nullable id plus a
// boolean, so the transitions stay unambiguous under test.
package confirm

import (
	"context"
	"errors"
	"sync"
)

// ErrNoPending is returned when Confirm or Cancel runs without a pending
// target.
var ErrNoPending = errors.New("no delete pending confirmation")

// State is the flow's current position.
type State int

const (
	Idle State = iota
	PendingConfirm
)

// Deleter performs the delete request for the target id.
type Deleter func(ctx context.Context, id string) error

// Refresher reloads the owning list at its current page and search. It runs
// exactly once per successful delete.
type Refresher func(ctx context.Context) error

// Flow holds one pending destructive action at a time.
type Flow struct {
	mu      sync.Mutex
	state   State
	target  string
	del     Deleter
	refresh Refresher
}

func New(del Deleter, refresh Refresher) *Flow {
	return &Flow{del: del, refresh: refresh}
}

// Request stages a delete for the given target and opens the confirmation
// prompt. No request is sent yet. Staging a new target replaces a previous
// pending one.
func (f *Flow) Request(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = PendingConfirm
	f.target = id
}

// Cancel discards the pending target without issuing any request.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != PendingConfirm {
		return ErrNoPending
	}
	f.state = Idle
	f.target = ""
	return nil
}

// Confirm issues the delete. On success the prompt closes and the list is
// refreshed once at its current position; deleting the last row of the last
// page may leave an empty page, which is accepted rather than auto-corrected.
// On failure the flow still returns to Idle: nothing was applied
// optimistically, so there is nothing to roll back.
func (f *Flow) Confirm(ctx context.Context) error {
	f.mu.Lock()
	if f.state != PendingConfirm {
		f.mu.Unlock()
		return ErrNoPending
	}
	target := f.target
	f.state = Idle
	f.target = ""
	f.mu.Unlock()

	if err := f.del(ctx, target); err != nil {
		return err
	}
	return f.refresh(ctx)
}

// State returns the flow's current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Target returns the staged id, empty unless a confirmation is pending.
func (f *Flow) Target() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target
}
