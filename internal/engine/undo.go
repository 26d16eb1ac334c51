package engine

import (
	"sync"
	"time"

	"github.com/anselmlong/autocorrect/internal/platform"
)

// UndoRecord holds the state needed to reverse the most recent correction
// (spec §3). At most one record is live at a time.
type UndoRecord struct {
	Original    string
	Replacement string
	Terminator  string
	CommittedAt time.Time
	TargetID    string
	Class       platform.TargetClass
}

// UndoBuffer is the single-slot holder with timestamp of component F.
type UndoBuffer struct {
	mu      sync.Mutex
	record  *UndoRecord
	timeout time.Duration
}

func NewUndoBuffer(timeout time.Duration) *UndoBuffer {
	return &UndoBuffer{timeout: timeout}
}

// Set installs record as the live undo state, replacing any prior one.
func (u *UndoBuffer) Set(record UndoRecord) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.record = &record
}

// Invalidate clears the slot unconditionally. reason is informational
// only; the buffer neither logs nor stores it.
func (u *UndoBuffer) Invalidate(reason string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.record = nil
}

// TryConsume returns the live record and clears the slot iff: the hotkey
// matched the configured undo hotkey, the record's age at now is within
// the grace window, and targetID matches the record's target. Otherwise it
// returns (nil, false); an expired-but-present record is cleared as a side
// effect of this call (spec §4.F).
func (u *UndoBuffer) TryConsume(now time.Time, hotkeyMatched bool, targetID string) (*UndoRecord, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.record == nil {
		return nil, false
	}
	record := u.record

	expired := now.Sub(record.CommittedAt) > u.timeout
	if expired {
		u.record = nil
		return nil, false
	}
	if !hotkeyMatched {
		return nil, false
	}
	if targetID != record.TargetID {
		return nil, false
	}

	u.record = nil
	return record, true
}

// Peek reports whether a record is currently live, without consuming it.
func (u *UndoBuffer) Peek() (UndoRecord, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.record == nil {
		return UndoRecord{}, false
	}
	return *u.record, true
}
