// Package platform defines the abstract input/output ports the engine is
// built against (spec.md §1, §6, §9: "the core is expressed entirely over
// two abstract ports; a non-Windows port needs only new implementations of
// those ports, not changes to the engine or index"). internal/platform/windows
// and internal/platform/simulated provide concrete implementations.
package platform

import (
	"context"
	"fmt"
)

// HookInstallError reports a failed KeyboardHook.Install call. Per spec §7
// this is fatal at startup: the caller should exit 1 with a user-visible
// message.
type HookInstallError struct {
	Err error
}

func (e *HookInstallError) Error() string { return fmt.Sprintf("platform: hook install failed: %v", e.Err) }
func (e *HookInstallError) Unwrap() error  { return e.Err }

// Modifiers is a bitmask of the keyboard modifier keys held at the time of
// an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModWin
)

func (m Modifiers) Has(flag Modifiers) bool { return m&flag != 0 }

// KeyEvent is the normalised form of one keydown/keyup delivered by the
// OS-level global hook (spec §6's keystroke input port).
type KeyEvent struct {
	VirtualKey uint32
	Scancode   uint32
	// Char is the character the current keyboard layout produces for this
	// key, if any; absent for navigation/function/modifier keys.
	Char      rune
	HasChar   bool
	IsKeyDown bool
	// IsInjected marks synthetic input (including our own replay) so the
	// engine can ignore it and avoid a feedback loop (spec §9).
	IsInjected bool
	Modifiers  Modifiers
}

// Decision is the engine's synchronous verdict on a KeyEvent.
type Decision int

const (
	Passthrough Decision = iota
	Suppress
)

// TargetTag classifies the sensitivity of the currently focused input
// field. The interface exists even though only Unknown is produced today
// (spec §9 open question): a real implementation tags secret/password
// fields so the engine can refuse to correct them.
type TargetTag int

const (
	TargetUnknown TargetTag = iota
	TargetNormal
	TargetSecret
)

// FocusSnapshot is a short-lived view of the currently focused window,
// recomputed per commit (spec §3's TargetClass is derived from this).
type FocusSnapshot struct {
	WindowClass string
	ProcessName string
	// TargetID opaquely identifies the focused control so the undo buffer
	// can detect a focus change between commit and undo (spec §4.F).
	TargetID string
	Tag      TargetTag
}

// KeyboardHook installs a process-wide keystroke callback. Handler is
// invoked synchronously on the hook's dedicated thread and must return
// within microseconds (spec §5); Install failing is a fatal HookInstallError.
type KeyboardHook interface {
	Install(handler func(KeyEvent) Decision) error
	Uninstall() error
}

// SyntheticInputSink performs a ReplayPlan's primitive operations against
// whatever currently holds focus.
type SyntheticInputSink interface {
	// Send executes plan and reports success or failure as a whole; a
	// failure partway through still returns an error, never a partial
	// success (spec §4.E: "a second failure aborts").
	Send(ctx context.Context, plan ReplayPlan) error
}

// FocusObserver exposes the currently focused target and notifies
// subscribers when it changes.
type FocusObserver interface {
	Snapshot() FocusSnapshot
	// Subscribe registers onChange for focus-change notifications and
	// returns a function that unsubscribes it.
	Subscribe(onChange func(FocusSnapshot)) (unsubscribe func())
}
