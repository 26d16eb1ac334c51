// Package simulated provides an in-process fake KeyboardHook and
// SyntheticInputSink, used by tests and by non-Windows development runs of
// cmd/autocorrectd. It has no OS dependency: Feed delivers events the way
// a real hook would, and Sink records what the engine asked it to type.
package simulated

import (
	"context"
	"errors"
	"sync"

	"github.com/anselmlong/autocorrect/internal/platform"
)

var errSendFailed = errors.New("simulated: send failed")

// Hook is a fake KeyboardHook a test drives directly via Feed.
type Hook struct {
	mu        sync.Mutex
	handler   func(platform.KeyEvent) platform.Decision
	installed bool
}

func NewHook() *Hook { return &Hook{} }

func (h *Hook) Install(handler func(platform.KeyEvent) platform.Decision) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = handler
	h.installed = true
	return nil
}

func (h *Hook) Uninstall() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.installed = false
	h.handler = nil
	return nil
}

// Feed delivers event to the installed handler and returns its decision.
// Returns Passthrough with no effect if no handler is installed.
func (h *Hook) Feed(event platform.KeyEvent) platform.Decision {
	h.mu.Lock()
	handler := h.handler
	h.mu.Unlock()
	if handler == nil {
		return platform.Passthrough
	}
	return handler(event)
}

// Sink is a fake SyntheticInputSink that records every plan it is asked to
// send, optionally failing on command for testing the retry/abort path.
type Sink struct {
	mu       sync.Mutex
	Sent     []platform.ReplayPlan
	FailNext int // number of upcoming Send calls to fail
}

func NewSink() *Sink { return &Sink{} }

func (s *Sink) Send(ctx context.Context, plan platform.ReplayPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailNext > 0 {
		s.FailNext--
		return errSendFailed
	}
	s.Sent = append(s.Sent, plan)
	return nil
}

// Text reconstructs the characters the n-th sent plan typed, ignoring
// backspaces and sleeps — useful for asserting what a test run produced.
func (s *Sink) Text(n int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n >= len(s.Sent) {
		return ""
	}
	var out []rune
	for _, op := range s.Sent[n].Ops {
		if op.Kind == platform.OpType {
			out = append(out, op.Char)
		}
	}
	return string(out)
}

// FocusObserver is a fake FocusObserver a test can push snapshots into.
type FocusObserver struct {
	mu        sync.Mutex
	current   platform.FocusSnapshot
	listeners []func(platform.FocusSnapshot)
}

func NewFocusObserver(initial platform.FocusSnapshot) *FocusObserver {
	return &FocusObserver{current: initial}
}

func (f *FocusObserver) Snapshot() platform.FocusSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *FocusObserver) Subscribe(onChange func(platform.FocusSnapshot)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, onChange)
	idx := len(f.listeners) - 1
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.listeners[idx] = nil
	}
}

// SetFocus changes the current focus snapshot and notifies subscribers,
// simulating an OS focus-change event.
func (f *FocusObserver) SetFocus(snapshot platform.FocusSnapshot) {
	f.mu.Lock()
	f.current = snapshot
	listeners := append([]func(platform.FocusSnapshot){}, f.listeners...)
	f.mu.Unlock()
	for _, l := range listeners {
		if l != nil {
			l(snapshot)
		}
	}
}
