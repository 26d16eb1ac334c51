//go:build !windows

package main

import (
	"github.com/anselmlong/autocorrect/internal/platform"
	"github.com/anselmlong/autocorrect/internal/platform/simulated"
)

// newPlatform falls back to the in-process simulated port implementations
// on non-Windows builds. There is no low-level keyboard hook or synthetic
// input primitive to target outside Win32 here; this keeps the daemon
// runnable for development without one, per spec §9.
func newPlatform() (platform.KeyboardHook, platform.SyntheticInputSink, platform.FocusObserver) {
	return simulated.NewHook(), simulated.NewSink(), simulated.NewFocusObserver(platform.FocusSnapshot{})
}
