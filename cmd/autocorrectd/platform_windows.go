//go:build windows

package main

import (
	"github.com/anselmlong/autocorrect/internal/platform"
	winplatform "github.com/anselmlong/autocorrect/internal/platform/windows"
)

// newPlatform wires the real Win32 hook/SendInput/focus implementation on
// Windows builds (spec §9's platform-boundary design note: the engine and
// index are unchanged, only the port implementation differs).
func newPlatform() (platform.KeyboardHook, platform.SyntheticInputSink, platform.FocusObserver) {
	return winplatform.NewHook(), winplatform.NewSink(), winplatform.NewFocusObserver()
}
