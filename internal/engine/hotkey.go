package engine

import (
	"fmt"
	"strings"

	"github.com/anselmlong/autocorrect/internal/platform"
)

// Hotkey is a modifier combination plus a single trigger key, e.g.
// Ctrl+Shift+A.
type Hotkey struct {
	Modifiers  platform.Modifiers
	VirtualKey uint32
}

// undoHotkey is fixed, not configurable: Ctrl+Z (spec §4.D: "typically
// Ctrl+Z").
var undoHotkey = Hotkey{Modifiers: platform.ModCtrl, VirtualKey: vkZ}

const vkZ = 0x5A

// ParseHotkey parses a "Ctrl+Shift+A"-style string from config.toml's
// hotkey_toggle key (spec §6) into a Hotkey. Letter keys map to their
// uppercase ASCII value as the virtual-key code, matching the Windows VK_*
// convention where VK_A..VK_Z equal the ASCII codes of 'A'..'Z'.
func ParseHotkey(s string) (Hotkey, error) {
	parts := strings.Split(s, "+")
	if len(parts) == 0 {
		return Hotkey{}, fmt.Errorf("engine: empty hotkey")
	}
	var mods platform.Modifiers
	var key rune
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch strings.ToLower(p) {
		case "ctrl", "control":
			mods |= platform.ModCtrl
		case "shift":
			mods |= platform.ModShift
		case "alt":
			mods |= platform.ModAlt
		case "win", "super", "cmd":
			mods |= platform.ModWin
		default:
			if len(p) != 1 {
				return Hotkey{}, fmt.Errorf("engine: invalid hotkey trigger %q", p)
			}
			key = []rune(strings.ToUpper(p))[0]
		}
	}
	if key == 0 {
		return Hotkey{}, fmt.Errorf("engine: hotkey %q has no trigger key", s)
	}
	return Hotkey{Modifiers: mods, VirtualKey: uint32(key)}, nil
}

// ModifierState tracks Ctrl/Shift/Alt/Win press state from explicit
// key-down/key-up events rather than trusting a single event's modifiers
// snapshot. A synthetic key-repeat can otherwise arrive carrying a stale
// snapshot; tracking press/release directly is what the original
// implementation's corrector.rs does for ctrl_pressed specifically, and
// this generalises it to all four modifiers.
type ModifierState struct {
	ctrl, shift, alt, win bool
}

const (
	vkControl = 0x11
	vkShift   = 0x10
	vkMenu    = 0x12 // VK_MENU, the Alt key
	vkLWin    = 0x5B
	vkRWin    = 0x5C
)

// Observe updates tracked modifier state from a raw key event. It returns
// true if the event was a modifier key (so the caller can skip further
// per-key handling for it).
func (m *ModifierState) Observe(event platform.KeyEvent) bool {
	switch event.VirtualKey {
	case vkControl:
		m.ctrl = event.IsKeyDown
	case vkShift:
		m.shift = event.IsKeyDown
	case vkMenu:
		m.alt = event.IsKeyDown
	case vkLWin, vkRWin:
		m.win = event.IsKeyDown
	default:
		return false
	}
	return true
}

// Current reports the tracked modifier state as a Modifiers bitmask.
func (m *ModifierState) Current() platform.Modifiers {
	var mods platform.Modifiers
	if m.ctrl {
		mods |= platform.ModCtrl
	}
	if m.shift {
		mods |= platform.ModShift
	}
	if m.alt {
		mods |= platform.ModAlt
	}
	if m.win {
		mods |= platform.ModWin
	}
	return mods
}

// Matches reports whether event's virtual key, combined with the tracked
// modifier state, satisfies hotkey. Only the tracked state is compared;
// the event's own Modifiers field is not consulted.
func (m *ModifierState) Matches(hotkey Hotkey, event platform.KeyEvent) bool {
	if !event.IsKeyDown || event.VirtualKey != hotkey.VirtualKey {
		return false
	}
	return m.Current() == hotkey.Modifiers
}
