package platform

import "time"

// TargetClass is the tagged variant of spec §3/§4.E: the classification of
// the focused application that selects replay method and pacing.
type TargetClass int

const (
	TargetStandard TargetClass = iota
	TargetWebView
	TargetBrowser
	TargetClassUnknown
)

func (c TargetClass) String() string {
	switch c {
	case TargetStandard:
		return "Standard"
	case TargetWebView:
		return "WebView"
	case TargetBrowser:
		return "Browser"
	default:
		return "Unknown"
	}
}

// ReplayOpKind enumerates the primitive operations a ReplayPlan is made of.
type ReplayOpKind int

const (
	OpBackspace ReplayOpKind = iota
	OpType
	OpSleep
)

// ReplayOp is a single primitive instruction addressed to the synthetic
// input port.
type ReplayOp struct {
	Kind ReplayOpKind
	// Char is set for OpType.
	Char rune
	// Delay is set for OpSleep — the pacing between keys (spec §4.E: 5 ms
	// Standard, 10 ms WebView/Browser).
	Delay time.Duration
}

// ReplayPlan is the ordered sequence of primitive operations the engine
// asks the synthetic-input port to perform: N backspaces, the Unicode-safe
// replacement text, then the terminator again (spec §4.E).
type ReplayPlan struct {
	Class TargetClass
	Ops   []ReplayOp
	// Budget is the overall time the plan is allowed to take; exceeding it
	// is an abort, not a torn-output attempt (spec §4.E).
	Budget time.Duration
}
