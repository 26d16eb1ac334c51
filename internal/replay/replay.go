// Package replay implements component E: classifying the focused target
// and turning a correction into a concrete, paced ReplayPlan of synthetic
// backspaces and typed characters (spec.md §4.E).
package replay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anselmlong/autocorrect/internal/platform"
)

// ReplayFailed reports that a plan could not be delivered even after the
// one retry Send makes. It is non-fatal: the
// engine abandons the correction for that commit and does NOT prime the
// undo buffer (spec §7).
type ReplayFailed struct {
	Class platform.TargetClass
	Err   error
}

func (e *ReplayFailed) Error() string {
	return fmt.Sprintf("replay: failed for target class %s: %v", e.Class, e.Err)
}
func (e *ReplayFailed) Unwrap() error { return e.Err }

// standardDelay and webDelay are the per-key pacing of §4.E: 5 ms for
// Standard targets, 10 ms for WebView/Browser so the replay survives
// virtual-DOM reconciliation.
const (
	standardDelay = 5 * time.Millisecond
	webDelay      = 10 * time.Millisecond
)

// DefaultBudget bounds how long a single plan may take to play out before
// the engine aborts it rather than risk torn output.
const DefaultBudget = 500 * time.Millisecond

// webViewClasses and browserClasses hold the window-class substrings that
// identify known web-view shells and browser families. This is a small,
// extensible table rather than an exhaustive one — classify falls back to
// Standard/Unknown for anything it doesn't recognise, which is always safe.
var webViewClasses = []string{
	"Chrome_WidgetWin_0", // Electron/CEF shells commonly reuse this class
	"WebView2",
	"EmbeddedBrowserWebView",
}

var browserClasses = []string{
	"Chrome_WidgetWin_1",
	"MozillaWindowClass",
	"ApplicationFrameWindow", // Edge (legacy) / UWP browser shells
}

// Classify derives a TargetClass from a focus snapshot, per §4.E's
// "checked in order, first match wins" rule.
func Classify(snapshot platform.FocusSnapshot) platform.TargetClass {
	class := snapshot.WindowClass
	if matchesAny(class, webViewClasses) {
		return platform.TargetWebView
	}
	if matchesAny(class, browserClasses) {
		return platform.TargetBrowser
	}
	if class == "" {
		return platform.TargetClassUnknown
	}
	return platform.TargetStandard
}

func matchesAny(class string, known []string) bool {
	for _, k := range known {
		if strings.Contains(class, k) {
			return true
		}
	}
	return false
}

// PlanReplace builds the ReplayPlan for replacing wordTyped (already
// accepted by the target, followed by terminator) with replacement,
// per §4.E step-by-step: N backspaces where N = len(wordTyped) + len(terminator),
// then the Unicode-safe replacement text, then the terminator again.
func PlanReplace(wordTyped, replacement, terminator string, class platform.TargetClass) platform.ReplayPlan {
	delay := standardDelay
	if class == platform.TargetWebView || class == platform.TargetBrowser {
		delay = webDelay
	}

	backspaces := len([]rune(wordTyped)) + len([]rune(terminator))
	ops := make([]platform.ReplayOp, 0, backspaces*2+len([]rune(replacement))*2+len([]rune(terminator))*2)

	appendPaced := func(op platform.ReplayOp) {
		ops = append(ops, op)
		ops = append(ops, platform.ReplayOp{Kind: platform.OpSleep, Delay: delay})
	}

	for i := 0; i < backspaces; i++ {
		appendPaced(platform.ReplayOp{Kind: platform.OpBackspace})
	}
	for _, r := range replacement {
		appendPaced(platform.ReplayOp{Kind: platform.OpType, Char: r})
	}
	for _, r := range terminator {
		appendPaced(platform.ReplayOp{Kind: platform.OpType, Char: r})
	}

	return platform.ReplayPlan{Class: class, Ops: ops, Budget: DefaultBudget}
}

// NetKeystrokes reports the number of keystrokes plan ultimately delivers
// to the target beyond the backspaces — i.e. len(replacement)+len(terminator)
// — the invariant checked in spec §8 property 7.
func NetKeystrokes(plan platform.ReplayPlan) int {
	n := 0
	for _, op := range plan.Ops {
		if op.Kind == platform.OpType {
			n++
		}
	}
	return n
}

// Backspaces reports how many OpBackspace entries plan contains.
func Backspaces(plan platform.ReplayPlan) int {
	n := 0
	for _, op := range plan.Ops {
		if op.Kind == platform.OpBackspace {
			n++
		}
	}
	return n
}

// Send delivers plan through sink, retrying once on failure; a second
// failure returns *ReplayFailed. The retry passes the same plan to the same
// sink: Send does not switch delivery methods, and the sinks in this
// repository (internal/platform/windows, internal/platform/simulated) use a
// single delivery method for every target class.
func Send(ctx context.Context, sink platform.SyntheticInputSink, plan platform.ReplayPlan) error {
	if err := sink.Send(ctx, plan); err != nil {
		if err2 := sink.Send(ctx, plan); err2 != nil {
			return &ReplayFailed{Class: plan.Class, Err: err2}
		}
	}
	return nil
}

// EstimatedDuration sums the plan's paced sleeps, the quantity the engine
// compares against Budget before committing to a replay.
func EstimatedDuration(plan platform.ReplayPlan) time.Duration {
	var total time.Duration
	for _, op := range plan.Ops {
		if op.Kind == platform.OpSleep {
			total += op.Delay
		}
	}
	return total
}
