package engine

import (
	"testing"
	"time"

	"github.com/anselmlong/autocorrect/internal/platform"
	"github.com/anselmlong/autocorrect/internal/platform/simulated"
	"github.com/anselmlong/autocorrect/pkg/symspell"
)

func testIndex(t *testing.T) *symspell.Index {
	t.Helper()
	ix, err := symspell.Build([]symspell.DictionaryEntry{
		{Word: "the", Frequency: 100},
		{Word: "then", Frequency: 50},
		{Word: "hello", Frequency: 40},
		{Word: "receive", Frequency: 10},
	})
	if err != nil {
		t.Fatalf("symspell.Build: %v", err)
	}
	return ix
}

func newTestEngine(t *testing.T, sink *simulated.Sink, focus *simulated.FocusObserver) *Engine {
	t.Helper()
	toggle, _ := ParseHotkey("Ctrl+Shift+A")
	cfg := Config{
		MaxEditDistance:  2,
		UndoTimeout:      5 * time.Second,
		ToggleHotkey:     toggle,
		EnabledByDefault: true,
	}
	// A nil *simulated.FocusObserver must reach New as a nil interface, not
	// as a non-nil interface holding a nil pointer.
	var fo platform.FocusObserver
	if focus != nil {
		fo = focus
	}
	e := New(cfg, sink, fo, nil)
	e.SetIndex(testIndex(t))
	t.Cleanup(e.Shutdown)
	return e
}

func letterEvent(ch rune) platform.KeyEvent {
	return platform.KeyEvent{VirtualKey: uint32(ch), Char: ch, HasChar: true, IsKeyDown: true}
}

func typeWord(e *Engine, word string) {
	for _, r := range word {
		e.HandleKeyEvent(letterEvent(r))
	}
}

func waitForSent(t *testing.T, sink *simulated.Sink, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if func() bool { return len(sink.Sent) >= n }() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d sent plans, got %d", n, len(sink.Sent))
}

// S1: happy path.
func TestEngine_S1_HappyPath(t *testing.T) {
	sink := simulated.NewSink()
	focus := simulated.NewFocusObserver(platform.FocusSnapshot{TargetID: "win1"})
	e := newTestEngine(t, sink, focus)

	typeWord(e, "teh")
	decision := e.HandleKeyEvent(letterEvent(' '))
	if decision != platform.Suppress {
		t.Fatalf("decision for committing terminator = %v, want Suppress", decision)
	}

	waitForSent(t, sink, 1)
	if got := sink.Text(0); got != "the " {
		t.Errorf("replayed text = %q, want %q", got, "the ")
	}
	record, ok := e.undo.Peek()
	if !ok || record.Original != "teh" || record.Replacement != "the" {
		t.Fatalf("undo record = %+v, ok=%v, want {teh the}", record, ok)
	}
}

// S2: undo.
func TestEngine_S2_Undo(t *testing.T) {
	sink := simulated.NewSink()
	focus := simulated.NewFocusObserver(platform.FocusSnapshot{TargetID: "win1"})
	e := newTestEngine(t, sink, focus)

	typeWord(e, "teh")
	e.HandleKeyEvent(letterEvent(' '))
	waitForSent(t, sink, 1)

	ctrlDown := platform.KeyEvent{VirtualKey: vkControl, IsKeyDown: true}
	e.HandleKeyEvent(ctrlDown)
	undoEvent := platform.KeyEvent{VirtualKey: vkZ, IsKeyDown: true}
	decision := e.HandleKeyEvent(undoEvent)
	if decision != platform.Suppress {
		t.Fatalf("undo decision = %v, want Suppress", decision)
	}

	waitForSent(t, sink, 2)
	if got := sink.Text(1); got != "teh " {
		t.Errorf("undo replay = %q, want %q", got, "teh ")
	}
	if _, ok := e.undo.Peek(); ok {
		t.Error("undo slot should be cleared after consumption")
	}
}

// S3: no candidate.
func TestEngine_S3_NoCandidate(t *testing.T) {
	sink := simulated.NewSink()
	e := newTestEngine(t, sink, nil)

	typeWord(e, "xyz")
	decision := e.HandleKeyEvent(letterEvent(' '))
	if decision != platform.Passthrough {
		t.Fatalf("decision = %v, want Passthrough", decision)
	}
	time.Sleep(20 * time.Millisecond)
	if len(sink.Sent) != 0 {
		t.Fatalf("sink.Sent = %v, want none", sink.Sent)
	}
	if _, ok := e.undo.Peek(); ok {
		t.Error("undo slot should be empty")
	}
}

// S4: already correct.
func TestEngine_S4_AlreadyCorrect(t *testing.T) {
	sink := simulated.NewSink()
	e := newTestEngine(t, sink, nil)

	typeWord(e, "hello")
	decision := e.HandleKeyEvent(letterEvent(' '))
	if decision != platform.Passthrough {
		t.Fatalf("decision = %v, want Passthrough", decision)
	}
}

// S5: case preservation.
func TestEngine_S5_CasePreservation(t *testing.T) {
	sink := simulated.NewSink()
	e := newTestEngine(t, sink, nil)
	ix, _ := symspell.Build([]symspell.DictionaryEntry{{Word: "receive", Frequency: 10}})
	e.SetIndex(ix)

	typeWord(e, "Recieve")
	decision := e.HandleKeyEvent(letterEvent('.'))
	if decision != platform.Suppress {
		t.Fatalf("decision = %v, want Suppress", decision)
	}
	waitForSent(t, sink, 1)
	if got := sink.Text(0); got != "Receive." {
		t.Errorf("replayed text = %q, want %q", got, "Receive.")
	}
}

// S6: disabled.
func TestEngine_S6_Disabled(t *testing.T) {
	sink := simulated.NewSink()
	toggle, _ := ParseHotkey("Ctrl+Shift+A")
	e := New(Config{MaxEditDistance: 2, UndoTimeout: 5 * time.Second, ToggleHotkey: toggle, EnabledByDefault: false}, sink, nil, nil)
	e.SetIndex(testIndex(t))
	t.Cleanup(e.Shutdown)

	typeWord(e, "teh")
	decision := e.HandleKeyEvent(letterEvent(' '))
	if decision != platform.Passthrough {
		t.Fatalf("decision = %v, want Passthrough while disabled", decision)
	}
	time.Sleep(20 * time.Millisecond)
	if len(sink.Sent) != 0 {
		t.Fatalf("sink.Sent = %v, want none while disabled", sink.Sent)
	}
	if _, ok := e.undo.Peek(); ok {
		t.Error("undo slot should stay empty while disabled")
	}
}

// S7: focus change kills undo.
func TestEngine_S7_FocusChangeKillsUndo(t *testing.T) {
	sink := simulated.NewSink()
	focus := simulated.NewFocusObserver(platform.FocusSnapshot{TargetID: "win1"})
	e := newTestEngine(t, sink, focus)

	typeWord(e, "teh")
	e.HandleKeyEvent(letterEvent(' '))
	waitForSent(t, sink, 1)

	focus.SetFocus(platform.FocusSnapshot{TargetID: "win2"})

	ctrlDown := platform.KeyEvent{VirtualKey: vkControl, IsKeyDown: true}
	e.HandleKeyEvent(ctrlDown)
	undoEvent := platform.KeyEvent{VirtualKey: vkZ, IsKeyDown: true}
	e.HandleKeyEvent(undoEvent)

	time.Sleep(20 * time.Millisecond)
	if len(sink.Sent) != 1 {
		t.Fatalf("sink.Sent = %v, want still just the original correction (undo suppressed by focus change)", sink.Sent)
	}
}

// S8: a later text-producing keystroke discards a stale undo record.
func TestEngine_S8_NewCommitInvalidatesUndo(t *testing.T) {
	sink := simulated.NewSink()
	focus := simulated.NewFocusObserver(platform.FocusSnapshot{TargetID: "win1"})
	e := newTestEngine(t, sink, focus)

	typeWord(e, "teh")
	e.HandleKeyEvent(letterEvent(' '))
	waitForSent(t, sink, 1)
	if _, ok := e.undo.Peek(); !ok {
		t.Fatalf("undo slot should hold the teh->the record before typing the next word")
	}

	typeWord(e, "hello")
	e.HandleKeyEvent(letterEvent(' '))

	if _, ok := e.undo.Peek(); ok {
		t.Fatalf("undo slot should be discarded once a different word is typed")
	}

	ctrlDown := platform.KeyEvent{VirtualKey: vkControl, IsKeyDown: true}
	e.HandleKeyEvent(ctrlDown)
	undoEvent := platform.KeyEvent{VirtualKey: vkZ, IsKeyDown: true}
	e.HandleKeyEvent(undoEvent)

	time.Sleep(20 * time.Millisecond)
	if len(sink.Sent) != 1 {
		t.Fatalf("sink.Sent = %v, want still just the original correction (undo hotkey has nothing live to consume)", sink.Sent)
	}
}
