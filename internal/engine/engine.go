// Package engine implements components C (word tracker), D (correction
// engine), F (undo buffer), and the hotkey tracking described in
// spec.md §4.C/§4.D/§4.F and §5's concurrency model: the hook thread calls
// HandleKeyEvent synchronously and must never block, so all replay work is
// handed off to a dedicated worker goroutine behind a bounded queue.
package engine

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/anselmlong/autocorrect/internal/platform"
	"github.com/anselmlong/autocorrect/internal/replay"
	"github.com/anselmlong/autocorrect/pkg/symspell"
	"github.com/anselmlong/autocorrect/pkg/symspell/verbosity"
)

// Config holds the engine's runtime-tunable parameters, sourced from
// config.toml (spec §6).
type Config struct {
	MaxEditDistance int
	UndoTimeout     time.Duration
	ToggleHotkey    Hotkey
	EnabledByDefault bool
	// QueueSize bounds the hook-to-worker replay queue (spec §5: "a
	// bounded single-producer/single-consumer queue").
	QueueSize int
}

// ReplaceAction is the decision the correction engine hands to the replay
// worker (spec §4.D step 5).
type ReplaceAction struct {
	Original    string
	Replacement string
	Terminator  string
	TargetID    string
	Class       platform.TargetClass
}

type replayJob struct {
	action ReplaceAction
	isUndo bool
}

// Engine ties the word tracker, the SymSpell index, the undo buffer, and
// the replay worker together behind the single HandleKeyEvent entry point
// the keystroke hook calls on its own thread.
type Engine struct {
	cfg Config
	log *zap.SugaredLogger

	enabled atomic.Bool
	index   atomic.Pointer[symspell.Index]

	tracker  *Tracker
	modState ModifierState
	undo     *UndoBuffer

	sink  platform.SyntheticInputSink
	focus platform.FocusObserver

	queue chan replayJob
	wg    sync.WaitGroup
	quit  chan struct{}
}

// New constructs an engine in pass-through mode; SetIndex must be called
// once the background index build finishes before lookups start returning
// corrections (spec §5).
func New(cfg Config, sink platform.SyntheticInputSink, focus platform.FocusObserver, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	e := &Engine{
		cfg:     cfg,
		log:     log,
		tracker: NewTracker(),
		undo:    NewUndoBuffer(cfg.UndoTimeout),
		sink:    sink,
		focus:   focus,
		queue:   make(chan replayJob, cfg.QueueSize),
		quit:    make(chan struct{}),
	}
	e.enabled.Store(cfg.EnabledByDefault)

	if focus != nil {
		// Seed the tracker with the current target so the first commit
		// carries the same target id the undo path reads back.
		e.tracker.OnFocusChanged(focus.Snapshot().TargetID)
		focus.Subscribe(func(snapshot platform.FocusSnapshot) {
			e.tracker.OnFocusChanged(snapshot.TargetID)
			// A focus change discards any live undo record.
			e.undo.Invalidate("focus change")
		})
	}

	e.wg.Add(1)
	go e.runWorker()
	return e
}

// SetIndex installs the fully-built index. Until this is called, the
// engine tracks commits but never produces a ReplaceAction (pass-through).
func (e *Engine) SetIndex(ix *symspell.Index) {
	e.index.Store(ix)
}

// Toggle flips the enabled flag and returns the new state.
func (e *Engine) Toggle() bool {
	for {
		old := e.enabled.Load()
		if e.enabled.CompareAndSwap(old, !old) {
			if old {
				e.undo.Invalidate("disabled")
			}
			return !old
		}
	}
}

func (e *Engine) Enabled() bool { return e.enabled.Load() }

// Shutdown drains the replay queue, joins the worker, and invalidates the
// undo buffer (spec §5's cancellation contract: "any in-flight replay
// completes; partial replays would corrupt user text").
func (e *Engine) Shutdown() {
	close(e.quit)
	e.wg.Wait()
	e.undo.Invalidate("shutdown")
}

// HandleKeyEvent is the synchronous hook callback (spec §6). It must never
// block: tracking, lookup, and decision-making all happen inline, but the
// actual replay is only enqueued here. A panic inside it is recovered and
// turned into a Passthrough decision.
func (e *Engine) HandleKeyEvent(event platform.KeyEvent) (decision platform.Decision) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Errorw("recovered panic in key event handler", "panic", r)
			decision = platform.Passthrough
		}
	}()

	if event.IsInjected {
		// Our own synthetic replay looping back through the hook; never
		// act on it (spec §9).
		return platform.Passthrough
	}

	if e.modState.Observe(event) {
		return platform.Passthrough
	}

	if e.modState.Matches(e.cfg.ToggleHotkey, event) {
		enabled := e.Toggle()
		e.log.Infow("autocorrect toggled", "enabled", enabled)
		return platform.Suppress
	}

	if e.modState.Matches(undoHotkey, event) {
		if e.tryUndo() {
			return platform.Suppress
		}
		return platform.Passthrough
	}

	if event.HasChar {
		// Any text-producing keystroke other than the undo hotkey discards
		// a live undo record (spec §3/§4.F), so a correction can only ever
		// be undone by the very next keystroke, never a stale one left
		// over from an earlier word.
		e.undo.Invalidate("keystroke")
	}

	if !e.Enabled() {
		return platform.Passthrough
	}

	snapshot := platform.FocusSnapshot{}
	if e.focus != nil {
		snapshot = e.focus.Snapshot()
	}
	if snapshot.Tag == platform.TargetSecret {
		// Open question in spec §9: tagged-secret contexts are treated as
		// disabled outright.
		return platform.Passthrough
	}

	commit, ok := e.tracker.Observe(event)
	if !ok {
		return platform.Passthrough
	}

	action := e.decideCorrection(commit, snapshot)
	if action == nil {
		return platform.Passthrough
	}

	select {
	case e.queue <- replayJob{action: *action}:
	default:
		e.log.Warnw("replay queue full, dropping correction", "word", action.Original)
		return platform.Passthrough
	}
	return platform.Suppress
}

// decideCorrection implements §4.D's decision procedure.
func (e *Engine) decideCorrection(commit Commit, snapshot platform.FocusSnapshot) *ReplaceAction {
	ix := e.index.Load()
	if ix == nil {
		return nil
	}

	lower := strings.ToLower(commit.Word)
	if ix.Contains(lower) {
		return nil
	}

	suggestions, _ := ix.Lookup(lower, verbosity.Top, e.cfg.MaxEditDistance)
	if len(suggestions) == 0 {
		return nil
	}
	best := suggestions[0]
	if best.Term == lower {
		return nil
	}

	cased := restoreCase(commit.Word, best.Term)
	return &ReplaceAction{
		Original:    commit.Word,
		Replacement: cased,
		Terminator:  commit.Terminator,
		TargetID:    commit.TargetID,
		Class:       replay.Classify(snapshot),
	}
}

func (e *Engine) tryUndo() bool {
	var targetID string
	if e.focus != nil {
		targetID = e.focus.Snapshot().TargetID
	}
	record, ok := e.undo.TryConsume(time.Now(), true, targetID)
	if !ok {
		return false
	}
	action := ReplaceAction{
		Original:    record.Replacement,
		Replacement: record.Original,
		Terminator:  record.Terminator,
		TargetID:    record.TargetID,
		Class:       record.Class,
	}
	select {
	case e.queue <- replayJob{action: action, isUndo: true}:
		return true
	default:
		e.log.Warnw("replay queue full, dropping undo")
		return false
	}
}

func (e *Engine) runWorker() {
	defer e.wg.Done()
	for {
		select {
		case job := <-e.queue:
			e.perform(job)
		case <-e.quit:
			// Drain whatever is already queued before exiting; an
			// in-flight replay must complete, per §5.
			for {
				select {
				case job := <-e.queue:
					e.perform(job)
				default:
					return
				}
			}
		}
	}
}

func (e *Engine) perform(job replayJob) {
	plan := replay.PlanReplace(job.action.Original, job.action.Replacement, job.action.Terminator, job.action.Class)
	if replay.EstimatedDuration(plan) > plan.Budget {
		e.log.Debugw("replay plan exceeds time budget, aborting", "word", job.action.Original)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), plan.Budget)
	defer cancel()

	if err := replay.Send(ctx, e.sink, plan); err != nil {
		e.log.Debugw("replay failed", "error", err)
		return
	}

	if job.isUndo {
		return
	}
	e.undo.Set(UndoRecord{
		Original:    job.action.Original,
		Replacement: job.action.Replacement,
		Terminator:  job.action.Terminator,
		CommittedAt: time.Now(),
		TargetID:    job.action.TargetID,
		Class:       job.action.Class,
	})
}

// restoreCase applies §4.D step 4's case-restoration rule: all-upper stays
// upper, titlecase stays titlecase, anything else (including other mixed
// case) becomes lowercase. It is idempotent (spec §8 property 8): applying
// it to its own output reproduces the same casing class.
func restoreCase(original, suggestion string) string {
	switch classifyCase(original) {
	case caseUpper:
		return strings.ToUpper(suggestion)
	case caseTitle:
		return titleCase(suggestion)
	default:
		return strings.ToLower(suggestion)
	}
}

type caseClass int

const (
	caseLower caseClass = iota
	caseUpper
	caseTitle
	caseMixed
)

func classifyCase(word string) caseClass {
	runes := []rune(word)
	if len(runes) == 0 {
		return caseLower
	}
	allUpper, allLower := true, true
	for _, r := range runes {
		if unicode.IsUpper(r) {
			allLower = false
		}
		if unicode.IsLower(r) {
			allUpper = false
		}
	}
	if allUpper {
		return caseUpper
	}
	if allLower {
		return caseLower
	}
	if unicode.IsUpper(runes[0]) {
		rest := runes[1:]
		restLower := true
		for _, r := range rest {
			if unicode.IsUpper(r) {
				restLower = false
				break
			}
		}
		if restLower {
			return caseTitle
		}
	}
	return caseMixed
}

func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
