package engine

import (
	"strings"

	"github.com/anselmlong/autocorrect/internal/platform"
)

// terminatorChars holds the word-terminator characters of spec §4.C: space, tab,
// newline, or one of the listed punctuation marks.
const terminatorChars = " \t\n.,;:!?\"'()[]{}<>/\\|-"

func isTerminator(r rune) bool {
	return strings.ContainsRune(terminatorChars, r)
}

// Commit is the event the word tracker emits when a terminator closes out
// a non-empty, non-dropped buffer (spec §4.C).
type Commit struct {
	Word       string
	Terminator string
	TargetID   string
}

// minCommitLength is the floor below which a commit is dropped (spec §4.C:
// "shorter than a floor (typically 2)").
const minCommitLength = 2

// Tracker maintains the in-progress word from a keystroke stream
// (component C). It is not safe for concurrent use; the hook thread owns
// it exclusively.
type Tracker struct {
	buffer   []rune
	targetID string
}

func NewTracker() *Tracker { return &Tracker{} }

// Observe feeds one normalised keystroke event and returns the resulting
// Commit, if the event closed one out.
func (t *Tracker) Observe(event platform.KeyEvent) (Commit, bool) {
	if !event.IsKeyDown {
		return Commit{}, false
	}

	if !event.HasChar {
		if event.VirtualKey == vkBackspace {
			if len(t.buffer) > 0 {
				t.buffer = t.buffer[:len(t.buffer)-1]
			}
			return Commit{}, false
		}
		// Navigation, control, modifier, function, or anything else
		// without a produced character clears the buffer without
		// committing: the engine cannot safely infer intent here.
		t.buffer = t.buffer[:0]
		return Commit{}, false
	}

	ch := event.Char
	if isASCIILetter(ch) {
		t.buffer = append(t.buffer, ch)
		return Commit{}, false
	}

	if isTerminator(ch) {
		word := string(t.buffer)
		t.buffer = t.buffer[:0]
		if !validCommitWord(word) {
			return Commit{}, false
		}
		return Commit{Word: word, Terminator: string(ch), TargetID: t.targetID}, true
	}

	// Any other produced character (digits, symbols outside the
	// terminator set) is not a letter we track; treat it like a
	// non-text-producing event and clear the buffer.
	t.buffer = t.buffer[:0]
	return Commit{}, false
}

// OnFocusChanged clears the buffer, per spec §4.C, and records the new
// target so subsequent commits carry the right target id.
func (t *Tracker) OnFocusChanged(targetID string) {
	t.buffer = t.buffer[:0]
	t.targetID = targetID
}

// Buffer returns the text typed since the last commit or reset, for
// diagnostics/tests.
func (t *Tracker) Buffer() string { return string(t.buffer) }

func validCommitWord(word string) bool {
	if len(word) < minCommitLength {
		return false
	}
	for _, r := range word {
		if !isASCIILetter(r) {
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// vkBackspace is the Windows virtual-key code for Backspace (VK_BACK);
// kept here rather than in the windows platform package since the tracker
// needs it regardless of platform to recognise the edit key by code when
// no character is produced for it.
const vkBackspace = 0x08
