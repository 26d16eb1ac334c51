// Package dictionary produces (word, frequency) entries for the SymSpell
// index from a priority-ordered set of sources: a user-supplied file, a
// well-known built-in file, or a compiled-in fallback list, with an
// optional personal dictionary (file and/or Redis mirror) always merged on
// top. Grounded on original_source/src/dictionary.rs's load/personal-dict
// split and on the teacher's customdict.CustomDict for the Redis piece.
package dictionary

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/anselmlong/autocorrect/pkg/symspell"
)

const builtinDictionaryPath = "dictionary/words.txt"

// personalDictionaryHeader is written to a freshly created personal
// dictionary file, mirroring the original's create_personal_dictionary.
const personalDictionaryHeader = "# Personal Dictionary\n# Add one word per line\n# Lines starting with # are ignored\n\n"

// Loader assembles dictionary entries from disk and, optionally, a Redis
// mirror of the personal word list.
type Loader struct {
	log    *zap.SugaredLogger
	remote *RemoteStore
}

// NewLoader builds a Loader. A nil logger falls back to a no-op logger; a
// nil remote disables the Redis mirror entirely.
func NewLoader(log *zap.SugaredLogger, remote *RemoteStore) *Loader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Loader{log: log, remote: remote}
}

// Load produces the merged entry set for userPath (may be empty) and
// personalPath (the personal dictionary file location, usually
// <user-config>/autocorrect/personal_dictionary.txt). It never returns an
// error for a missing primary source — that is a soft warning per §4.B —
// but does surface *DictionaryLoadError for other I/O or decoding failures on a
// source, while still falling through to the next one.
func (l *Loader) Load(ctx context.Context, userPath, personalPath string) ([]symspell.DictionaryEntry, error) {
	merged := make(map[string]int64)
	var firstErr error

	primary, err := l.loadPrimary(userPath)
	if err != nil {
		l.log.Warnw("dictionary primary source failed, falling through", "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	for _, e := range primary {
		mergeMax(merged, e.Word, e.Frequency)
	}

	personal, err := l.loadPersonal(personalPath)
	if err != nil {
		l.log.Warnw("personal dictionary load failed", "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	for _, e := range personal {
		mergeMax(merged, e.Word, e.Frequency)
	}

	if l.remote != nil {
		words, err := l.remote.All(ctx)
		if err != nil {
			l.log.Warnw("remote dictionary mirror unavailable", "error", err)
		}
		for _, w := range words {
			mergeMax(merged, w, personalWordFrequency)
		}
	}

	out := make([]symspell.DictionaryEntry, 0, len(merged))
	for word, freq := range merged {
		out = append(out, symspell.DictionaryEntry{Word: word, Frequency: freq})
	}
	l.log.Infow("dictionary loaded", "words", len(out))
	return out, firstErr
}

// personalWordFrequency matches original_source/src/dictionary.rs: personal
// words get a very high frequency so they outrank built-in candidates at
// the same edit distance.
const personalWordFrequency = 1_000_000_000

func (l *Loader) loadPrimary(userPath string) ([]symspell.DictionaryEntry, error) {
	if userPath != "" {
		entries, err := parseFile(userPath)
		if err == nil {
			return entries, nil
		}
		l.log.Warnw("user dictionary path failed, trying built-in", "path", userPath, "error", err)
	}

	if _, err := os.Stat(builtinDictionaryPath); err == nil {
		entries, err := parseFile(builtinDictionaryPath)
		if err == nil {
			return entries, nil
		}
		return nil, newLoadError(builtinDictionaryPath, err)
	}

	l.log.Infow("no dictionary file found, using compiled-in fallback", "words", len(fallbackWords))
	return fallbackWords, nil
}

func (l *Loader) loadPersonal(personalPath string) ([]symspell.DictionaryEntry, error) {
	if personalPath == "" {
		return nil, nil
	}
	if _, err := os.Stat(personalPath); err != nil {
		if os.IsNotExist(err) {
			if mkErr := createPersonalDictionary(personalPath); mkErr != nil {
				l.log.Warnw("could not create personal dictionary file", "path", personalPath, "error", mkErr)
			}
			return nil, nil
		}
		return nil, newLoadError(personalPath, err)
	}

	var entries []symspell.DictionaryEntry
	err := readLines(personalPath, func(line []byte) error {
		word, ok := parsePersonalLine(line)
		if ok {
			entries = append(entries, symspell.DictionaryEntry{Word: word, Frequency: personalWordFrequency})
		}
		return nil
	})
	if err != nil {
		return nil, newLoadError(personalPath, err)
	}
	return entries, nil
}

func createPersonalDictionary(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(personalDictionaryHeader), 0o644)
}

// AddPersonalWord appends word to the personal dictionary file and, if a
// remote mirror is configured, mirrors it to Redis too.
func (l *Loader) AddPersonalWord(ctx context.Context, personalPath, word string) error {
	word = normalizeWord(word)
	if word == "" || !isAlphaWord(word) {
		return newLoadError(personalPath, errInvalidWord)
	}
	f, err := os.OpenFile(personalPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return newLoadError(personalPath, err)
	}
	defer f.Close()
	if _, err := f.WriteString(word + "\n"); err != nil {
		return newLoadError(personalPath, err)
	}
	if l.remote != nil {
		if err := l.remote.Add(ctx, word); err != nil {
			l.log.Warnw("remote dictionary mirror add failed", "word", word, "error", err)
		}
	}
	return nil
}

// RemoveCustomWord removes word from the remote mirror only; the personal
// file itself is an append-only log by design (matching the original's
// add_personal_word, which never rewrites the file).
func (l *Loader) RemoveCustomWord(ctx context.Context, word string) error {
	if l.remote == nil {
		return nil
	}
	return l.remote.Remove(ctx, normalizeWord(word))
}

func parseFile(path string) ([]symspell.DictionaryEntry, error) {
	var entries []symspell.DictionaryEntry
	err := readLines(path, func(line []byte) error {
		word, freq, ok := parseLine(line)
		if ok {
			entries = append(entries, symspell.DictionaryEntry{Word: word, Frequency: freq})
		}
		return nil
	})
	return entries, err
}

// parseLine implements §4.B's parsing rules: empty/comment lines are
// skipped, a line is "WORD [FREQ]" with WORD alphabetic and FREQ an
// optional non-negative integer defaulting to 1, malformed lines are
// silently skipped.
func parseLine(line []byte) (word string, freq int64, ok bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' {
		return "", 0, false
	}
	fields := bytes.Fields(line)
	if len(fields) == 0 {
		return "", 0, false
	}
	word = normalizeWord(string(fields[0]))
	if word == "" || !isAlphaWord(word) {
		return "", 0, false
	}
	freq = 1
	if len(fields) > 1 {
		n, err := strconv.ParseInt(string(fields[1]), 10, 64)
		if err != nil || n < 0 {
			return "", 0, false
		}
		freq = n
	}
	return word, freq, true
}

// parsePersonalLine implements the personal-dictionary format: one lowercase
// word per line, comments and blanks skipped, no frequency column.
func parsePersonalLine(line []byte) (word string, ok bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' {
		return "", false
	}
	word = normalizeWord(string(line))
	if word == "" || !isAlphaWord(word) {
		return "", false
	}
	return word, true
}

func normalizeWord(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(bytes.TrimSpace(b))
}

func isAlphaWord(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func mergeMax(m map[string]int64, word string, freq int64) {
	if existing, ok := m[word]; !ok || freq > existing {
		m[word] = freq
	}
}
