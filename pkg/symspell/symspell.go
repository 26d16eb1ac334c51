// Package symspell implements the deletion-based ("Symmetric Delete")
// nearest-dictionary-word index described in spec component A: build once
// from a stream of (word, frequency) entries, then answer bounded-edit-
// distance lookups in sub-millisecond time with no further allocation of
// the dictionary itself.
//
// The algorithm precomputes, for every dictionary word, the set of strings
// reachable by deleting 0..k characters from the word's first p runes (the
// prefix bound). A query enumerates only deletions of the input — never
// insertions or substitutions — which is asymmetric but complete for
// bounded edit distance: any pair of strings at distance <= k shares a
// common subsequence reachable by deleting at most k characters from
// either side.
package symspell

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/anselmlong/autocorrect/pkg/symspell/options"
	"github.com/anselmlong/autocorrect/pkg/symspell/verbosity"
)

// ErrFrozen is returned by CreateDictionaryEntry once the index has been
// frozen; the index is immutable after construction finishes (spec §4.A,
// §5: "built once... thereafter read-only, shareable across threads
// without locking").
var ErrFrozen = errors.New("symspell: index is frozen")

// IndexBuildError reports a failed Build/New call. Per spec §7, "Build
// fails only on invalid k, p"; the caller decides whether that is fatal
// (no dictionary entries at all) or survivable (start in pass-through,
// retry later).
type IndexBuildError struct {
	MaxEditDistance int
	PrefixLength    int
	Err             error
}

func (e *IndexBuildError) Error() string {
	return fmt.Sprintf("symspell: build failed (k=%d, p=%d): %v", e.MaxEditDistance, e.PrefixLength, e.Err)
}

func (e *IndexBuildError) Unwrap() error { return e.Err }

// Suggestion is a single lookup result.
type Suggestion struct {
	Term      string
	Distance  int
	Frequency int64
}

// Index is the immutable-after-Freeze deletion index.
type Index struct {
	opts options.IndexOptions

	buildMu sync.Mutex // guards words/deletes only during construction
	frozen  bool

	words   map[string]int64
	deletes map[string][]string
}

// New constructs an empty, mutable index. Entries are added with
// CreateDictionaryEntry and the index is sealed with Freeze once loading
// completes. Build refuses k > p (spec §4.A parameters table).
func New(opts_ ...options.Option) (*Index, error) {
	resolved := options.Resolve(opts_...)
	if resolved.MaxEditDistance < 1 || resolved.MaxEditDistance > 3 {
		return nil, &IndexBuildError{
			MaxEditDistance: resolved.MaxEditDistance,
			PrefixLength:    resolved.PrefixLength,
			Err:             fmt.Errorf("max edit distance must be in [1,3]"),
		}
	}
	if resolved.MaxEditDistance > resolved.PrefixLength {
		return nil, &IndexBuildError{
			MaxEditDistance: resolved.MaxEditDistance,
			PrefixLength:    resolved.PrefixLength,
			Err:             fmt.Errorf("max edit distance exceeds prefix length"),
		}
	}
	return &Index{
		opts:    resolved,
		words:   make(map[string]int64),
		deletes: make(map[string][]string),
	}, nil
}

// Build is the one-shot contract of spec §4.A: construct a fully-populated,
// frozen index directly from a slice of entries.
func Build(entries []DictionaryEntry, opts_ ...options.Option) (*Index, error) {
	ix, err := New(opts_...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := ix.CreateDictionaryEntry(e.Word, e.Frequency); err != nil {
			return nil, err
		}
	}
	ix.Freeze()
	return ix, nil
}

// DictionaryEntry is a (word, frequency) pair, the unit the dictionary
// loader (component B) feeds into the index.
type DictionaryEntry struct {
	Word      string
	Frequency int64
}

// CreateDictionaryEntry inserts or updates a word's frequency and indexes
// its deletion variants. Duplicate inserts keep the higher frequency
// (spec §4.B: "duplicate entries take the highest seen frequency"). Entries
// below the index's CountThreshold are dropped before either the word map
// or its deletion variants are touched.
func (ix *Index) CreateDictionaryEntry(word string, frequency int64) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}
	if frequency < int64(ix.opts.CountThreshold) {
		return nil
	}

	ix.buildMu.Lock()
	defer ix.buildMu.Unlock()
	if ix.frozen {
		return ErrFrozen
	}

	if existing, ok := ix.words[word]; !ok || frequency > existing {
		ix.words[word] = frequency
	}

	runes := []rune(word)
	prefixLen := len(runes)
	if prefixLen > ix.opts.PrefixLength {
		prefixLen = ix.opts.PrefixLength
	}
	prefix := string(runes[:prefixLen])

	for _, variant := range generateDeletes(prefix, ix.opts.MaxEditDistance) {
		bucket := ix.deletes[variant]
		dup := false
		for _, w := range bucket {
			if w == word {
				dup = true
				break
			}
		}
		if !dup {
			ix.deletes[variant] = append(bucket, word)
		}
	}
	return nil
}

// Freeze seals the index against further writes. Lookup never takes a
// lock; callers must not call CreateDictionaryEntry concurrently with
// Lookup even before Freeze — the hook-thread contract (spec §5) is that
// the index is built once, fully, on a background thread before any
// lookup is issued.
func (ix *Index) Freeze() {
	ix.buildMu.Lock()
	defer ix.buildMu.Unlock()
	ix.frozen = true
}

// Contains reports whether word is an exact member of the dictionary.
func (ix *Index) Contains(word string) bool {
	_, ok := ix.words[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// WordCount returns the number of distinct dictionary words indexed.
func (ix *Index) WordCount() int {
	return len(ix.words)
}

// Lookup finds dictionary words within edit distance k of input, ranked by
// (distance ascending, frequency descending, word ascending) per spec
// §4.A step 3. k is clamped to the index's construction-time max edit
// distance. Lookup never returns an error in the sense of spec §4.A
// ("lookup never fails"): the error return is always nil. A verbosity
// outside Top/Closest/All returns the full ranked set, as All does.
func (ix *Index) Lookup(input string, v verbosity.Verbosity, k int) ([]Suggestion, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil, nil
	}
	if k > ix.opts.MaxEditDistance {
		k = ix.opts.MaxEditDistance
	}
	if k < 0 {
		k = 0
	}

	best := make(map[string]Suggestion)

	if freq, ok := ix.words[input]; ok {
		best[input] = Suggestion{Term: input, Distance: 0, Frequency: freq}
		if v == verbosity.Top {
			return []Suggestion{best[input]}, nil
		}
	}

	runes := []rune(input)
	n := len(runes)
	prefixLen := n
	if prefixLen > ix.opts.PrefixLength {
		prefixLen = ix.opts.PrefixLength
	}
	prefix := string(runes[:prefixLen])

	extra := n - ix.opts.PrefixLength
	if extra < 0 {
		extra = 0
	}
	maxDeletions := k - extra
	if maxDeletions < 0 {
		maxDeletions = 0
	}

	considered := make(map[string]bool)
	for _, variant := range generateDeletes(prefix, maxDeletions) {
		candidates, ok := ix.deletes[variant]
		if !ok {
			continue
		}
		for _, word := range candidates {
			if considered[word] {
				continue
			}
			considered[word] = true
			if existing, ok := best[word]; ok && existing.Distance == 0 {
				continue
			}
			if abs(len(word)-n) > k {
				continue
			}
			dist := boundedEditDistance(input, word, k)
			if dist < 0 {
				continue
			}
			if prior, ok := best[word]; !ok || dist < prior.Distance {
				best[word] = Suggestion{Term: word, Distance: dist, Frequency: ix.words[word]}
			}
		}
	}

	out := make([]Suggestion, 0, len(best))
	for _, s := range best {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Term < out[j].Term
	})

	switch v {
	case verbosity.Top:
		if len(out) > 1 {
			out = out[:1]
		}
	case verbosity.Closest:
		if len(out) > 0 {
			min := out[0].Distance
			cut := len(out)
			for i, s := range out {
				if s.Distance != min {
					cut = i
					break
				}
			}
			out = out[:cut]
		}
	case verbosity.All:
		// already the full ranked set
	}
	return out, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
