package symspell

import (
	"testing"

	"github.com/anselmlong/autocorrect/pkg/symspell/options"
	"github.com/anselmlong/autocorrect/pkg/symspell/verbosity"
)

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	entries := []DictionaryEntry{
		{Word: "the", Frequency: 100},
		{Word: "then", Frequency: 50},
		{Word: "hello", Frequency: 40},
		{Word: "receive", Frequency: 10},
	}
	ix, err := Build(entries, options.WithMaxEditDistance(2), options.WithPrefixLength(7))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ix
}

// invariant 1: every dictionary word is its own top lookup result at distance 0.
func TestLookup_ExactWordIsTopResult(t *testing.T) {
	ix := buildTestIndex(t)
	for _, w := range []string{"the", "then", "hello", "receive"} {
		got, err := ix.Lookup(w, verbosity.Top, 2)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", w, err)
		}
		if len(got) != 1 || got[0].Term != w || got[0].Distance != 0 {
			t.Fatalf("Lookup(%q) = %+v, want single exact match", w, got)
		}
	}
}

// invariant 2: a word within k edits of a dictionary word is found by Closest.
func TestLookup_FindsKnownTypo(t *testing.T) {
	ix := buildTestIndex(t)
	got, err := ix.Lookup("teh", verbosity.Closest, 2)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	found := false
	for _, s := range got {
		if s.Term == "the" {
			found = true
			if s.Distance != 1 {
				t.Errorf("distance for teh->the = %d, want 1 (transposition)", s.Distance)
			}
		}
	}
	if !found {
		t.Fatalf("Lookup(teh, Closest, 2) = %+v, want it to include \"the\"", got)
	}
}

func TestLookup_NoCandidateWithinDistance(t *testing.T) {
	ix := buildTestIndex(t)
	got, err := ix.Lookup("xyzxyzxyz", verbosity.All, 2)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Lookup(xyzxyzxyz) = %+v, want empty", got)
	}
}

// invariant 4: ranking is (distance asc, frequency desc, word asc).
func TestLookup_RankingOrder(t *testing.T) {
	ix := buildTestIndex(t)
	got, err := ix.Lookup("teh", verbosity.All, 2)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		if a.Distance > b.Distance {
			t.Fatalf("ranking violated at %d: %+v before %+v", i, a, b)
		}
		if a.Distance == b.Distance && a.Frequency < b.Frequency {
			t.Fatalf("ranking violated (frequency) at %d: %+v before %+v", i, a, b)
		}
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	ix := buildTestIndex(t)
	got, err := ix.Lookup("THE", verbosity.Top, 2)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) != 1 || got[0].Term != "the" {
		t.Fatalf("Lookup(THE) = %+v, want exact match on \"the\"", got)
	}
}

func TestBuild_RefusesKGreaterThanP(t *testing.T) {
	_, err := Build(nil, options.WithMaxEditDistance(3), options.WithPrefixLength(2))
	if err == nil {
		t.Fatal("Build with k > p should fail")
	}
}

func TestCreateDictionaryEntry_KeepsHighestFrequency(t *testing.T) {
	ix, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ix.CreateDictionaryEntry("word", 5); err != nil {
		t.Fatalf("CreateDictionaryEntry: %v", err)
	}
	if err := ix.CreateDictionaryEntry("word", 1); err != nil {
		t.Fatalf("CreateDictionaryEntry: %v", err)
	}
	ix.Freeze()
	got, _ := ix.Lookup("word", verbosity.Top, 1)
	if len(got) != 1 || got[0].Frequency != 5 {
		t.Fatalf("frequency = %+v, want 5 retained", got)
	}
}

func TestFreeze_RejectsFurtherWrites(t *testing.T) {
	ix, _ := New()
	ix.Freeze()
	if err := ix.CreateDictionaryEntry("word", 1); err != ErrFrozen {
		t.Fatalf("CreateDictionaryEntry after Freeze = %v, want ErrFrozen", err)
	}
}

func TestCreateDictionaryEntry_DropsBelowCountThreshold(t *testing.T) {
	ix, err := New(options.WithCountThreshold(10))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ix.CreateDictionaryEntry("rare", 3); err != nil {
		t.Fatalf("CreateDictionaryEntry: %v", err)
	}
	if err := ix.CreateDictionaryEntry("common", 25); err != nil {
		t.Fatalf("CreateDictionaryEntry: %v", err)
	}
	ix.Freeze()
	if ix.Contains("rare") {
		t.Error("Contains(rare) = true, want false (below CountThreshold)")
	}
	if !ix.Contains("common") {
		t.Error("Contains(common) = false, want true (above CountThreshold)")
	}
}

func TestContains(t *testing.T) {
	ix := buildTestIndex(t)
	if !ix.Contains("the") {
		t.Error("Contains(the) = false, want true")
	}
	if ix.Contains("teh") {
		t.Error("Contains(teh) = true, want false")
	}
}
