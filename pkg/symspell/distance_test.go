package symspell

import "testing"

func TestBoundedEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		max  int
		want int
	}{
		{"the", "the", 2, 0},
		{"teh", "the", 2, 1}, // adjacent transposition costs 1 under Damerau
		{"teh", "the", 1, 1},
		{"hello", "hallo", 2, 1},
		{"cat", "cats", 2, 1},
		{"kitten", "sitting", 3, 3},
		{"abc", "xyz", 1, -1}, // exceeds max, early-exit
	}
	for _, c := range cases {
		got := boundedEditDistance(c.a, c.b, c.max)
		if got != c.want {
			t.Errorf("boundedEditDistance(%q, %q, %d) = %d, want %d", c.a, c.b, c.max, got, c.want)
		}
	}
}

func TestBoundedEditDistance_Symmetric(t *testing.T) {
	pairs := [][2]string{{"flaw", "lawn"}, {"teh", "the"}, {"recieve", "receive"}}
	for _, p := range pairs {
		d1 := boundedEditDistance(p[0], p[1], 5)
		d2 := boundedEditDistance(p[1], p[0], 5)
		if d1 != d2 {
			t.Errorf("distance(%q,%q)=%d != distance(%q,%q)=%d", p[0], p[1], d1, p[1], p[0], d2)
		}
	}
}

func TestGenerateDeletes_IncludesOriginal(t *testing.T) {
	out := generateDeletes("cat", 2)
	found := false
	for _, v := range out {
		if v == "cat" {
			found = true
		}
	}
	if !found {
		t.Fatalf("generateDeletes(%q) = %v, want it to include the original string", "cat", out)
	}
}

func TestGenerateDeletes_OneDeletion(t *testing.T) {
	out := generateDeletes("cat", 1)
	want := map[string]bool{"cat": true, "at": true, "ct": true, "ca": true}
	got := map[string]bool{}
	for _, v := range out {
		got[v] = true
	}
	if len(got) != len(want) {
		t.Fatalf("generateDeletes(cat, 1) = %v, want %v", got, want)
	}
	for v := range want {
		if !got[v] {
			t.Errorf("generateDeletes(cat, 1) missing %q", v)
		}
	}
}
