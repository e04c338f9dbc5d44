package wordforms

import (
	"slices"
	"testing"
)

func TestAlternates(t *testing.T) {
	ex := newTestTools(t).Expander
	cases := []struct {
		word string
		want []string
	}{
		// inflected input: lemma first, then its dictionary forms
		{"parties", []string{"party", "parties"}},
		{"cities", []string{"city", "cities"}},
		{"ran", []string{"run", "runs", "ran", "running", "runner", "runners"}},
		// input is its own lemma: forms, then plural and singular
		{"cat", []string{"cats", "cat"}},
		// invariant noun: plural and singular collapse onto the input
		{"sheep", []string{}},
		// unknown everywhere: nothing to add
		{"xyzzy", []string{}},
	}
	for _, c := range cases {
		if got := ex.Alternates(c.word); !slices.Equal(got, c.want) {
			t.Errorf("Alternates(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestAlternatesInflectedForm(t *testing.T) {
	// "running" is an inflected form whose lemma differs, so the
	// plural/singular pair derives from the lemma, not the input.
	ex := newTestTools(t).Expander
	got := ex.Alternates("running")

	if len(got) == 0 || got[0] != "run" {
		t.Fatalf("Alternates(\"running\") = %v, want the lemma \"run\" first", got)
	}
	if !slices.Contains(got, "runs") {
		t.Errorf("Alternates(\"running\") = %v, want it to contain \"runs\"", got)
	}
	if slices.Contains(got, "runnings") {
		t.Errorf("Alternates(\"running\") = %v, must not pluralize the input directly", got)
	}
}

func TestAlternatesNoDuplicates(t *testing.T) {
	ex := newTestTools(t).Expander
	words := []string{
		"parties", "party", "cat", "cats", "run", "ran", "running",
		"children", "child", "analysis", "analyses", "happy",
		"sheep", "boxes", "xyzzy",
	}
	for _, w := range words {
		got := ex.Alternates(w)
		seen := make(map[string]bool, len(got))
		for _, a := range got {
			if seen[a] {
				t.Errorf("Alternates(%q) = %v contains duplicate %q", w, got, a)
			}
			seen[a] = true
		}
	}
}

func TestAlternatesUnknownWordFailsOpen(t *testing.T) {
	// Unknown to the dictionary but matching a suffix rule: the
	// inflector still produces a counterpart.
	ex := newTestTools(t).Expander
	got := ex.Alternates("laptop")
	if !slices.Contains(got, "laptops") {
		t.Errorf("Alternates(\"laptop\") = %v, want it to contain \"laptops\"", got)
	}
}
