package wordforms

import "testing"

func TestPlural(t *testing.T) {
	inf := NewInflector()
	cases := []struct {
		in, want string
	}{
		// regular suffix rules
		{"cat", "cats"},
		{"party", "parties"},
		{"city", "cities"},
		{"boy", "boys"},
		{"box", "boxes"},
		{"church", "churches"},
		{"dish", "dishes"},
		{"class", "classes"},
		{"hero", "heroes"},
		{"potato", "potatoes"},
		{"video", "videos"},
		{"buzz", "buzzes"},
		// rule exceptions fall through to the +s fallback
		{"photo", "photos"},
		{"piano", "pianos"},
		{"stomach", "stomachs"},
		{"cache", "caches"},
		// irregulars
		{"child", "children"},
		{"person", "people"},
		{"wolf", "wolves"},
		{"analysis", "analyses"},
		{"bus", "buses"},
		{"quiz", "quizzes"},
		{"index", "indices"},
		// invariants
		{"sheep", "sheep"},
		{"series", "series"},
		{"news", "news"},
		// already plural: unchanged
		{"cats", "cats"},
		{"parties", "parties"},
		{"children", "children"},
		// no rule matches: fails open
		{"xyzzy", "xyzzy"},
		{"", ""},
	}
	for _, c := range cases {
		if got := inf.Plural(c.in); got != c.want {
			t.Errorf("Plural(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSingular(t *testing.T) {
	inf := NewInflector()
	cases := []struct {
		in, want string
	}{
		{"cats", "cat"},
		{"parties", "party"},
		{"cities", "city"},
		{"boys", "boy"},
		{"boxes", "box"},
		{"churches", "church"},
		{"dishes", "dish"},
		{"classes", "class"},
		{"heroes", "hero"},
		{"houses", "house"},
		{"buzzes", "buzz"},
		// exception lists keep -ie and -oe words off the stem rules
		{"ties", "tie"},
		{"movies", "movie"},
		{"shoes", "shoe"},
		{"canoes", "canoe"},
		{"aches", "ache"},
		// irregulars
		{"children", "child"},
		{"people", "person"},
		{"wolves", "wolf"},
		{"analyses", "analysis"},
		{"buses", "bus"},
		{"quizzes", "quiz"},
		{"indices", "index"},
		{"axes", "axis"},
		// invariants
		{"sheep", "sheep"},
		{"series", "series"},
		// already singular: unchanged
		{"cat", "cat"},
		{"party", "party"},
		{"child", "child"},
		// no rule matches: fails open
		{"xyzzy", "xyzzy"},
		{"", ""},
	}
	for _, c := range cases {
		if got := inf.Singular(c.in); got != c.want {
			t.Errorf("Singular(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsPluralIsSingular(t *testing.T) {
	inf := NewInflector()
	cases := []struct {
		word     string
		plural   bool
		singular bool
	}{
		{"cat", false, true},
		{"cats", true, false},
		{"party", false, true},
		{"parties", true, false},
		{"child", false, true},
		{"children", true, false},
		// invariant nouns are both at once, deliberately
		{"sheep", true, true},
		{"species", true, true},
		{"scissors", true, true},
		// unknown vowel-less token: its own base form
		{"xyzzy", false, true},
	}
	for _, c := range cases {
		if got := inf.IsPlural(c.word); got != c.plural {
			t.Errorf("IsPlural(%q) = %v, want %v", c.word, got, c.plural)
		}
		if got := inf.IsSingular(c.word); got != c.singular {
			t.Errorf("IsSingular(%q) = %v, want %v", c.word, got, c.singular)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inf := NewInflector()
	words := []string{
		"cat", "party", "box", "church", "hero", "wolf", "child",
		"person", "analysis", "bus", "quiz", "dish", "class", "boy",
	}
	for _, w := range words {
		if got := inf.Singular(inf.Plural(w)); got != w {
			t.Errorf("Singular(Plural(%q)) = %q, want %q", w, got, w)
		}
	}
}

func TestIdempotence(t *testing.T) {
	inf := NewInflector()
	words := []string{
		"cat", "cats", "party", "parties", "child", "children",
		"sheep", "xyzzy", "box", "boxes", "wolf", "wolves",
	}
	for _, w := range words {
		p := inf.Plural(w)
		if got := inf.Plural(p); got != p {
			t.Errorf("Plural(Plural(%q)) = %q, want %q", w, got, p)
		}
		s := inf.Singular(w)
		if got := inf.Singular(s); got != s {
			t.Errorf("Singular(Singular(%q)) = %q, want %q", w, got, s)
		}
	}
}

func TestRuleOrderDeterministic(t *testing.T) {
	// "parties" must resolve through the ies rule, never the bare s
	// fallback, regardless of how often it is classified.
	inf := NewInflector()
	for i := 0; i < 100; i++ {
		if got := inf.Singular("parties"); got != "party" {
			t.Fatalf("iteration %d: Singular(\"parties\") = %q, want \"party\"", i, got)
		}
	}
}
