package wordforms

import "strings"

// lexicon is the in-memory lemma dictionary: a surface-form→lemma map
// and the reverse lemma→forms index. It is populated once during
// loading and read-only afterwards.
type lexicon struct {
	// lemmaOf maps each surface form (and each lemma itself) to its
	// canonical lemma. Every surface form maps to exactly one lemma;
	// on duplicate registration the first mapping wins.
	lemmaOf map[string]string
	// formsOf maps a lemma to its surface forms in the order the data
	// file declared them, so reverse lookups are reproducible.
	formsOf map[string][]string
}

func newLexicon() *lexicon {
	return &lexicon{
		lemmaOf: make(map[string]string),
		formsOf: make(map[string][]string),
	}
}

// addEntry registers a lemma with its surface forms. Forms already
// claimed by another lemma are skipped rather than reassigned.
func (lx *lexicon) addEntry(lemma string, forms []string) {
	if lemma == "" {
		return
	}
	if _, taken := lx.lemmaOf[lemma]; !taken {
		lx.lemmaOf[lemma] = lemma
	}
	for _, f := range forms {
		if f == "" || f == lemma {
			continue
		}
		if owner, taken := lx.lemmaOf[f]; taken && owner != lemma {
			continue
		}
		if _, taken := lx.lemmaOf[f]; !taken {
			lx.lemmaOf[f] = lemma
			lx.formsOf[lemma] = append(lx.formsOf[lemma], f)
		}
	}
}

// parseLexiconLine parses one data line of the form
//
//	lemma|form1,form2,...
//
// and reports whether the line carried an entry. Lines starting with
// "!" are comments.
func parseLexiconLine(line string) (lemma string, forms []string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "!") {
		return "", nil, false
	}
	parts := strings.SplitN(line, "|", 2)
	lemma = Normalize(parts[0])
	if lemma == "" {
		return "", nil, false
	}
	if len(parts) == 2 {
		for _, f := range strings.Split(parts[1], ",") {
			if f = Normalize(f); f != "" {
				forms = append(forms, f)
			}
		}
	}
	return lemma, forms, true
}

// lemma returns the canonical lemma for a surface form, if registered.
func (lx *lexicon) lemma(word string) (string, bool) {
	l, ok := lx.lemmaOf[word]
	return l, ok
}

// forms returns a copy of the surface forms registered under lemma, in
// declaration order. Unknown lemmas yield an empty list.
func (lx *lexicon) forms(lemma string) []string {
	fs := lx.formsOf[lemma]
	if len(fs) == 0 {
		return []string{}
	}
	out := make([]string, len(fs))
	copy(out, fs)
	return out
}
