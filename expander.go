package wordforms

// Expander composes the Inflector and Lemmatizer into the
// word-alternates algorithm used for query broadening: one input word
// in, an ordered deduplicated list of related forms out.
type Expander struct {
	inf *Inflector
	lem *Lemmatizer
}

// NewExpander wires an Expander over its two collaborators.
func NewExpander(inf *Inflector, lem *Lemmatizer) *Expander {
	return &Expander{inf: inf, lem: lem}
}

// Alternates returns the alternate forms of word for query expansion.
//
// The list is seeded with the lemma when it differs from the input,
// extended with every dictionary form registered under that lemma, and
// finished with the plural and singular counterparts. When the input
// is already its own lemma, plural and singular derive directly from
// it; when the input is an inflected form, the singular derives from
// the freshly computed plural of the lemma so a plural rule is never
// applied twice. Duplicates are suppressed by first occurrence, and
// the input word only appears when one of the steps produced it.
func (e *Expander) Alternates(word string) []string {
	lemma := e.lem.Lemma(word)

	var out []string
	if lemma != word {
		out = append(out, lemma)
	}
	for _, f := range e.lem.WordsFromLemma(lemma) {
		out = appendMissing(out, f)
	}

	var plural, singular string
	if word == lemma {
		if e.inf.IsPlural(word) {
			plural = word
		} else {
			plural = e.inf.Plural(word)
		}
		if plural == word {
			singular = e.inf.Singular(word)
		} else {
			singular = word
		}
	} else {
		plural = e.inf.Plural(lemma)
		singular = e.inf.Singular(plural)
	}

	// When neither counterpart moved off the input word the inflector
	// failed open; echoing the input back as its own alternate would
	// be noise, so nothing is appended.
	if plural != word || singular != word {
		out = appendMissing(out, plural)
		out = appendMissing(out, singular)
	}
	if out == nil {
		return []string{}
	}
	return out
}

// appendMissing appends s to list unless it is already present. The
// membership check runs against the accumulated list itself so output
// order follows the sequence of checks.
func appendMissing(list []string, s string) []string {
	if s == "" {
		return list
	}
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
