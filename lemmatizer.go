package wordforms

// Lemmatizer maps surface words to their canonical lemma and back.
// Lookups are exact hits on the normalized lowercase form; there is no
// fuzzy matching, so expansion results stay precise. Unknown words
// fall back to the Inflector's singular form and, failing that, come
// back unchanged.
type Lemmatizer struct {
	inf *Inflector
	lex *lexicon
}

func newLemmatizer(inf *Inflector, lex *lexicon) *Lemmatizer {
	return &Lemmatizer{inf: inf, lex: lex}
}

// Lemma returns the canonical lemma for word. Dictionary hits win;
// otherwise the word is reduced through the inflector and the reduced
// form is looked up once more before being treated as its own lemma.
func (lm *Lemmatizer) Lemma(word string) string {
	if word == "" {
		return word
	}
	if l, ok := lm.lex.lemma(word); ok {
		return l
	}
	if s := lm.inf.Singular(word); s != word {
		if l, ok := lm.lex.lemma(s); ok {
			return l
		}
		return s
	}
	return word
}

// WordsFromLemma returns the surface forms registered under lemma, in
// dictionary order. Unknown lemmas yield an empty list.
func (lm *Lemmatizer) WordsFromLemma(lemma string) []string {
	return lm.lex.forms(lemma)
}

// Words returns all known surface forms sharing word's lemma. The word
// itself is excluded unless inclusive is true; with inclusive set it is
// always present, appended at the end when the dictionary does not
// already list it.
func (lm *Lemmatizer) Words(word string, inclusive bool) []string {
	lemma := lm.Lemma(word)
	forms := lm.lex.forms(lemma)

	out := make([]string, 0, len(forms)+1)
	if inclusive && lemma == word {
		out = append(out, word)
	} else if lemma != word {
		out = append(out, lemma)
	}
	seen := false
	for _, f := range forms {
		if f == word {
			seen = true
			if !inclusive {
				continue
			}
		}
		out = append(out, f)
	}
	if inclusive && !seen && lemma != word {
		out = append(out, word)
	}
	return out
}
