// Package wordforms provides English morphological analysis: rule-based
// singular/plural inflection, dictionary-backed lemmatization, and a
// word-alternates expansion algorithm that search layers use to broaden
// an exact-term query into its related inflected forms.
package wordforms

import (
	"bytes"
	"io"

	"github.com/fluent-search/wordforms/data"
)

// Tools bundles the three read-only components. Build one Tools per
// process at startup and share it; every lookup is safe for concurrent
// use once construction returns.
type Tools struct {
	Inflector  *Inflector
	Lemmatizer *Lemmatizer
	Expander   *Expander
}

// New builds a Tools bundle from the embedded English lexicon.
func New() (*Tools, error) {
	return NewFromReader(bytes.NewReader(data.Lexicon))
}

// NewFromFile builds a Tools bundle from a lexicon data file on disk.
func NewFromFile(path string) (*Tools, error) {
	lex, err := loadLexiconFile(path)
	if err != nil {
		return nil, err
	}
	return fromLexicon(lex), nil
}

// NewFromReader builds a Tools bundle from lexicon data read from r.
func NewFromReader(r io.Reader) (*Tools, error) {
	lex, err := loadLexicon(r)
	if err != nil {
		return nil, err
	}
	return fromLexicon(lex), nil
}

func fromLexicon(lex *lexicon) *Tools {
	inf := NewInflector()
	lem := newLemmatizer(inf, lex)
	return &Tools{
		Inflector:  inf,
		Lemmatizer: lem,
		Expander:   NewExpander(inf, lem),
	}
}

// Alternates is a convenience wrapper around Expander.Alternates.
func (t *Tools) Alternates(word string) []string {
	return t.Expander.Alternates(word)
}
