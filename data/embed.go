// Package data embeds the default English lemma lexicon.
package data

import _ "embed"

// Lexicon is the embedded lemma dictionary. One entry per line,
// "lemma|form1,form2,...", with "!" comment lines.
//
//go:embed lexicon.txt
var Lexicon []byte
