package wordforms

import "strings"

// wordClass is the outcome of classifying a word against the rule table.
type wordClass int

const (
	classNone wordClass = iota
	classSingular
	classPlural
)

// Inflector converts English words between singular and plural form
// using an ordered suffix-rule table with irregular and uncountable
// exception dictionaries. All tables are fixed at construction; every
// method is a pure function of its input and safe for concurrent use.
type Inflector struct {
	rules        []InflectionRule
	exceptions   []map[string]bool
	irregular    map[string]string // singular → plural
	irregularRev map[string]string // plural → singular
	uncountable  map[string]bool
}

// NewInflector builds an Inflector over the default English rule and
// exception tables.
func NewInflector() *Inflector {
	inf := &Inflector{
		rules:        defaultRules,
		exceptions:   make([]map[string]bool, len(defaultRules)),
		irregular:    defaultIrregulars,
		irregularRev: make(map[string]string, len(defaultIrregulars)),
		uncountable:  make(map[string]bool, len(defaultUncountables)),
	}
	for i, r := range defaultRules {
		set := make(map[string]bool, len(r.Exceptions))
		for _, w := range r.Exceptions {
			set[w] = true
		}
		inf.exceptions[i] = set
	}
	for s, p := range defaultIrregulars {
		inf.irregularRev[p] = s
	}
	for _, w := range defaultUncountables {
		inf.uncountable[w] = true
	}
	return inf
}

// IsPlural reports whether word is judged a plural form: an uncountable
// noun, a known irregular plural, or a match for a plural-side suffix
// rule. Uncountables satisfy IsPlural and IsSingular at once; that is a
// property of English, not a bug.
func (inf *Inflector) IsPlural(word string) bool {
	if word == "" {
		return false
	}
	if inf.uncountable[word] {
		return true
	}
	if _, ok := inf.irregularRev[word]; ok {
		return true
	}
	if _, ok := inf.irregular[word]; ok {
		return false
	}
	cls, _ := inf.classify(word)
	return cls == classPlural
}

// IsSingular reports whether word is judged the singular/base form.
// Words matching no rule at all count as singular: an unrecognized
// token is its own base form.
func (inf *Inflector) IsSingular(word string) bool {
	if word == "" {
		return false
	}
	if inf.uncountable[word] {
		return true
	}
	if _, ok := inf.irregular[word]; ok {
		return true
	}
	if _, ok := inf.irregularRev[word]; ok {
		return false
	}
	cls, _ := inf.classify(word)
	return cls != classPlural
}

// Plural returns the plural form of word. Words already judged plural
// come back unchanged, irregulars resolve through the exception
// dictionary, and anything matching no rule fails open.
func (inf *Inflector) Plural(word string) string {
	if word == "" {
		return word
	}
	if inf.uncountable[word] {
		return word
	}
	if p, ok := inf.irregular[word]; ok {
		return p
	}
	if _, ok := inf.irregularRev[word]; ok {
		return word
	}
	cls, i := inf.classify(word)
	switch cls {
	case classPlural:
		return word
	case classSingular:
		r := inf.rules[i]
		return word[:len(word)-len(r.Singular)] + r.Plural
	}
	return word
}

// Singular returns the singular form of word, symmetric to Plural.
func (inf *Inflector) Singular(word string) string {
	if word == "" {
		return word
	}
	if inf.uncountable[word] {
		return word
	}
	if s, ok := inf.irregularRev[word]; ok {
		return s
	}
	if _, ok := inf.irregular[word]; ok {
		return word
	}
	cls, i := inf.classify(word)
	if cls == classPlural {
		r := inf.rules[i]
		return word[:len(word)-len(r.Plural)] + r.Singular
	}
	return word
}

// classify scans the rule table in order and returns the class of the
// first matching side along with the rule index. Within a rule the
// plural suffix is tested first. Vowel-less tokens match nothing.
func (inf *Inflector) classify(word string) (wordClass, int) {
	if !hasVowel(word) {
		return classNone, -1
	}
	for i, r := range inf.rules {
		if inf.exceptions[i][word] {
			continue
		}
		if r.Plural != "" && suffixMatches(word, r.Plural, r.ConsonantBefore) {
			return classPlural, i
		}
		if suffixMatches(word, r.Singular, r.ConsonantBefore) {
			return classSingular, i
		}
	}
	return classNone, -1
}

// suffixMatches reports whether word ends in suffix with a non-empty
// stem, honoring the consonant-before constraint. An empty suffix
// matches any word.
func suffixMatches(word, suffix string, consonantBefore bool) bool {
	if suffix == "" {
		return true
	}
	if len(word) <= len(suffix) || !strings.HasSuffix(word, suffix) {
		return false
	}
	if consonantBefore {
		return isConsonant(word[len(word)-len(suffix)-1])
	}
	return true
}
