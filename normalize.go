package wordforms

import "strings"

// Normalize lowercases and trims a word before it reaches the core
// lookups. All dictionary keys and rule suffixes are lowercase, so
// callers that skip normalization only match already-lowercase input.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// IsWordToken reports whether word is a non-empty ASCII alphanumeric
// token. Host layers use this to validate input before expansion; the
// core itself never rejects a word.
func IsWordToken(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// hasVowel reports whether w contains one of a/e/i/o/u. The rule
// engine only fires on vowel-bearing words; tokens like "xyzzy" match
// no rule and pass through unchanged.
func hasVowel(w string) bool {
	return strings.ContainsAny(w, "aeiou")
}

// isConsonant reports whether c is a lowercase letter other than a
// plain vowel. 'y' counts as a consonant here.
func isConsonant(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return true
}
