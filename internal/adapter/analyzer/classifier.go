package analyzer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"rearranger/config"
	"rearranger/internal/domain"
)

// Classifier computes the bucket key of a word.
type Classifier struct {
	cfg config.ClassifyConfig
}

// NewClassifier creates a Classifier for the given comparison rules.
func NewClassifier(cfg config.ClassifyConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify returns the (case, letter, length) key of word. Disabled axes
// collapse to "" or 0.
func (c *Classifier) Classify(word string) domain.Key {
	if c.cfg.CompareLower {
		word = Lower(word)
	}

	var key domain.Key
	if c.cfg.CompareCase {
		key.Case = CaseOf(word)
	}
	if c.cfg.FirstLetter && word != "" {
		r, _ := utf8.DecodeRuneInString(word)
		key.Letter = string(r)
		if !c.cfg.CaseSensitive {
			key.Letter = Lower(key.Letter)
		}
	}
	if c.cfg.Length {
		key.Length = utf8.RuneCountInString(word)
	}
	return key
}

// CaseOf reports the casing shape of word. Words without cased letters are mixed.
func CaseOf(word string) domain.Case {
	switch {
	case isTitle(word):
		return domain.CaseTitle
	case hasCased(word, unicode.IsLower, unicode.IsUpper):
		return domain.CaseLower
	case hasCased(word, unicode.IsUpper, unicode.IsLower):
		return domain.CaseUpper
	default:
		return domain.CaseMixed
	}
}

// Lower lower-cases s using Unicode case mapping.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// isTitle reports whether every cased run starts with one upper-case letter
// followed only by lower-case letters, and at least one cased letter exists.
func isTitle(s string) bool {
	cased, prevCased := false, false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			cased, prevCased = true, true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased, prevCased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

// hasCased reports whether s has a letter matching want and none matching other.
func hasCased(s string, want, other func(rune) bool) bool {
	found := false
	for _, r := range s {
		if other(r) || unicode.IsTitle(r) {
			return false
		}
		if want(r) {
			found = true
		}
	}
	return found
}
