package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"rearranger/config"
	"rearranger/internal/domain"
)

// Splitter separates outer punctuation from the word inside a token.
type Splitter struct {
	punct        config.PunctuationConfig
	trimNewlines bool
}

// NewSplitter creates a Splitter. Soft or hard newline truncation trims
// surrounding whitespace, newline included, before splitting.
func NewSplitter(punct config.PunctuationConfig, newlines config.NewlineConfig) *Splitter {
	return &Splitter{
		punct:        punct,
		trimNewlines: newlines.SoftTruncate || newlines.HardTruncate,
	}
}

// Split returns the punctuation before the word, the word, and the
// punctuation after it.
func (s *Splitter) Split(token string) domain.Token {
	var out domain.Token

	if s.trimNewlines {
		token = strings.TrimSpace(token)
	}
	word := token

	switch {
	case s.punct.Preserve:
		start := leadingEnd(word)
		if !s.punct.VoidOuter {
			out.Prefix = word[:start]
		}
		word = word[start:]

		end := trailingStart(word)
		if !s.punct.VoidOuter {
			out.Suffix = word[end:]
		} else if strings.HasSuffix(token, "\n") {
			out.Suffix = "\n"
		}
		word = word[:end]
	case strings.HasSuffix(word, "\n"):
		word = strings.TrimSuffix(word, "\n")
		out.Suffix = "\n"
	}

	if s.punct.VoidInner {
		word = strings.Map(func(r rune) rune {
			if isAlnum(r) {
				return r
			}
			return -1
		}, word)
	}

	out.Core = word
	return out
}

// Core returns only the word inside a token.
func (s *Splitter) Core(token string) string {
	return s.Split(token).Core
}

// leadingEnd returns the byte offset of the first alphanumeric rune, or len(s).
func leadingEnd(s string) int {
	for i, r := range s {
		if isAlnum(r) {
			return i
		}
	}
	return len(s)
}

// trailingStart returns the byte offset just past the last alphanumeric rune, or 0.
func trailingStart(s string) int {
	end := len(s)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if isAlnum(r) {
			return end
		}
		end -= size
	}
	return 0
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
