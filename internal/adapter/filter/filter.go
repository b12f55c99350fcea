package filter

import (
	"io"

	"rearranger/config"
	"rearranger/internal/adapter/analyzer"
)

// List decides which words are exempt from replacement.
type List struct {
	words        map[string]struct{}
	same         bool
	different    bool
	compareLower bool
}

// NewList creates a filter list from the given words.
func NewList(words []string, filter config.FilterConfig, classify config.ClassifyConfig) *List {
	l := &List{
		words:        make(map[string]struct{}, len(words)),
		same:         filter.Same,
		different:    filter.Different,
		compareLower: classify.CompareLower,
	}
	for _, w := range words {
		l.Add(w)
	}
	return l
}

// Load reads a filter list from r. Words are stripped of punctuation the same
// way input words are. Nothing is read when no filter mode is active.
func Load(r io.Reader, cfg *config.Config) (*List, error) {
	l := NewList(nil, cfg.Filter, cfg.Classify)
	if r == nil || !cfg.Filter.Active() {
		return l, nil
	}

	splitter := analyzer.NewSplitter(cfg.Punctuation, cfg.Newlines)
	stream := analyzer.Tokenize(r)
	for {
		token, ok := stream.Next()
		if !ok {
			break
		}
		l.Add(splitter.Core(token))
	}
	return l, stream.Err()
}

// Add adds a word to the list.
func (l *List) Add(word string) {
	if word == "" {
		return
	}
	l.words[l.normalize(word)] = struct{}{}
}

// Contains reports whether word is listed.
func (l *List) Contains(word string) bool {
	_, ok := l.words[l.normalize(word)]
	return ok
}

// Passes reports whether word passes the filter: listed words pass in "same"
// mode, unlisted words pass in "different" mode. With no mode nothing passes.
func (l *List) Passes(word string) bool {
	if !l.same && !l.different {
		return false
	}
	found := l.Contains(word)
	return (l.same && found) || (l.different && !found)
}

// Len returns the number of listed words.
func (l *List) Len() int {
	return len(l.words)
}

func (l *List) normalize(word string) string {
	if l.compareLower {
		return analyzer.Lower(word)
	}
	return word
}
