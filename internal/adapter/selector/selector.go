package selector

import (
	"rearranger/config"
	"rearranger/internal/adapter/filter"
	"rearranger/internal/adapter/vocab"
	"rearranger/internal/adapter/wordmap"
	"rearranger/internal/port"
)

// Selector chooses a replacement for each input word under the configured
// consumption policy. It mutates the index and the word map.
type Selector struct {
	index      *vocab.Index
	filter     *filter.List
	wordMap    *wordmap.Map
	classifier port.Classifier
	rng        port.Random
	policy     config.PolicyConfig
	pureMode   bool
}

// New creates a Selector.
func New(
	index *vocab.Index,
	filterList *filter.List,
	wordMap *wordmap.Map,
	classifier port.Classifier,
	rng port.Random,
	cfg *config.Config,
) *Selector {
	return &Selector{
		index:      index,
		filter:     filterList,
		wordMap:    wordMap,
		classifier: classifier,
		rng:        rng,
		policy:     cfg.Policy,
		pureMode:   cfg.Filter.PureMode,
	}
}

// Select returns the replacement for word, or "" when the word is dropped.
func (s *Selector) Select(word string) string {
	passed := s.filter.Passes(word)

	switch {
	case s.pureMode && !passed:
		return ""
	case passed:
		return word
	}
	if mapped, ok := s.wordMap.Get(word); ok {
		return mapped
	}
	if s.policy.HaltRearranger {
		return word
	}
	return s.replace(word)
}

// replace draws a word from the bucket matching word's classification.
func (s *Selector) replace(word string) string {
	key := s.classifier.Classify(word)
	size := s.index.Len(key)

	var chosen string
	switch {
	case size == 0:
		chosen = ""
	case s.policy.Alphabetical:
		chosen, _ = s.index.Pop(key)
	case size == 1:
		chosen = s.index.At(key, 0)
	case s.policy.MapWords || s.policy.GetDifferent:
		chosen = word
		for attempt := 0; chosen == word && attempt < s.policy.GetAttempts; attempt++ {
			chosen = s.index.At(key, s.rng.IntN(size))
		}
		if s.policy.LimitedUsage || s.policy.MapWords {
			s.index.Remove(key, chosen)
		}
	case s.policy.EqualWeighting || s.policy.RelativeUsage:
		chosen = s.index.At(key, s.rng.IntN(size))
	default:
		chosen, _ = s.index.Pop(key)
	}

	if s.policy.MapWords {
		s.wordMap.Set(word, chosen)
	} else if s.policy.ForceLimitedUsage && !s.policy.LimitedUsage {
		s.index.Remove(key, word)
	}

	return chosen
}
