package usecase

import (
	"fmt"
	"io"

	"rearranger/config"
	"rearranger/internal/adapter/analyzer"
	"rearranger/internal/adapter/filter"
	"rearranger/internal/adapter/vocab"
	"rearranger/internal/domain"
)

// Vocabulary is the bucketed word index built from a source corpus together
// with its occurrence counts.
type Vocabulary struct {
	Index       *vocab.Index
	Occurrences domain.Occurrences
	Total       int
}

// BuildVocabulary tokenizes the corpus, strips punctuation and buckets every
// word by its classification. Words failing the filter are skipped only when
// the filter is applied to the source.
func BuildVocabulary(corpus io.Reader, filterList *filter.List, cfg *config.Config) (*Vocabulary, error) {
	splitter := analyzer.NewSplitter(cfg.Punctuation, cfg.Newlines)
	classifier := analyzer.NewClassifier(cfg.Classify)
	filterSource := cfg.Filter.FilterSource && cfg.Filter.Active() && filterList != nil

	v := &Vocabulary{
		Index:       vocab.NewIndex(),
		Occurrences: make(domain.Occurrences),
	}

	stream := analyzer.Tokenize(corpus)
	for {
		token, ok := stream.Next()
		if !ok {
			break
		}

		word := splitter.Core(token)
		if word == "" {
			continue
		}
		if filterSource && !filterList.Passes(word) {
			continue
		}

		v.Index.Add(classifier.Classify(word), word)
		v.Occurrences[word]++
		v.Total++
	}

	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("failed to read source corpus: %w", err)
	}
	return v, nil
}
