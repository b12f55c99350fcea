package port

import "rearranger/internal/domain"

// Classifier maps a word to its vocabulary bucket.
type Classifier interface {
	Classify(word string) domain.Key
}
