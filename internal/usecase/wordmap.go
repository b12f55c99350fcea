package usecase

import (
	"fmt"
	"io"
	"log/slog"

	"rearranger/internal/adapter/wordmap"
	"rearranger/internal/port"
)

// WordMapUseCase moves word-map entries between the run's map, an optional
// word-map file and an optional persistent store.
type WordMapUseCase struct {
	store  port.WordMapStore
	logger *slog.Logger
}

// NewWordMapUseCase creates a word-map use case. store may be nil.
func NewWordMapUseCase(store port.WordMapStore, logger *slog.Logger) *WordMapUseCase {
	return &WordMapUseCase{store: store, logger: logger}
}

// WordMapLoadResult reports where the preloaded entries came from.
type WordMapLoadResult struct {
	FromStore int
	FromFile  int
	Skipped   int
}

// Load fills m from the store, then from r. File entries override stored
// ones. r may be nil.
func (u *WordMapUseCase) Load(m *wordmap.Map, r io.Reader) (*WordMapLoadResult, error) {
	result := &WordMapLoadResult{}

	if u.store != nil {
		entries, err := u.store.LoadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to load stored word map: %w", err)
		}
		m.Merge(entries)
		result.FromStore = len(entries)
	}

	if r != nil {
		fromFile := wordmap.New()
		skipped, err := fromFile.Load(r, u.logger)
		if err != nil {
			return nil, err
		}
		m.Merge(fromFile.Entries())
		result.FromFile = fromFile.Len()
		result.Skipped = skipped
	}
	return result, nil
}

// Save writes m to the store and, when path is set, merges it into the
// word-map file at path.
func (u *WordMapUseCase) Save(m *wordmap.Map, path string) error {
	if u.store != nil {
		if err := u.store.PutAll(m.Entries()); err != nil {
			return fmt.Errorf("failed to store word map: %w", err)
		}
	}
	if path != "" {
		if err := wordmap.SaveFile(path, m, u.logger); err != nil {
			return err
		}
	}
	return nil
}

// Export writes every stored entry in word-map file format.
func (u *WordMapUseCase) Export(w io.Writer) (int, error) {
	if u.store == nil {
		return 0, fmt.Errorf("no word map store configured")
	}
	entries, err := u.store.LoadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to load stored word map: %w", err)
	}
	m := wordmap.New()
	m.Merge(entries)
	if _, err := m.WriteTo(w); err != nil {
		return 0, fmt.Errorf("failed to write word map: %w", err)
	}
	return m.Len(), nil
}

// Import reads a word-map file into the store.
func (u *WordMapUseCase) Import(r io.Reader) (*WordMapLoadResult, error) {
	if u.store == nil {
		return nil, fmt.Errorf("no word map store configured")
	}
	m := wordmap.New()
	skipped, err := m.Load(r, u.logger)
	if err != nil {
		return nil, err
	}
	if err := u.store.PutAll(m.Entries()); err != nil {
		return nil, fmt.Errorf("failed to store word map: %w", err)
	}
	return &WordMapLoadResult{FromFile: m.Len(), Skipped: skipped}, nil
}
