package port

// WordMapStore persists word-map entries between runs.
type WordMapStore interface {
	// LoadAll returns every stored original -> replacement entry.
	LoadAll() (map[string]string, error)

	// PutAll upserts the given entries.
	PutAll(entries map[string]string) error

	Close() error
}
