package wordmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
)

var (
	// ErrBlankLine marks a line with no content. Blank lines are skipped silently.
	ErrBlankLine = errors.New("blank line")

	// ErrMalformedLine marks a line without a replacement.
	ErrMalformedLine = errors.New("malformed word map line")
)

// Map is a sticky association from an original word to its replacement.
type Map struct {
	entries map[string]string
}

// New creates an empty word map.
func New() *Map {
	return &Map{entries: make(map[string]string)}
}

// ParseLine parses one "word replacement..." line. The first space-separated
// field is the key and the remaining fields joined by single spaces are the value.
func ParseLine(line string) (string, string, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	switch len(fields) {
	case 0:
		return "", "", ErrBlankLine
	case 1:
		return "", "", fmt.Errorf("%w: %q has no replacement", ErrMalformedLine, line)
	}
	return fields[0], strings.Join(fields[1:], " "), nil
}

// Load reads entries from r, reporting and skipping malformed lines. It
// returns the number of lines skipped. Only read errors are returned.
func (m *Map) Load(r io.Reader, logger *slog.Logger) (int, error) {
	skipped := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, err := ParseLine(scanner.Text())
		if errors.Is(err, ErrBlankLine) {
			continue
		}
		if err != nil {
			skipped++
			if logger != nil {
				logger.Warn("skipping word map line", "line", lineNo, "error", err)
			}
			continue
		}
		m.entries[key] = value
	}

	if err := scanner.Err(); err != nil {
		return skipped, fmt.Errorf("failed to read word map: %w", err)
	}
	return skipped, nil
}

// Get returns the replacement recorded for word.
func (m *Map) Get(word string) (string, bool) {
	v, ok := m.entries[word]
	return v, ok
}

// Set records word -> replacement.
func (m *Map) Set(word, replacement string) {
	m.entries[word] = replacement
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Merge copies entries into the map, overwriting existing keys.
func (m *Map) Merge(entries map[string]string) {
	for k, v := range entries {
		m.entries[k] = v
	}
}

// Entries returns a copy of all entries.
func (m *Map) Entries() map[string]string {
	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// WriteTo writes the map in word-map file format, sorted by key. Entries
// whose replacement is empty cannot be represented and are left out.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bw := bufio.NewWriter(w)
	var written int64
	for _, k := range keys {
		v := m.entries[k]
		if v == "" {
			continue
		}
		n, err := fmt.Fprintf(bw, "%s %s\n", k, v)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// SaveFile merges the map into the word-map file at path. The file is locked
// for the whole read-merge-write so invocations sharing it do not lose entries.
// Entries already in the file are kept unless this map overrides them.
func SaveFile(path string, m *Map, logger *slog.Logger) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock word map %s: %w", path, err)
	}
	defer lock.Unlock()

	merged := New()
	if f, err := os.Open(path); err == nil {
		_, loadErr := merged.Load(f, logger)
		f.Close()
		if loadErr != nil {
			return loadErr
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to open word map: %w", err)
	}
	merged.Merge(m.entries)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".wordmap-*")
	if err != nil {
		return fmt.Errorf("failed to create temp word map: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := merged.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write word map: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write word map: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace word map: %w", err)
	}
	return nil
}
