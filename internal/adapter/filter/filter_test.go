package filter

import (
	"strings"
	"testing"

	"rearranger/config"
)

func TestList_Passes(t *testing.T) {
	classify := config.ClassifyConfig{}

	tests := []struct {
		name     string
		filter   config.FilterConfig
		word     string
		expected bool
	}{
		{"same listed", config.FilterConfig{Same: true}, "cat", true},
		{"same unlisted", config.FilterConfig{Same: true}, "dog", false},
		{"different listed", config.FilterConfig{Different: true}, "cat", false},
		{"different unlisted", config.FilterConfig{Different: true}, "dog", true},
		{"no mode", config.FilterConfig{}, "cat", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList([]string{"cat"}, tt.filter, classify)
			if got := l.Passes(tt.word); got != tt.expected {
				t.Errorf("Passes(%q) = %v, want %v", tt.word, got, tt.expected)
			}
		})
	}
}

func TestList_CompareLower(t *testing.T) {
	l := NewList([]string{"Cat"}, config.FilterConfig{Same: true}, config.ClassifyConfig{CompareLower: true})

	if !l.Passes("CAT") {
		t.Error("expected case-insensitive match with compare_lower")
	}

	strict := NewList([]string{"Cat"}, config.FilterConfig{Same: true}, config.ClassifyConfig{})
	if strict.Passes("cat") {
		t.Error("expected case-sensitive miss without compare_lower")
	}
}

func TestLoad(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Filter.Same = true

	l, err := Load(strings.NewReader("the, cat\nsat  on\n\"mat\".\n"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 5 {
		t.Errorf("expected 5 words, got %d", l.Len())
	}
	for _, w := range []string{"the", "cat", "sat", "on", "mat"} {
		if !l.Contains(w) {
			t.Errorf("expected %q in filter list", w)
		}
	}
}

func TestLoad_Inactive(t *testing.T) {
	cfg := config.DefaultConfig()

	l, err := Load(strings.NewReader("cat dog"), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("expected empty list without a filter mode, got %d", l.Len())
	}
}
