package usecase

import (
	"strings"
	"testing"

	"rearranger/config"
	"rearranger/internal/adapter/filter"
	"rearranger/internal/domain"
)

func TestBuildVocabulary_LengthOnly(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Classify = config.ClassifyConfig{Length: true}

	v, err := BuildVocabulary(strings.NewReader("cat dog cow\nbird, cat!\n"), nil, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if v.Total != 5 {
		t.Errorf("expected 5 words, got %d", v.Total)
	}
	if v.Occurrences["cat"] != 2 || v.Occurrences["bird"] != 1 {
		t.Errorf("unexpected occurrences %v", v.Occurrences)
	}

	words, ok := v.Index.Lookup(domain.Key{Length: 3})
	if !ok || strings.Join(words, " ") != "cat dog cow cat" {
		t.Errorf("unexpected length-3 bucket %v", words)
	}
	if v.Index.Len(domain.Key{Length: 4}) != 1 {
		t.Error("expected bird in the length-4 bucket")
	}
}

func TestBuildVocabulary_SkipsPunctuationOnlyTokens(t *testing.T) {
	cfg := config.DefaultConfig()

	v, err := BuildVocabulary(strings.NewReader("-- ... word\n"), nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if v.Total != 1 || v.Occurrences["word"] != 1 {
		t.Errorf("expected only 'word', got %v", v.Occurrences)
	}
}

func TestBuildVocabulary_FilterSource(t *testing.T) {
	tests := []struct {
		name         string
		filterSource bool
		wantTotal    int
	}{
		{"filter ignored for source", false, 3},
		{"filter applied to source", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Filter.Same = true
			cfg.Filter.FilterSource = tt.filterSource
			list := filter.NewList([]string{"cat"}, cfg.Filter, cfg.Classify)

			v, err := BuildVocabulary(strings.NewReader("cat dog cow\n"), list, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if v.Total != tt.wantTotal {
				t.Errorf("expected %d words, got %d", tt.wantTotal, v.Total)
			}
		})
	}
}
