package analyzer

import (
	"testing"

	"rearranger/config"
	"rearranger/internal/domain"
)

func TestSplitter_Preserve(t *testing.T) {
	s := NewSplitter(config.PunctuationConfig{Preserve: true}, config.NewlineConfig{})

	tests := []struct {
		token    string
		expected domain.Token
	}{
		{"hello", domain.Token{Core: "hello"}},
		{"\"Hello,", domain.Token{Prefix: "\"", Core: "Hello", Suffix: ","}},
		{"end.\n", domain.Token{Core: "end", Suffix: ".\n"}},
		{"don't", domain.Token{Core: "don't"}},
		{"...", domain.Token{Prefix: "..."}},
		{"(café)", domain.Token{Prefix: "(", Core: "café", Suffix: ")"}},
		{"", domain.Token{}},
	}

	for _, tt := range tests {
		got := s.Split(tt.token)
		if got != tt.expected {
			t.Errorf("Split(%q) = %+v, want %+v", tt.token, got, tt.expected)
		}
	}
}

func TestSplitter_RoundTrip(t *testing.T) {
	tokens := []string{"word", "--dash--", "\"quoted\"\n", "!!!", "a.b.c", "\n", "", "¿qué?", "42%"}
	settings := []config.PunctuationConfig{
		{Preserve: true},
		{Preserve: false},
	}

	for _, punct := range settings {
		s := NewSplitter(punct, config.NewlineConfig{})
		for _, token := range tokens {
			if got := s.Split(token).String(); got != token {
				t.Errorf("preserve=%v: round trip of %q gave %q", punct.Preserve, token, got)
			}
		}
	}
}

func TestSplitter_NoPreserve(t *testing.T) {
	s := NewSplitter(config.PunctuationConfig{}, config.NewlineConfig{})

	got := s.Split("hello,\n")
	if got.Prefix != "" || got.Core != "hello," || got.Suffix != "\n" {
		t.Errorf("expected only the newline split off, got %+v", got)
	}
}

func TestSplitter_VoidOuter(t *testing.T) {
	s := NewSplitter(config.PunctuationConfig{Preserve: true, VoidOuter: true}, config.NewlineConfig{})

	tests := []struct {
		token    string
		expected domain.Token
	}{
		{"(word),", domain.Token{Core: "word"}},
		{"word.\n", domain.Token{Core: "word", Suffix: "\n"}},
		{"?!\n", domain.Token{Suffix: "\n"}},
	}

	for _, tt := range tests {
		if got := s.Split(tt.token); got != tt.expected {
			t.Errorf("Split(%q) = %+v, want %+v", tt.token, got, tt.expected)
		}
	}
}

func TestSplitter_VoidInner(t *testing.T) {
	s := NewSplitter(config.PunctuationConfig{Preserve: true, VoidInner: true}, config.NewlineConfig{})

	got := s.Split("'rock-n-roll's'")
	if got.Core != "rocknrolls" {
		t.Errorf("expected inner punctuation stripped, got %q", got.Core)
	}
	if got.Prefix != "'" || got.Suffix != "'" {
		t.Errorf("expected outer punctuation kept, got %+v", got)
	}
}

func TestSplitter_TruncatedNewlines(t *testing.T) {
	s := NewSplitter(config.PunctuationConfig{Preserve: true}, config.NewlineConfig{HardTruncate: true})

	got := s.Split("word.\n")
	if got.Suffix != "." || got.Core != "word" {
		t.Errorf("expected newline trimmed before splitting, got %+v", got)
	}
}
