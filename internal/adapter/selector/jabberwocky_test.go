package selector

import (
	"testing"
	"unicode/utf8"
)

func TestBlend(t *testing.T) {
	tests := []struct {
		first    string
		second   string
		expected string
	}{
		{"abcd", "xy", "xbcy"},
		{"same", "same", "same"},
		{"word", "", "word"},
		{"", "abc", ""},
		{"abcdef", "xyz", "abzxef"},
	}

	for _, tt := range tests {
		if got := Blend(tt.first, tt.second); got != tt.expected {
			t.Errorf("Blend(%q, %q) = %q, want %q", tt.first, tt.second, got, tt.expected)
		}
	}
}

func TestBlend_Length(t *testing.T) {
	pairs := [][2]string{
		{"rearrange", "ox"},
		{"a", "longer"},
		{"naïve", "café"},
		{"xy", "xyz"},
	}
	for _, p := range pairs {
		got := Blend(p[0], p[1])
		if utf8.RuneCountInString(got) != utf8.RuneCountInString(p[0]) {
			t.Errorf("Blend(%q, %q) = %q has wrong length", p[0], p[1], got)
		}
	}
}
