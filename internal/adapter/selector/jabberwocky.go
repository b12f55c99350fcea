package selector

// Blend interleaves the letters of original and replacement. The result has
// as many runes as original. A four-phase selector starting at
// (len(replacement)+1) mod 4 takes original's rune in phases 0 and 1 and the
// replacement's cursor rune in phases 2 and 3; both the phase and the
// replacement cursor advance after every rune.
func Blend(original, replacement string) string {
	if original == replacement || replacement == "" {
		return original
	}

	first := []rune(original)
	second := []rune(replacement)
	out := make([]rune, len(first))

	phase := (len(second) + 1) % 4
	cursor := 0
	for i := range first {
		if phase < 2 {
			out[i] = first[i]
		} else {
			out[i] = second[cursor]
		}
		cursor = (cursor + 1) % len(second)
		phase = (phase + 1) % 4
	}
	return string(out)
}
