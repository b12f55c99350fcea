package vocab

import (
	"slices"
	"sort"

	"rearranger/config"
	"rearranger/internal/adapter/analyzer"
	"rearranger/internal/domain"
	"rearranger/internal/port"
)

// Index buckets words by case, then leading letter, then length. Buckets are
// created on first insert and are mutated as words are consumed.
type Index struct {
	cases map[domain.Case]map[string]map[int][]string
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{cases: make(map[domain.Case]map[string]map[int][]string)}
}

// Add appends word to the bucket for key.
func (ix *Index) Add(key domain.Key, word string) {
	letters, ok := ix.cases[key.Case]
	if !ok {
		letters = make(map[string]map[int][]string)
		ix.cases[key.Case] = letters
	}
	lengths, ok := letters[key.Letter]
	if !ok {
		lengths = make(map[int][]string)
		letters[key.Letter] = lengths
	}
	lengths[key.Length] = append(lengths[key.Length], word)
}

// Lookup returns the bucket for key. The second result is false when any
// level of the key is absent. The returned slice must not be modified.
func (ix *Index) Lookup(key domain.Key) ([]string, bool) {
	letters, ok := ix.cases[key.Case]
	if !ok {
		return nil, false
	}
	lengths, ok := letters[key.Letter]
	if !ok {
		return nil, false
	}
	words, ok := lengths[key.Length]
	return words, ok
}

// Len returns the number of words left in the bucket for key.
func (ix *Index) Len(key domain.Key) int {
	words, _ := ix.Lookup(key)
	return len(words)
}

// At returns the i-th word of the bucket for key.
func (ix *Index) At(key domain.Key, i int) string {
	words, _ := ix.Lookup(key)
	return words[i]
}

// Pop removes and returns the last word of the bucket for key.
func (ix *Index) Pop(key domain.Key) (string, bool) {
	words, ok := ix.Lookup(key)
	if !ok || len(words) == 0 {
		return "", false
	}
	last := words[len(words)-1]
	ix.cases[key.Case][key.Letter][key.Length] = words[:len(words)-1]
	return last, true
}

// Remove deletes the first occurrence of word from the bucket for key.
func (ix *Index) Remove(key domain.Key, word string) bool {
	words, ok := ix.Lookup(key)
	if !ok {
		return false
	}
	i := slices.Index(words, word)
	if i < 0 {
		return false
	}
	ix.cases[key.Case][key.Letter][key.Length] = slices.Delete(words, i, i+1)
	return true
}

// Size returns the total number of words across all buckets.
func (ix *Index) Size() int {
	n := 0
	ix.each(func(_ domain.Key, words []string) {
		n += len(words)
	})
	return n
}

// Cases returns the cases present, in report order.
func (ix *Index) Cases() []domain.Case {
	var out []domain.Case
	for _, c := range domain.CaseReportOrder {
		if _, ok := ix.cases[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Letters returns the letters present under c, ascending.
func (ix *Index) Letters(c domain.Case) []string {
	letters := make([]string, 0, len(ix.cases[c]))
	for l := range ix.cases[c] {
		letters = append(letters, l)
	}
	sort.Strings(letters)
	return letters
}

// Lengths returns the lengths present under c and letter, ascending.
func (ix *Index) Lengths(c domain.Case, letter string) []int {
	lengths := make([]int, 0, len(ix.cases[c][letter]))
	for n := range ix.cases[c][letter] {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	return lengths
}

// SortOptions selects the per-bucket transforms applied by Sort.
type SortOptions struct {
	Unique       bool
	Shuffle      bool
	Alphabetical bool
}

// SortOptionsFrom derives sort options from the consumption policies.
func SortOptionsFrom(cfg *config.Config) SortOptions {
	return SortOptions{
		Unique: cfg.Policy.EqualWeighting || cfg.Policy.MapWords ||
			(cfg.Filter.PureMode && cfg.Filter.Active()),
		Shuffle:      cfg.Policy.LimitedUsage && !cfg.Policy.BlockShuffle,
		Alphabetical: cfg.Policy.Alphabetical,
	}
}

// Sort applies dedup, then shuffle, then a descending case-insensitive sort
// to every bucket. Descending order makes Pop drain a bucket alphabetically.
func (ix *Index) Sort(opts SortOptions, rng port.Random) {
	ix.each(func(key domain.Key, words []string) {
		if opts.Unique {
			words = dedup(words)
		}
		if opts.Shuffle {
			rng.Shuffle(len(words), func(i, j int) {
				words[i], words[j] = words[j], words[i]
			})
		}
		if opts.Alphabetical {
			SortFold(words)
			slices.Reverse(words)
		}
		ix.cases[key.Case][key.Letter][key.Length] = words
	})
}

// Limit keeps only words for which keep returns true, then prunes empty
// length, letter and case levels.
func (ix *Index) Limit(keep func(word string) bool) {
	for c, letters := range ix.cases {
		for l, lengths := range letters {
			for n, words := range lengths {
				kept := words[:0]
				for _, w := range words {
					if keep(w) {
						kept = append(kept, w)
					}
				}
				if len(kept) == 0 {
					delete(lengths, n)
				} else {
					lengths[n] = kept
				}
			}
			if len(lengths) == 0 {
				delete(letters, l)
			}
		}
		if len(letters) == 0 {
			delete(ix.cases, c)
		}
	}
}

// SortFold sorts words case-insensitively, keeping the input order of ties.
func SortFold(words []string) {
	keys := make(map[string]string, len(words))
	for _, w := range words {
		if _, ok := keys[w]; !ok {
			keys[w] = analyzer.Lower(w)
		}
	}
	sort.SliceStable(words, func(i, j int) bool {
		return keys[words[i]] < keys[words[j]]
	})
}

func (ix *Index) each(fn func(key domain.Key, words []string)) {
	for c, letters := range ix.cases {
		for l, lengths := range letters {
			for n, words := range lengths {
				fn(domain.Key{Case: c, Letter: l, Length: n}, words)
			}
		}
	}
}

// Unique returns a copy of words without repeats, in first-occurrence order.
func Unique(words []string) []string {
	return dedup(slices.Clone(words))
}

// dedup removes repeated words in place, keeping the first occurrence.
func dedup(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := words[:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
