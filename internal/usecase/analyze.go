package usecase

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"rearranger/config"
	"rearranger/internal/adapter/report"
	"rearranger/internal/adapter/vocab"
	"rearranger/internal/domain"
)

const outlineIndent = 2

// AnalyzeUseCase renders the vocabulary as an indented outline with per-word
// statistics.
type AnalyzeUseCase struct {
	inspect config.InspectConfig
	limits  config.LimitConfig
	pacer   *Pacer
}

// NewAnalyzeUseCase creates a new analyze use case.
func NewAnalyzeUseCase(cfg *config.Config, pacer *Pacer) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		inspect: cfg.Inspect,
		limits:  cfg.Limits,
		pacer:   pacer,
	}
}

// AnalyzeResult contains counters for one report.
type AnalyzeResult struct {
	Lines int
	Words int
}

// Analyze limits the vocabulary by the configured bounds and writes the
// report. The index is modified.
func (u *AnalyzeUseCase) Analyze(v *Vocabulary, w io.Writer) (*AnalyzeResult, error) {
	stats := vocab.BuildStats(v.Occurrences, v.Total, u.inspect)
	v.Index.Limit(vocab.WithinLimits(stats, u.limits))

	lines := Outline(v.Index, stats, !u.inspect.BlockSort)
	result := &AnalyzeResult{Lines: len(lines), Words: v.Index.Size()}

	for _, line := range lines {
		u.pacer.Wait()
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return result, fmt.Errorf("failed to write report: %w", err)
		}
	}

	if u.inspect.Summary {
		if table := report.RenderSummary(report.Summarize(v.Index)); table != "" {
			if _, err := io.WriteString(w, "\n"+table+"\n"); err != nil {
				return result, fmt.Errorf("failed to write summary: %w", err)
			}
		}
	}
	return result, nil
}

// Outline renders the index as report lines. Each non-empty case, letter and
// length gets a header and indents what follows it. Leaf words are listed
// once each, sorted case-insensitively when sortWords is set.
func Outline(index *vocab.Index, stats map[string]domain.WordStats, sortWords bool) []string {
	var lines []string

	for _, c := range index.Cases() {
		caseIndent := 0
		if c != domain.CaseNone {
			lines = append(lines, header(caseIndent, "Case", string(c)))
			caseIndent += outlineIndent
		}

		for _, letter := range index.Letters(c) {
			letterIndent := caseIndent
			if letter != "" {
				lines = append(lines, header(letterIndent, "Letter", letter))
				letterIndent += outlineIndent
			}

			for _, n := range index.Lengths(c, letter) {
				wordIndent := letterIndent
				if n != 0 {
					lines = append(lines, header(wordIndent, "Length", strconv.Itoa(n)))
					wordIndent += outlineIndent
				}

				words, _ := index.Lookup(domain.Key{Case: c, Letter: letter, Length: n})
				words = vocab.Unique(words)
				if sortWords {
					vocab.SortFold(words)
				}
				for _, word := range words {
					line := strings.Repeat(" ", wordIndent) + word
					if s := stats[word]; s.Annotation != "" {
						line += " " + s.Annotation
					}
					lines = append(lines, line)
				}
			}
		}
	}
	return lines
}

func header(indent int, label, value string) string {
	return strings.Repeat(" ", indent) + label + " " + value
}
