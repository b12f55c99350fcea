package vocab

import (
	"fmt"
	"strings"

	"rearranger/config"
	"rearranger/internal/domain"
)

// BuildStats derives per-word count, percent of total and report annotation.
func BuildStats(occ domain.Occurrences, total int, inspect config.InspectConfig) map[string]domain.WordStats {
	stats := make(map[string]domain.WordStats, len(occ))
	for word, count := range occ {
		percent := 0.0
		if total > 0 {
			percent = float64(count) / float64(total) * 100
		}
		stats[word] = domain.WordStats{
			Count:      count,
			Percent:    percent,
			Annotation: annotate(count, percent, inspect),
		}
	}
	return stats
}

// annotate renders "{count: N, frequency: P%}", omitting disabled parts.
// It returns "" when both parts are disabled.
func annotate(count int, percent float64, inspect config.InspectConfig) string {
	var parts []string
	if inspect.FrequencyCount {
		parts = append(parts, fmt.Sprintf("count: %d", count))
	}
	if inspect.FrequencyPercent {
		parts = append(parts, fmt.Sprintf("frequency: %.*f%%", inspect.DecimalAccuracy, percent))
	}
	if len(parts) == 0 {
		return ""
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// WithinLimits returns a keep function for Index.Limit that accepts words
// whose count and percent fall inside the inclusive bounds. Words without
// statistics are dropped.
func WithinLimits(stats map[string]domain.WordStats, limits config.LimitConfig) func(string) bool {
	return func(word string) bool {
		s, ok := stats[word]
		if !ok {
			return false
		}
		return s.Count >= limits.CountMin && s.Count <= limits.CountMax &&
			s.Percent >= limits.PercentMin && s.Percent <= limits.PercentMax
	}
}
