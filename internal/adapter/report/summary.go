package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"rearranger/internal/adapter/vocab"
	"rearranger/internal/domain"
)

// BucketRow summarizes the buckets under one case and letter.
type BucketRow struct {
	Case    domain.Case
	Letter  string
	Buckets int
	Words   int
	Unique  int
}

// Summarize walks the index in report order and counts words per case and letter.
func Summarize(index *vocab.Index) []BucketRow {
	var rows []BucketRow
	for _, c := range index.Cases() {
		for _, letter := range index.Letters(c) {
			row := BucketRow{Case: c, Letter: letter}
			for _, n := range index.Lengths(c, letter) {
				words, _ := index.Lookup(domain.Key{Case: c, Letter: letter, Length: n})
				row.Buckets++
				row.Words += len(words)
				row.Unique += len(vocab.Unique(words))
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// RenderSummary renders rows as a table with a totals footer.
func RenderSummary(rows []BucketRow) string {
	if len(rows) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Case", "Letter", "Lengths", "Words", "Unique"})

	var buckets, words, unique int
	for _, r := range rows {
		tw.AppendRow(table.Row{
			display(string(r.Case)),
			display(r.Letter),
			strconv.Itoa(r.Buckets),
			strconv.Itoa(r.Words),
			strconv.Itoa(r.Unique),
		})
		buckets += r.Buckets
		words += r.Words
		unique += r.Unique
	}
	tw.AppendFooter(table.Row{"Total", "", strconv.Itoa(buckets), strconv.Itoa(words), strconv.Itoa(unique)})

	configs := []table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	}
	for i := 3; i <= 5; i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// display shows a disabled axis as "-".
func display(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
