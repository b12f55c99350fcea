package cli

import (
	"github.com/spf13/cobra"

	"rearranger/config"
)

// Command-line flags override the loaded config only when set explicitly.

type boolFlag struct {
	name, short, usage string
	field              func(*config.Config) *bool
	value              bool
}

type intFlag struct {
	name, usage string
	field       func(*config.Config) *int
	value       int
}

type floatFlag struct {
	name, usage string
	field       func(*config.Config) *float64
	value       float64
}

type stringFlag struct {
	name, short, usage string
	field              func(*config.Config) *string
	value              string
}

var stringFlags = []*stringFlag{
	{name: "input", short: "i", usage: "text to rewrite (default stdin)", field: func(c *config.Config) *string { return &c.Files.Input }},
	{name: "source", short: "s", usage: "source corpus file or directory", field: func(c *config.Config) *string { return &c.Files.Source }},
	{name: "filter", short: "f", usage: "filter word list", field: func(c *config.Config) *string { return &c.Files.Filter }},
	{name: "word-map", short: "m", usage: "word map file to preload", field: func(c *config.Config) *string { return &c.Files.WordMap }},
	{name: "output", short: "o", usage: "output file (default stdout)", field: func(c *config.Config) *string { return &c.Files.Output }},
	{name: "word-map-db", usage: "persistent word map store", field: func(c *config.Config) *string { return &c.Files.WordMapDB }},
	{name: "save-word-map", usage: "word map file to merge this run's mappings into", field: func(c *config.Config) *string { return &c.Files.SaveWordMap }},
	{name: "log-level", usage: "log level (debug, info, warn, error)", field: func(c *config.Config) *string { return &c.Logging.Level }},
	{name: "log-format", usage: "log format (console, json)", field: func(c *config.Config) *string { return &c.Logging.Format }},
}

var boolFlags = []*boolFlag{
	{name: "alphabetical", short: "a", usage: "drain buckets in alphabetical order", field: func(c *config.Config) *bool { return &c.Policy.Alphabetical }},
	{name: "block-shuffle", usage: "do not shuffle buckets under limited usage", field: func(c *config.Config) *bool { return &c.Policy.BlockShuffle }},
	{name: "equal-weighting", usage: "draw uniformly from distinct words", field: func(c *config.Config) *bool { return &c.Policy.EqualWeighting }},
	{name: "relative-usage", usage: "draw weighted by corpus frequency", field: func(c *config.Config) *bool { return &c.Policy.RelativeUsage }},
	{name: "limited-usage", short: "l", usage: "use each corpus word at most once", field: func(c *config.Config) *bool { return &c.Policy.LimitedUsage }},
	{name: "force-limited-usage", usage: "never offer a word as its own replacement once seen", field: func(c *config.Config) *bool { return &c.Policy.ForceLimitedUsage }},
	{name: "map-words", usage: "replace repeated words consistently", field: func(c *config.Config) *bool { return &c.Policy.MapWords }},
	{name: "get-different", usage: "prefer replacements that differ from the word", field: func(c *config.Config) *bool { return &c.Policy.GetDifferent }},
	{name: "halt", usage: "pass words through unchanged", field: func(c *config.Config) *bool { return &c.Policy.HaltRearranger }},
	{name: "filter-same", usage: "keep listed words unchanged", field: func(c *config.Config) *bool { return &c.Filter.Same }},
	{name: "filter-different", usage: "keep unlisted words unchanged", field: func(c *config.Config) *bool { return &c.Filter.Different }},
	{name: "pure", usage: "drop every word that fails the filter", field: func(c *config.Config) *bool { return &c.Filter.PureMode }},
	{name: "filter-source", usage: "apply the filter to the source corpus", field: func(c *config.Config) *bool { return &c.Filter.FilterSource }},
	{name: "void-inner", usage: "strip punctuation inside words", field: func(c *config.Config) *bool { return &c.Punctuation.VoidInner }},
	{name: "void-outer", usage: "strip punctuation around words", field: func(c *config.Config) *bool { return &c.Punctuation.VoidOuter }},
	{name: "compare-lower", usage: "classify lower-cased words", field: func(c *config.Config) *bool { return &c.Classify.CompareLower }},
	{name: "case-sensitive", usage: "keep the case of the first letter when bucketing", field: func(c *config.Config) *bool { return &c.Classify.CaseSensitive }},
	{name: "hard-truncate", usage: "remove every newline", field: func(c *config.Config) *bool { return &c.Newlines.HardTruncate }},
	{name: "soft-truncate", usage: "keep only blank-line newlines", field: func(c *config.Config) *bool { return &c.Newlines.SoftTruncate }},
	{name: "truncate-multiple", usage: "collapse runs of blank lines", field: func(c *config.Config) *bool { return &c.Newlines.TruncateMultiple }},
	{name: "truncate-whitespace", usage: "remove spaces between words", field: func(c *config.Config) *bool { return &c.Newlines.TruncateWhitespace }},
	{name: "jabberwocky", usage: "blend replacements with the original words", field: func(c *config.Config) *bool { return &c.Jabberwocky.Enabled }},
	{name: "block-sort", usage: "list report words in corpus order", field: func(c *config.Config) *bool { return &c.Inspect.BlockSort }},
	{name: "summary", usage: "append a bucket summary table to the report", field: func(c *config.Config) *bool { return &c.Inspect.Summary }},
	{name: "slow", usage: "delay each output write", field: func(c *config.Config) *bool { return &c.Output.Slow }},
}

var intFlags = []*intFlag{
	{name: "kick-chance", usage: "percent chance of a newline after each word", field: func(c *config.Config) *int { return &c.Newlines.KickChance }},
	{name: "jabberwocky-chance", usage: "percent chance of blending a replacement", field: func(c *config.Config) *int { return &c.Jabberwocky.Chance }},
	{name: "get-attempts", usage: "random draws before falling back to the word", field: func(c *config.Config) *int { return &c.Policy.GetAttempts }},
	{name: "decimal-accuracy", usage: "decimal places of report percentages", field: func(c *config.Config) *int { return &c.Inspect.DecimalAccuracy }},
	{name: "count-min", usage: "drop words seen fewer times", field: func(c *config.Config) *int { return &c.Limits.CountMin }},
	{name: "count-max", usage: "drop words seen more times", field: func(c *config.Config) *int { return &c.Limits.CountMax }},
	{name: "delay", usage: "milliseconds between output writes with --slow", field: func(c *config.Config) *int { return &c.Output.DelayMS }},
}

var floatFlags = []*floatFlag{
	{name: "percent-min", usage: "drop words below this percent of the corpus", field: func(c *config.Config) *float64 { return &c.Limits.PercentMin }},
	{name: "percent-max", usage: "drop words above this percent of the corpus", field: func(c *config.Config) *float64 { return &c.Limits.PercentMax }},
}

var seedFlag int64

func registerOverrides(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	for _, f := range stringFlags {
		flags.StringVarP(&f.value, f.name, f.short, "", f.usage)
	}
	for _, f := range boolFlags {
		flags.BoolVarP(&f.value, f.name, f.short, false, f.usage)
	}
	for _, f := range intFlags {
		flags.IntVar(&f.value, f.name, 0, f.usage)
	}
	for _, f := range floatFlags {
		flags.Float64Var(&f.value, f.name, 0, f.usage)
	}
	flags.Int64Var(&seedFlag, "seed", -1, "random seed (-1 seeds from the clock)")
}

func applyOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	for _, f := range stringFlags {
		if flags.Changed(f.name) {
			*f.field(c) = f.value
		}
	}
	for _, f := range boolFlags {
		if flags.Changed(f.name) {
			*f.field(c) = f.value
		}
	}
	for _, f := range intFlags {
		if flags.Changed(f.name) {
			*f.field(c) = f.value
		}
	}
	for _, f := range floatFlags {
		if flags.Changed(f.name) {
			*f.field(c) = f.value
		}
	}
	if flags.Changed("seed") {
		c.Random.Seed = seedFlag
	}
	if flags.Changed("jabberwocky-chance") && !flags.Changed("jabberwocky") {
		c.Jabberwocky.Enabled = c.Jabberwocky.Chance > 0
	}
}
