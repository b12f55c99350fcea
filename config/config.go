package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the rearranger.
type Config struct {
	Punctuation PunctuationConfig `yaml:"punctuation" toml:"punctuation"`
	Classify    ClassifyConfig    `yaml:"classify" toml:"classify"`
	Policy      PolicyConfig      `yaml:"policy" toml:"policy"`
	Filter      FilterConfig      `yaml:"filter" toml:"filter"`
	Newlines    NewlineConfig     `yaml:"newlines" toml:"newlines"`
	Jabberwocky JabberwockyConfig `yaml:"jabberwocky" toml:"jabberwocky"`
	Inspect     InspectConfig     `yaml:"inspect" toml:"inspect"`
	Limits      LimitConfig       `yaml:"limits" toml:"limits"`
	Random      RandomConfig      `yaml:"random" toml:"random"`
	Output      OutputConfig      `yaml:"output" toml:"output"`
	Files       FilesConfig       `yaml:"files" toml:"files"`
	Corpus      CorpusConfig      `yaml:"corpus" toml:"corpus"`
	Logging     LoggingConfig     `yaml:"logging" toml:"logging"`
}

// PunctuationConfig controls how punctuation is split from words.
type PunctuationConfig struct {
	Preserve  bool `yaml:"preserve" toml:"preserve"`
	VoidInner bool `yaml:"void_inner" toml:"void_inner"` // drop non-alphanumerics inside words
	VoidOuter bool `yaml:"void_outer" toml:"void_outer"` // drop leading/trailing punctuation
}

// ClassifyConfig selects which axes words are bucketed on.
type ClassifyConfig struct {
	CompareCase   bool `yaml:"compare_case" toml:"compare_case"`
	CompareLower  bool `yaml:"compare_lower" toml:"compare_lower"`
	FirstLetter   bool `yaml:"first_letter" toml:"first_letter"`
	CaseSensitive bool `yaml:"case_sensitive" toml:"case_sensitive"`
	Length        bool `yaml:"length" toml:"length"`
}

// PolicyConfig holds the replacement consumption policies.
type PolicyConfig struct {
	Alphabetical      bool `yaml:"alphabetical" toml:"alphabetical"`
	BlockShuffle      bool `yaml:"block_shuffle" toml:"block_shuffle"`
	EqualWeighting    bool `yaml:"equal_weighting" toml:"equal_weighting"`
	RelativeUsage     bool `yaml:"relative_usage" toml:"relative_usage"`
	LimitedUsage      bool `yaml:"limited_usage" toml:"limited_usage"`
	ForceLimitedUsage bool `yaml:"force_limited_usage" toml:"force_limited_usage"`
	MapWords          bool `yaml:"map_words" toml:"map_words"`
	GetDifferent      bool `yaml:"get_different" toml:"get_different"`
	GetAttempts       int  `yaml:"get_attempts" toml:"get_attempts"`
	HaltRearranger    bool `yaml:"halt_rearranger" toml:"halt_rearranger"`
}

// FilterConfig holds filter list behaviour.
type FilterConfig struct {
	Same         bool `yaml:"same" toml:"same"`           // listed words pass
	Different    bool `yaml:"different" toml:"different"` // unlisted words pass
	PureMode     bool `yaml:"pure_mode" toml:"pure_mode"`
	FilterSource bool `yaml:"filter_source" toml:"filter_source"`
}

// Active reports whether a filter mode is selected.
func (f FilterConfig) Active() bool {
	return f.Same || f.Different
}

// NewlineConfig holds newline and whitespace reconstruction settings.
type NewlineConfig struct {
	HardTruncate       bool `yaml:"hard_truncate" toml:"hard_truncate"`
	SoftTruncate       bool `yaml:"soft_truncate" toml:"soft_truncate"`
	TruncateMultiple   bool `yaml:"truncate_multiple" toml:"truncate_multiple"`
	TruncateWhitespace bool `yaml:"truncate_whitespace" toml:"truncate_whitespace"`
	KickChance         int  `yaml:"kick_chance" toml:"kick_chance"` // percent
}

// JabberwockyConfig holds word blending settings.
type JabberwockyConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
	Chance  int  `yaml:"chance" toml:"chance"` // percent
}

// InspectConfig holds analysis report settings.
type InspectConfig struct {
	Enabled          bool `yaml:"enabled" toml:"enabled"`
	BlockSort        bool `yaml:"block_sort" toml:"block_sort"`
	FrequencyCount   bool `yaml:"frequency_count" toml:"frequency_count"`
	FrequencyPercent bool `yaml:"frequency_percent" toml:"frequency_percent"`
	DecimalAccuracy  int  `yaml:"decimal_accuracy" toml:"decimal_accuracy"`
	Summary          bool `yaml:"summary" toml:"summary"`
}

// LimitConfig bounds which words stay in the vocabulary. All bounds are inclusive.
type LimitConfig struct {
	CountMin   int     `yaml:"count_min" toml:"count_min"`
	CountMax   int     `yaml:"count_max" toml:"count_max"`
	PercentMin float64 `yaml:"percent_min" toml:"percent_min"`
	PercentMax float64 `yaml:"percent_max" toml:"percent_max"`
}

// RandomConfig holds the random seed. -1 seeds from the clock.
type RandomConfig struct {
	Seed int64 `yaml:"seed" toml:"seed"`
}

// OutputConfig holds output pacing.
type OutputConfig struct {
	Slow    bool `yaml:"slow" toml:"slow"`
	DelayMS int  `yaml:"delay_ms" toml:"delay_ms"`
}

// FilesConfig names the streams a run reads and writes. Empty input/output
// mean stdin/stdout.
type FilesConfig struct {
	Input       string `yaml:"input" toml:"input"`
	Source      string `yaml:"source" toml:"source"`
	Filter      string `yaml:"filter" toml:"filter"`
	WordMap     string `yaml:"word_map" toml:"word_map"`
	Output      string `yaml:"output" toml:"output"`
	WordMapDB   string `yaml:"word_map_db" toml:"word_map_db"`
	SaveWordMap string `yaml:"save_word_map" toml:"save_word_map"`
}

// CorpusConfig holds glob patterns used when the source is a directory.
type CorpusConfig struct {
	Includes []string `yaml:"includes" toml:"includes"`
	Excludes []string `yaml:"excludes" toml:"excludes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Punctuation: PunctuationConfig{
			Preserve: true,
		},
		Classify: ClassifyConfig{
			CompareCase: true,
			FirstLetter: true,
			Length:      true,
		},
		Policy: PolicyConfig{
			GetAttempts: 10,
		},
		Inspect: InspectConfig{
			FrequencyCount:   true,
			FrequencyPercent: true,
			DecimalAccuracy:  2,
		},
		Limits: LimitConfig{
			CountMin:   0,
			CountMax:   math.MaxInt32,
			PercentMin: 0,
			PercentMax: 100,
		},
		Random: RandomConfig{
			Seed: -1,
		},
		Corpus: CorpusConfig{
			Includes: []string{"**/*.txt", "**/*.md", "**/*.html", "**/*.xz"},
			Excludes: []string{"**/.git/**"},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Validate rejects option combinations that cannot resolve to one behaviour.
func (c *Config) Validate() error {
	var errs []error

	if c.Filter.Same && c.Filter.Different {
		errs = append(errs, errors.New("filter: same and different are mutually exclusive"))
	}
	if c.Newlines.HardTruncate && (c.Newlines.SoftTruncate || c.Newlines.TruncateMultiple) {
		errs = append(errs, errors.New("newlines: hard_truncate excludes soft_truncate and truncate_multiple"))
	}
	if c.Newlines.KickChance < 0 || c.Newlines.KickChance > 100 {
		errs = append(errs, fmt.Errorf("newlines: kick_chance %d outside 0..100", c.Newlines.KickChance))
	}
	if c.Jabberwocky.Chance < 0 || c.Jabberwocky.Chance > 100 {
		errs = append(errs, fmt.Errorf("jabberwocky: chance %d outside 0..100", c.Jabberwocky.Chance))
	}
	if c.Inspect.DecimalAccuracy < 0 {
		errs = append(errs, fmt.Errorf("inspect: decimal_accuracy %d is negative", c.Inspect.DecimalAccuracy))
	}
	if (c.Policy.MapWords || c.Policy.GetDifferent) && c.Policy.GetAttempts < 1 {
		errs = append(errs, fmt.Errorf("policy: get_attempts must be at least 1, got %d", c.Policy.GetAttempts))
	}
	if c.Limits.CountMin > c.Limits.CountMax {
		errs = append(errs, fmt.Errorf("limits: count_min %d above count_max %d", c.Limits.CountMin, c.Limits.CountMax))
	}
	if c.Limits.PercentMin > c.Limits.PercentMax {
		errs = append(errs, fmt.Errorf("limits: percent_min %g above percent_max %g", c.Limits.PercentMin, c.Limits.PercentMax))
	}
	if c.Output.DelayMS < 0 {
		errs = append(errs, fmt.Errorf("output: delay_ms %d is negative", c.Output.DelayMS))
	}

	return errors.Join(errs...)
}

// Load loads configuration from a YAML or TOML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for rearranger.yaml).
func LoadFromDir(dir string) (*Config, error) {
	candidates := []string{
		filepath.Join(dir, "rearranger.yaml"),
		filepath.Join(dir, "rearranger.toml"),
		filepath.Join(dir, ".rearranger", "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
