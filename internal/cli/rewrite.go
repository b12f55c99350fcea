package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rearranger/internal/adapter/analyzer"
	"rearranger/internal/adapter/random"
	"rearranger/internal/adapter/selector"
	"rearranger/internal/adapter/wordmap"
	"rearranger/internal/port"
	"rearranger/internal/usecase"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite text with words from the source corpus",
	Long: `Rewrite reads the input text and replaces each word with a word of the
same shape from the source corpus. This is also what runs when no command is
given, unless inspect.enabled is set in the config.

Examples:
  rearranger rewrite -s corpus.txt -i in.txt -o out.txt
  rearranger rewrite -s books/ --map-words --word-map-db maps.db < in.txt`,
	Args: cobra.NoArgs,
	RunE: runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	logger := GetLogger()

	if cfg.Inspect.Enabled {
		return runInspect(cmd, args)
	}

	input, err := openInput(cfg.Files.Input)
	if err != nil {
		return err
	}
	defer input.Close()

	filterList, err := loadFilter(cfg)
	if err != nil {
		return err
	}

	st, err := openWordMapStore(cfg, logger)
	if err != nil {
		return err
	}
	var wordStore port.WordMapStore
	if st != nil {
		defer st.Close()
		wordStore = st
	}

	wordMapUC := usecase.NewWordMapUseCase(wordStore, logger)
	wordMap := wordmap.New()
	var wordMapFile io.Reader
	if cfg.Files.WordMap != "" {
		f, err := os.Open(cfg.Files.WordMap)
		if err != nil {
			return fmt.Errorf("failed to open word map: %w", err)
		}
		defer f.Close()
		wordMapFile = f
	}
	loaded, err := wordMapUC.Load(wordMap, wordMapFile)
	if err != nil {
		return err
	}
	if loaded.Skipped > 0 {
		logger.Warn("word map lines skipped", "count", loaded.Skipped)
	}

	rng := random.New(cfg.Random.Seed)
	v, err := loadVocabulary(cfg, filterList, rng, logger)
	if err != nil {
		return err
	}

	output, err := openOutput(cfg.Files.Output)
	if err != nil {
		return err
	}
	defer output.Close()

	pacer := usecase.NewPacer(cfg.Output)
	var w io.Writer = output
	var bw *bufio.Writer
	if !pacer.Enabled() {
		bw = bufio.NewWriter(output)
		w = bw
	}

	sel := selector.New(v.Index, filterList, wordMap, analyzer.NewClassifier(cfg.Classify), rng, cfg)
	rearrangeUC := usecase.NewRearrangeUseCase(analyzer.NewSplitter(cfg.Punctuation, cfg.Newlines), sel, rng, cfg, pacer)

	result, err := rearrangeUC.Rearrange(input, w)
	if err != nil {
		return err
	}
	if bw != nil {
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	logger.Info("rewrite complete",
		"words", result.Words,
		"replaced", result.Replaced,
		"dropped", result.Dropped,
		"blended", result.Blended,
		"kicked", result.Kicked,
	)

	if cfg.Policy.MapWords || cfg.Files.SaveWordMap != "" {
		if err := wordMapUC.Save(wordMap, cfg.Files.SaveWordMap); err != nil {
			return err
		}
		logger.Debug("word map saved", "entries", wordMap.Len())
	}
	return nil
}
