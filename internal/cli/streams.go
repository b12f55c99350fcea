package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"rearranger/config"
	"rearranger/internal/adapter/filter"
	"rearranger/internal/adapter/fs"
	"rearranger/internal/adapter/store"
	"rearranger/internal/adapter/vocab"
	"rearranger/internal/port"
	"rearranger/internal/usecase"
)

// openInput opens path for reading. An empty path or "-" means stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// openOutput creates path for writing. An empty path or "-" means stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// loadFilter reads the filter list named in the config. The list is empty
// when no file is set or no filter mode is active.
func loadFilter(cfg *config.Config) (*filter.List, error) {
	if cfg.Files.Filter == "" || !cfg.Filter.Active() {
		return filter.NewList(nil, cfg.Filter, cfg.Classify), nil
	}
	f, err := os.Open(cfg.Files.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open filter list: %w", err)
	}
	defer f.Close()

	list, err := filter.Load(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter list: %w", err)
	}
	return list, nil
}

// loadVocabulary builds and sorts the vocabulary from the source corpus.
func loadVocabulary(cfg *config.Config, filterList *filter.List, rng port.Random, logger *slog.Logger) (*usecase.Vocabulary, error) {
	if cfg.Files.Source == "" {
		return nil, fmt.Errorf("no source corpus: set files.source or pass --source")
	}

	corpus, err := fs.OpenCorpus(cfg.Files.Source, fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes))
	if err != nil {
		return nil, fmt.Errorf("failed to open source corpus: %w", err)
	}
	defer corpus.Close()

	var r io.Reader = corpus
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar := progressbar.NewOptions64(corpus.Size(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan]Loading corpus[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		r = io.TeeReader(corpus, bar)
	}

	v, err := usecase.BuildVocabulary(r, filterList, cfg)
	if err != nil {
		return nil, err
	}
	v.Index.Sort(vocab.SortOptionsFrom(cfg), rng)

	logger.Debug("vocabulary built",
		"files", len(corpus.Files()),
		"words", v.Total,
		"distinct", len(v.Occurrences),
	)
	return v, nil
}

// openWordMapStore opens the persistent word-map store named in the config,
// or returns nil when none is configured. Stored entries built under other
// classification settings are cleared.
func openWordMapStore(cfg *config.Config, logger *slog.Logger) (*store.BoltStore, error) {
	if cfg.Files.WordMapDB == "" {
		return nil, nil
	}

	st, err := store.NewBoltStore(cfg.Files.WordMapDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open word map store: %w", err)
	}

	result, err := st.Prepare(cfg)
	if err != nil {
		st.Close()
		return nil, err
	}
	count, err := st.Count()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to read word map store: %w", err)
	}
	logger.Debug("word map store opened", "path", cfg.Files.WordMapDB, "entries", count)

	if result.NeedsRebuild {
		logger.Warn("word map store cleared", "reason", result.Reason, "path", cfg.Files.WordMapDB)
	} else if result.NeedsMigration {
		logger.Info("word map store migrated", "reason", result.Reason)
	}
	return st, nil
}
