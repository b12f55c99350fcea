package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"rearranger/config"
	"rearranger/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "rearranger",
	Short: "Rewrite text with words drawn from a bucketed corpus vocabulary",
	Long: `Rearranger replaces every word of an input text with a word of the same
shape (case, first letter, length) taken from a source corpus. The inspect
command prints the bucketed vocabulary instead.

Example usage:
  rearranger --source corpus.txt < in.txt            # Rewrite stdin
  rearranger --source books/ --map-words -i in.txt   # Keep replacements consistent
  rearranger inspect --source corpus.txt             # Show the vocabulary`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		applyOverrides(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid options: %w", err)
		}

		logger, err = logging.NewFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		return nil
	},
	RunE: runRewrite,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./rearranger.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "directory searched for a config file (default is current directory)")
	registerOverrides(rootCmd)
}

func GetConfig() *config.Config {
	return cfg
}

func GetLogger() *slog.Logger {
	if logger == nil {
		return logging.NewNop()
	}
	return logger
}
