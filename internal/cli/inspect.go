package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rearranger/internal/adapter/random"
	"rearranger/internal/usecase"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the bucketed vocabulary of the source corpus",
	Long: `Inspect builds the vocabulary from the source corpus and prints it as an
outline of case, first letter and length buckets with per-word counts and
frequencies. Limits drop words outside the configured count and percent
ranges.

Examples:
  rearranger inspect -s corpus.txt
  rearranger inspect -s books/ --count-min 5 --summary`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	logger := GetLogger()

	filterList, err := loadFilter(cfg)
	if err != nil {
		return err
	}

	v, err := loadVocabulary(cfg, filterList, random.New(cfg.Random.Seed), logger)
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

	result, err := usecase.NewAnalyzeUseCase(cfg, pacer).Analyze(v, w)
	if err != nil {
		return err
	}
	if bw != nil {
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	logger.Info("inspection complete", "lines", result.Lines, "words", result.Words)
	return nil
}
