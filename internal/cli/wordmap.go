package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rearranger/internal/usecase"
)

var wordMapCmd = &cobra.Command{
	Use:   "wordmap",
	Short: "Manage the persistent word map store",
}

var wordMapExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the stored word map as a word map file",
	Long: `Export writes every entry of the word map store as "word replacement"
lines, sorted by word. Without a file argument the lines go to stdout.

Examples:
  rearranger wordmap export --word-map-db maps.db
  rearranger wordmap export --word-map-db maps.db map.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWordMapExport,
}

var wordMapImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a word map file into the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordMapImport,
}

func init() {
	wordMapCmd.AddCommand(wordMapExportCmd)
	wordMapCmd.AddCommand(wordMapImportCmd)
	rootCmd.AddCommand(wordMapCmd)
}

func runWordMapExport(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	logger := GetLogger()

	if cfg.Files.WordMapDB == "" {
		return fmt.Errorf("no word map store: set files.word_map_db or pass --word-map-db")
	}
	st, err := openWordMapStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	output, err := openOutput(path)
	if err != nil {
		return err
	}
	defer output.Close()

	n, err := usecase.NewWordMapUseCase(st, logger).Export(output)
	if err != nil {
		return err
	}
	logger.Info("word map exported", "entries", n)
	return nil
}

func runWordMapImport(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	logger := GetLogger()

	if cfg.Files.WordMapDB == "" {
		return fmt.Errorf("no word map store: set files.word_map_db or pass --word-map-db")
	}
	st, err := openWordMapStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open word map: %w", err)
	}
	defer f.Close()

	result, err := usecase.NewWordMapUseCase(st, logger).Import(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries (%d lines skipped)\n", result.FromFile, result.Skipped)
	return nil
}
