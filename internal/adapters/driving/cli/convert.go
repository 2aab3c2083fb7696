package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driving"
	"github.com/papyrus-labs/papyrus-cli/internal/logger"
)

var (
	convertInType      string
	convertOutType     string
	convertLang        string
	convertOutputDir   string
	convertTableFormat string
	convertChunkSize   int
)

var convertCmd = &cobra.Command{
	Use:   "convert [file...]",
	Short: "Convert documents to plain text",
	Long: `Converts one or more documents to plain text.

Options left unset fall back to the last-used values persisted in the
config file, then to built-in defaults (docx input, txt output, en-US
labels, tab-separated tables).

When --chunk-size is given, output is split into parts of at most that
many bytes, breaking at line boundaries. Each part is written as a
separate file with a _partNNN suffix.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertInType, "in-type", "", "input format (e.g. docx)")
	convertCmd.Flags().StringVar(&convertOutType, "out-type", "", "output format (e.g. txt)")
	convertCmd.Flags().StringVar(&convertLang, "lang", "", "locale for header/footer labels (e.g. en-US, de-DE, fr-FR)")
	convertCmd.Flags().StringVarP(&convertOutputDir, "output-dir", "o", "", "directory for output files (default: alongside input)")
	convertCmd.Flags().StringVar(&convertTableFormat, "table-format", "", "table rendering: tsv or pipe")
	convertCmd.Flags().IntVar(&convertChunkSize, "chunk-size", 0, "maximum output part size in bytes")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}

	opts := driving.JobOptions{
		InputFormat:  convertInType,
		OutputFormat: convertOutType,
		Locale:       convertLang,
		TableFormat:  convertTableFormat,
		ChunkSize:    convertChunkSize,
		ChunkSizeSet: cmd.Flags().Changed("chunk-size"),
		OutputDir:    convertOutputDir,
	}

	ctx := cmd.Context()
	failed := 0

	for _, path := range args {
		if len(args) > 1 {
			logger.Section(path)
		}

		job := convertService.NewJob(path, opts)
		result, err := convertService.Run(ctx, job)
		if err != nil {
			failed++
			cmd.PrintErrf("%s: %v\n", path, err)
			continue
		}

		for _, outPath := range result.Paths {
			cmd.Println(outPath)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d conversion(s) failed", failed, len(args))
	}
	return nil
}
