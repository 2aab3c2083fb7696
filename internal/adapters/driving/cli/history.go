package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	Long:  `Lists recent conversion jobs, newest first, with their outcome.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No conversions recorded yet.")
		return nil
	}

	for _, rec := range records {
		status := "ok"
		if !rec.Succeeded() {
			status = "failed"
		}

		cmd.Printf("  [%s] %s (%s -> %s)\n", status, rec.InputPath, rec.InputFormat, rec.OutputFormat)
		if !rec.StartedAt.IsZero() {
			cmd.Printf("      at %s", rec.StartedAt.Local().Format("2006-01-02 15:04:05"))
			if rec.Succeeded() {
				cmd.Printf(", %d part(s)", rec.PartCount)
			}
			cmd.Println()
		}
		if rec.Error != "" {
			cmd.Printf("      %s\n", rec.Error)
		}
	}
	return nil
}
