package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driving"
	"github.com/papyrus-labs/papyrus-cli/internal/logger"
)

// watchSettleDelay is how long a file must be quiet before conversion.
// Editors and copies often produce bursts of write events for one save.
const watchSettleDelay = 500 * time.Millisecond

var (
	watchInType      string
	watchOutType     string
	watchLang        string
	watchOutputDir   string
	watchTableFormat string
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and convert new documents",
	Long: `Watches a directory and converts documents as they appear or change.

Only files whose extension matches the input format are converted.
Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchInType, "in-type", "", "input format (e.g. docx)")
	watchCmd.Flags().StringVar(&watchOutType, "out-type", "", "output format (e.g. txt)")
	watchCmd.Flags().StringVar(&watchLang, "lang", "", "locale for header/footer labels")
	watchCmd.Flags().StringVarP(&watchOutputDir, "output-dir", "o", "", "directory for output files")
	watchCmd.Flags().StringVar(&watchTableFormat, "table-format", "", "table rendering: tsv or pipe")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot watch %s: not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := driving.JobOptions{
		InputFormat:  watchInType,
		OutputFormat: watchOutType,
		Locale:       watchLang,
		TableFormat:  watchTableFormat,
		OutputDir:    watchOutputDir,
	}

	// The extension to react to comes from a throwaway job so flag and
	// persisted-settings defaults apply.
	wantExt := "." + strings.ToLower(convertService.NewJob("probe", opts).InputFormat)

	cmd.Printf("Watching %s for *%s files. Press Ctrl+C to stop.\n", dir, wantExt)

	// Pending files and the time their last event arrived.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(watchSettleDelay / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) != wantExt {
				continue
			}
			if strings.HasPrefix(filepath.Base(event.Name), ".") {
				continue // skip hidden/staging files
			}
			pending[event.Name] = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < watchSettleDelay {
					continue
				}
				delete(pending, path)
				convertWatched(ctx, cmd, path, opts)
			}
		}
	}
}

func convertWatched(ctx context.Context, cmd *cobra.Command, path string, opts driving.JobOptions) {
	job := convertService.NewJob(path, opts)
	result, err := convertService.Run(ctx, job)
	if err != nil {
		cmd.PrintErrf("%s: %v\n", path, err)
		return
	}
	for _, outPath := range result.Paths {
		cmd.Println(outPath)
	}
}
