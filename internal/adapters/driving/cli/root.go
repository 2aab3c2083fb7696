// Package cli implements the papyrus command line interface using cobra.
// Commands hold no business logic; they parse flags, call the driving
// services wired in via SetServices, and format output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driving"
	"github.com/papyrus-labs/papyrus-cli/internal/logger"
)

// version is the build version, overridable via -ldflags.
var version = "0.1.0-dev"

// Services used by the commands. Wired in by the composition root.
var (
	convertService  driving.ConvertService
	settingsService driving.SettingsService
	historyService  driving.HistoryService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "papyrus",
	Short: "Convert word processing documents to plain text",
	Long: `Papyrus converts word processing documents (currently DOCX) into
plain text suitable for indexing, diffing, and archival.

Tables are flattened to delimited rows, headers and footers are labelled
in the configured language, and large outputs can be split into
size-limited parts.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output on stderr")
}

// SetServices wires the application services into the CLI commands.
func SetServices(convert driving.ConvertService, settings driving.SettingsService, history driving.HistoryService) {
	convertService = convert
	settingsService = settings
	historyService = history
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
