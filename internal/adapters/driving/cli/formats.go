package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported conversions",
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	if convertService == nil {
		return errors.New("convert service not configured")
	}

	pairs := convertService.Conversions()
	if len(pairs) == 0 {
		cmd.Println("No converters registered.")
		return nil
	}

	cmd.Println("Supported conversions:")
	for _, pair := range pairs {
		cmd.Printf("  %s -> %s\n", pair[0], pair[1])
	}
	return nil
}
