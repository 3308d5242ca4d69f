package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireFiles validates that at least one file argument is provided.
// Returns a helpful error message with usage and examples if missing.
func RequireFiles(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`requires at least 1 arg(s), only received 0: missing <file>

Usage: %s

Example:
  %s clip.mxf`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
