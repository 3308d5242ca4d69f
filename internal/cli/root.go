package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mxfmeta",
	Short: "MXF header metadata inspector",
	Long: `mxfmeta reads the header partition of MXF files, resolves the strong
references between its metadata sets and reports what the file carries:
packages, tracks, essence descriptors and their durations.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Malformed input (KLV, partition pack, primer pack, field size)
  21 - Structural violation (preface count, reference cycle, sub-descriptors)
  22 - File could not be read`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "", "Path to mxfmeta.yaml (default: ./mxfmeta.yaml or $MXFMETA_CONFIG)")
	rootCmd.PersistentFlags().String("color", "", "Color output: auto, always or never (default: from config)")
	_ = rootCmd.RegisterFlagCompletionFunc("config", completeConfigFiles)
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
