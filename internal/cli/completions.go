package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// colorModes contains the values accepted by --color.
var colorModes = []string{"auto", "always", "never"}

// completeMXFFiles lets the shell complete .mxf file names.
func completeMXFFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"mxf"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeConfigFiles lets the shell complete YAML file names.
func completeConfigFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeColorModes provides shell completion for --color values.
func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, mode := range colorModes {
		if strings.HasPrefix(mode, toComplete) {
			matches = append(matches, mode)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
