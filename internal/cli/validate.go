package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vvka-141/mxfmeta/internal/report"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check MXF header metadata for violations",
	Long: `Parse the header partition of each file and list every violation found,
with its severity:

  WARNING    the parsed result is unaffected
  NON_FATAL  a field or set was dropped, the rest is usable
  FATAL      the header metadata cannot be used

The command fails if any file has a FATAL violation. With --strict, parsing
stops at the first NON_FATAL or FATAL violation of each file instead.

Examples:
  # List every violation
  mxfmeta validate clip.mxf

  # Stop at the first violation, as JSON
  mxfmeta validate clip.mxf --strict --json`,
	Args:              RequireFiles,
	ValidArgsFunction: completeMXFFiles,
	RunE:              runValidate,
}

var (
	validateStrict bool
	validateJSON   bool
)

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Stop at the first violation (default: from config)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output violations as JSON")
}

type validateReport struct {
	File       string         `json:"file"`
	Valid      bool           `json:"valid"`
	Error      string         `json:"error,omitempty"`
	Violations []report.Entry `json:"violations"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strict") {
		cfg.Parse.Strict = validateStrict
	}

	opts, err := newParseOptions(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = opts.logger.Sync() }()

	results, err := parseFiles(commandContext(cmd), args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if validateJSON {
		reports := make([]validateReport, len(results))
		for i, res := range results {
			reports[i] = validateReport{File: res.Path, Valid: res.Err == nil, Violations: violations(res)}
			if res.Err != nil {
				reports[i].Error = res.Err.Error()
			}
		}
		if err := writeJSON(out, reports); err != nil {
			return err
		}
	} else {
		st := newStyles(useColor(cfg.Output.Color, out))
		for _, res := range results {
			writeValidateText(out, st, res)
		}
	}
	return resultsErr(results)
}

// violations lists what was recorded for a file. In strict mode nothing
// is recorded, so the violation that stopped parsing is listed instead.
func violations(res fileResult) []report.Entry {
	if len(res.Entries) > 0 || res.Err == nil {
		return res.Entries
	}
	var entry report.Entry
	if errors.As(res.Err, &entry) {
		return []report.Entry{entry}
	}
	return nil
}

func writeValidateText(w io.Writer, st styles, res fileResult) {
	entries := violations(res)
	if res.Err == nil {
		fmt.Fprintf(w, "%s %s", st.Success.Render(symbolCheck), res.Path)
	} else {
		fmt.Fprintf(w, "%s %s", st.Fatal.Render(symbolCross), res.Path)
	}
	if len(entries) > 0 {
		fmt.Fprintf(w, " %s", st.Muted.Render(fmt.Sprintf("(%d violation(s))", len(entries))))
	}
	fmt.Fprintln(w)

	for _, e := range entries {
		fmt.Fprintf(w, "    %s %s %s\n", severityStyle(st, e.Severity).Render(fmt.Sprintf("%-9s", e.Severity)), e.Code, e.Message)
	}
	if res.Err != nil && len(entries) == 0 {
		fmt.Fprintf(w, "    %v\n", res.Err)
	}
}

func severityStyle(st styles, s mxf.Severity) lipgloss.Style {
	switch s {
	case mxf.SeverityFatal:
		return st.Fatal
	case mxf.SeverityNonFatal:
		return st.NonFatal
	}
	return st.Warning
}
