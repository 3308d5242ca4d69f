package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/mxfmeta/internal/checksum"
	"github.com/vvka-141/mxfmeta/internal/header"
	"github.com/vvka-141/mxfmeta/internal/partition"
	"github.com/vvka-141/mxfmeta/internal/report"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>...",
	Short: "Summarize the header metadata of MXF files",
	Long: `Parse the header partition of each file and print what it describes:
the partition pack, packages with their tracks, essence descriptors,
essence types and duration. Partitions listed in a random index pack are
shown when the file has one.

Files are parsed concurrently, at most "workers" at a time.

Examples:
  # Human-readable summary
  mxfmeta inspect clip.mxf

  # Machine-readable output for several files
  mxfmeta inspect *.mxf --json`,
	Args:              RequireFiles,
	ValidArgsFunction: completeMXFFiles,
	RunE:              runInspect,
}

var (
	inspectJSON    bool
	inspectYAML    bool
	inspectWorkers int
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output results as JSON")
	inspectCmd.Flags().BoolVar(&inspectYAML, "yaml", false, "Output results as YAML")
	inspectCmd.Flags().IntVar(&inspectWorkers, "workers", 0, "Files parsed concurrently (default: from config)")
}

// inspectReport is the machine-readable result for one file.
type inspectReport struct {
	File       string                `json:"file" yaml:"file"`
	Error      string                `json:"error,omitempty" yaml:"error,omitempty"`
	Summary    *header.Summary       `json:"summary,omitempty" yaml:"summary,omitempty"`
	Checksum   *checksum.Fingerprint `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Partitions []*partition.Pack     `json:"partitions,omitempty" yaml:"partitions,omitempty"`
	Violations []report.Entry        `json:"violations,omitempty" yaml:"violations,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectJSON && inspectYAML {
		return fmt.Errorf("invalid argument: --json and --yaml are mutually exclusive")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if inspectWorkers > 0 {
		cfg.Workers = inspectWorkers
	}
	switch {
	case inspectJSON:
		cfg.Output.Format = "json"
	case inspectYAML:
		cfg.Output.Format = "yaml"
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
	switch cfg.Output.Format {
	case "json":
		err = writeJSON(out, inspectReports(results))
	case "yaml":
		err = writeYAML(out, inspectReports(results))
	default:
		st := newStyles(useColor(cfg.Output.Color, out))
		for i, res := range results {
			if i > 0 {
				fmt.Fprintln(out)
			}
			writeInspectText(out, st, res)
		}
	}
	if err != nil {
		return err
	}
	return resultsErr(results)
}

func inspectReports(results []fileResult) []inspectReport {
	reports := make([]inspectReport, len(results))
	for i, res := range results {
		r := inspectReport{File: res.Path, Checksum: res.Checksum, Partitions: res.Partitions, Violations: res.Entries}
		if res.Err != nil {
			r.Error = res.Err.Error()
		}
		if res.Header != nil {
			s := res.Header.Summary()
			r.Summary = &s
		}
		reports[i] = r
	}
	return reports
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeInspectText(w io.Writer, st styles, res fileResult) {
	fmt.Fprintln(w, st.Title.Render(res.Path))
	if res.Header == nil {
		fmt.Fprintf(w, "  %s %v\n", st.Fatal.Render(symbolCross), res.Err)
		return
	}
	s := res.Header.Summary()
	row := func(label, format string, args ...interface{}) {
		fmt.Fprintf(w, "  %s %s\n", st.Label.Render(fmt.Sprintf("%-12s", label)), fmt.Sprintf(format, args...))
	}

	p := s.Partition
	row("Partition", "%s (%s), version %d.%d, KAG %d", p.Kind, p.Status, p.MajorVersion, p.MinorVersion, p.KAGSize)
	row("Pattern", "%s", p.OperationalPattern)
	row("Primer", "%d local tags", s.PrimerEntries)
	row("Essence", "%v", s.EssenceTypes)
	row("Duration", "%d", s.EssenceDuration)
	if res.Checksum != nil {
		row("Checksum", "%s", res.Checksum.Normalized)
	}
	for _, id := range s.Identifications {
		row("Written by", "%s %s %s", id.CompanyName, id.ProductName, id.VersionString)
	}

	if len(s.Packages) > 0 {
		fmt.Fprintf(w, "  %s\n", st.Label.Render("Packages"))
	}
	for _, pkg := range s.Packages {
		fmt.Fprintf(w, "    %s %s %s %s\n", symbolBullet, pkg.Kind, pkg.Name, st.Muted.Render(pkg.PackageUID.String()))
		for _, t := range pkg.Tracks {
			fmt.Fprintf(w, "        track %d %s  edit rate %s  duration %d\n", t.TrackID, t.Name, t.EditRate, t.Duration)
		}
		if d := pkg.Descriptor; d != nil {
			fmt.Fprintf(w, "        %s  sample rate %s", d.Kind, d.SampleRate)
			if len(d.SubDescriptors) > 0 {
				fmt.Fprintf(w, "  %v", d.SubDescriptors)
			}
			fmt.Fprintln(w)
		}
	}

	if len(res.Partitions) > 0 {
		fmt.Fprintf(w, "  %s\n", st.Label.Render("Partitions"))
		for _, pp := range res.Partitions {
			fmt.Fprintf(w, "    %s %-8s at %d  body SID %d  index SID %d\n", symbolBullet, pp.Kind, pp.Offset, pp.BodySID, pp.IndexSID)
		}
	}

	if n := len(res.Entries); n > 0 {
		fmt.Fprintf(w, "  %s\n", st.Warning.Render(fmt.Sprintf("%d violation(s), run validate for details", n)))
	}
}

// resultsErr joins the errors of every failed file, each prefixed with
// its path.
func resultsErr(results []fileResult) error {
	var list []error
	for _, res := range results {
		if res.Err != nil {
			list = append(list, fmt.Errorf("%s: %w", res.Path, res.Err))
		}
	}
	return errors.Join(list...)
}
