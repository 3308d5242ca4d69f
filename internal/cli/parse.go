package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/mxfmeta/internal/checksum"
	"github.com/vvka-141/mxfmeta/internal/config"
	"github.com/vvka-141/mxfmeta/internal/header"
	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/internal/logging"
	"github.com/vvka-141/mxfmeta/internal/partition"
	"github.com/vvka-141/mxfmeta/internal/report"
)

// parseOptions are the per-run settings shared by every parsed file.
type parseOptions struct {
	strict  bool
	maxSets int
	workers int
	logger  *logging.ZapLogger
}

// fileResult is the outcome of parsing one file. Err is set when the
// header partition could not be used; Entries holds every violation that
// was reported along the way.
type fileResult struct {
	Path       string
	Header     *header.HeaderPartition
	Checksum   *checksum.Fingerprint
	RIP        *partition.RandomIndexPack
	Partitions []*partition.Pack
	Entries    []report.Entry
	Err        error
}

// parseFile reads the header partition of one file with its own source,
// collector and logger.
func parseFile(path string, opts parseOptions) (res fileResult) {
	res.Path = path
	log := opts.logger.Named(filepath.Base(path))

	src, err := klv.OpenFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	defer func() { res.Err = errs.Combine(res.Err, src.Close()) }()

	hopts := header.Options{Logger: log, MaxSets: opts.maxSets}
	var sink *report.Collector
	if !opts.strict {
		sink = report.NewCollector()
		hopts.Sink = sink
	}
	res.Header, res.Err = header.Read(src, hopts)
	if sink != nil {
		res.Entries = sink.Entries()
	}
	if res.Err != nil {
		return res
	}

	start, end := res.Header.MetadataRange()
	if fp, err := checksum.Header(checksum.New(), src, start, end); err != nil {
		log.Verbose("skipping header checksum: %v", err)
	} else {
		res.Checksum = &fp
	}

	rip, err := partition.ReadRandomIndexPack(src)
	switch {
	case errors.Is(err, partition.ErrNoRandomIndexPack):
		log.Verbose("no random index pack")
		return res
	case err != nil:
		log.Verbose("ignoring random index pack: %v", err)
		return res
	}
	res.RIP = rip
	res.Partitions, err = partition.ReadPartitions(src, rip, nil)
	if err != nil {
		log.Verbose("listing partitions: %v", err)
	}
	return res
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// parseFiles parses paths concurrently, at most opts.workers at a time,
// and returns the results in the order of paths.
func parseFiles(ctx context.Context, paths []string, opts parseOptions) ([]fileResult, error) {
	results := make([]fileResult, len(paths))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(opts.workers)
	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = parseFile(path, opts)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// newParseOptions builds the per-run options from the resolved
// configuration.
func newParseOptions(cfg *config.Config) (parseOptions, error) {
	log, err := logging.NewZapLogger(cfg.Logging.Verbose, cfg.Logging.Format)
	if err != nil {
		return parseOptions{}, err
	}
	return parseOptions{
		strict:  cfg.Parse.Strict,
		maxSets: cfg.Parse.MaxSets,
		workers: cfg.Workers,
		logger:  log,
	}, nil
}
