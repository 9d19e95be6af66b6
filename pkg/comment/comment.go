package comment

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/project-copacetic/report-table/pkg/manifest"
	"github.com/project-copacetic/report-table/pkg/probe"
	"github.com/project-copacetic/report-table/pkg/report"
	"github.com/project-copacetic/report-table/pkg/sink"
	"github.com/project-copacetic/report-table/pkg/types"
	log "github.com/sirupsen/logrus"
)

// For testing.
var (
	newProber = func(timeout time.Duration) probe.Prober {
		return probe.NewHTTPProber(timeout)
	}
	newSink = sink.New
)

// Build scans opts.RootDir, renders the table and writes it to the
// configured sink in a single write. Per-entry problems are logged and
// skipped; a missing reports root fails the build before anything is written.
func Build(ctx context.Context, opts *types.Options) error {
	out, err := newSink(opts)
	if err != nil {
		return errors.Wrap(err, "failed to configure output")
	}

	res, err := manifest.Discover(opts.RootDir)
	if err != nil {
		return errors.Wrapf(err, "failed to enter directory %s", opts.RootDir)
	}
	if res.Warnings != nil {
		log.Warnf("Skipped %d report directories: %v", len(res.Warnings.Errors), res.Warnings.Errors)
	}

	var prober probe.Prober
	if !opts.SkipProbe {
		prober = newProber(opts.ProbeTimeout)
	}

	table := report.Build(ctx, opts, res.Entries, prober)
	log.Infof("Built results table with %d rows and %d notes", len(table.Rows), len(table.Notes))

	return out.Write(table.String())
}
