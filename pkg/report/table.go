package report

import (
	"context"
	"strings"

	"github.com/project-copacetic/report-table/pkg/manifest"
	"github.com/project-copacetic/report-table/pkg/probe"
	"github.com/project-copacetic/report-table/pkg/types"
	log "github.com/sirupsen/logrus"
)

// DefaultTitle heads the table when no title is configured.
const DefaultTitle = "### Playwright test results"

const (
	headerWithPlugin = "| Plugin Name | Image Name | Version | Result | Report |\n" +
		"|:----------- |:---------- |:------- |:------: |:------: |"
	headerNoPlugin = "| Image Name | Version | Result | Report |\n" +
		"|:---------- |:------- |:------: |:------: |"

	resultPassed = "✅"
	resultFailed = "❌"
	emptyCell    = " "
)

// Table is a fully assembled report table with its advisory notes.
type Table struct {
	Title      string
	WithPlugin bool
	Rows       []Row
	Notes      []string
}

// Build turns the discovered entries into a table: rows are sorted as typed
// records, the last published report is probed, and the advisory notes are
// chosen. A nil prober skips the liveness probe.
func Build(ctx context.Context, opts *types.Options, entries types.Entries, prober probe.Prober) *Table {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	rows := NewRows(opts, entries)
	SortRows(rows, opts.SortOrder)

	t := &Table{
		Title:      title,
		WithPlugin: manifest.UsesPluginName(entries),
		Rows:       rows,
	}

	flags := Flags{}
	for _, r := range rows {
		if !r.UploadEnabled {
			flags.UploadDisabled = true
		}
		if !r.Passed {
			flags.AnyFailed = true
		}
	}

	if target, ok := probeTarget(rows); ok && prober != nil {
		flags.Probed = true
		flags.PagesReachable = prober.Reachable(ctx, target)
	} else {
		log.Debug("Skipping report pages probe")
	}

	t.Notes = Notes(flags)
	return t
}

// probeTarget returns the link of the last row whose report was generated
// and uploaded. Runs that skipped the upload were never published.
func probeTarget(rows []Row) (string, bool) {
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].HasReport && rows[i].UploadEnabled {
			return rows[i].Link, true
		}
	}
	return "", false
}

// String renders the table as Markdown.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString(t.Title)
	b.WriteString("\n")
	if t.WithPlugin {
		b.WriteString(headerWithPlugin)
	} else {
		b.WriteString(headerNoPlugin)
	}
	for _, r := range t.Rows {
		b.WriteString("\n")
		b.WriteString(t.renderRow(r))
	}
	for _, n := range t.Notes {
		b.WriteString("\n\n")
		b.WriteString(n)
	}
	return b.String()
}

func (t *Table) renderRow(r Row) string {
	result := resultFailed
	if r.Passed {
		result = resultPassed
	}
	reportCell := emptyCell
	if r.HasReport {
		reportCell = escapeCell("[View report](" + r.Link + ")")
	}

	cells := []string{escapeCell(r.Image), escapeCell(r.Version), result, reportCell}
	if t.WithPlugin {
		cells = append([]string{escapeCell(r.Plugin)}, cells...)
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
