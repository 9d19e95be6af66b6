package report

import (
	"strings"

	"github.com/distribution/reference"
	"github.com/fvbommel/sortorder"
	"github.com/project-copacetic/report-table/pkg/types"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Row is one typed table row. Rows are sorted before they are rendered.
type Row struct {
	Plugin        string
	Image         string
	Version       string
	Passed        bool
	Link          string
	HasReport     bool
	UploadEnabled bool
}

// NewRows builds one row per entry. An entry without index.html keeps its
// row with an empty report cell.
func NewRows(opts *types.Options, entries types.Entries) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		s := e.Summary
		if !e.HasReport {
			log.WithField("entry", e.Name).Warnf("index.html not found in %s", e.Name)
		}
		checkImageTag(e.Name, s)

		rows = append(rows, Row{
			Plugin:        s.PluginName,
			Image:         s.Image,
			Version:       s.Version,
			Passed:        s.Passed(),
			Link:          Link(opts, s),
			HasReport:     e.HasReport,
			UploadEnabled: s.UploadEnabled(),
		})
	}
	return rows
}

// checkImageTag warns when image and version do not form a valid image
// reference, which usually means summary.txt was written with the wrong keys.
func checkImageTag(entry string, s types.Summary) {
	if s.Image == "" || s.Version == "" {
		log.WithField("entry", entry).Warn("summary is missing the image name or version")
		return
	}
	if _, err := reference.ParseNormalizedNamed(s.Image + ":" + s.Version); err != nil {
		log.WithField("entry", entry).WithError(err).Warnf("%s:%s is not a valid image reference", s.Image, s.Version)
	}
}

// CompareVersions orders version strings with embedded digit runs compared
// numerically, so 9.0.0 sorts before 10.0.0.
func CompareVersions(a, b string) int {
	switch {
	case sortorder.NaturalLess(a, b):
		return -1
	case sortorder.NaturalLess(b, a):
		return 1
	}
	return 0
}

// SortRows orders rows by version in the given direction. Rows with equal
// versions are kept in plugin then image order regardless of direction.
func SortRows(rows []Row, order types.SortOrder) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		c := CompareVersions(a.Version, b.Version)
		if order == types.SortDescending {
			c = -c
		}
		if c != 0 {
			return c
		}
		if c = strings.Compare(a.Plugin, b.Plugin); c != 0 {
			return c
		}
		return strings.Compare(a.Image, b.Image)
	})
}
