package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/project-copacetic/report-table/pkg/types"
	"github.com/project-copacetic/report-table/pkg/utils"
	log "github.com/sirupsen/logrus"
)

const (
	SummaryFile = "summary.txt"
	ReportFile  = "index.html"
)

const (
	keyImage        = "GRAFANA_IMAGE"
	keyVersion      = "GRAFANA_VERSION"
	keyOutput       = "OUTPUT"
	keyPluginName   = "PLUGIN_NAME"
	keyUploadReport = "UPLOAD_REPORT_ENABLED"
)

// Line-anchored KEY=value matchers, one per key read from summary.txt.
var keyRegexes = map[string]*regexp.Regexp{}

func init() {
	for _, key := range []string{keyImage, keyVersion, keyOutput, keyPluginName, keyUploadReport} {
		keyRegexes[key] = regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `=(.*)$`)
	}
}

// For testing.
var readFile = os.ReadFile

// Result holds the entries found under the reports root together with the
// per-entry problems that were skipped over.
type Result struct {
	Entries  types.Entries
	Warnings *multierror.Error
}

// Discover scans the immediate subdirectories of root and parses the
// summary.txt found in each one. Only a missing or non-directory root is an
// error; subdirectories without a readable summary are skipped and recorded
// in Result.Warnings.
func Discover(root string) (*Result, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: reports directory not specified", ErrRootNotDir)
	}

	// Check if directory exists
	isDir, err := utils.IsDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: accessing %s: %w", ErrRootNotDir, root, err)
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading reports directory: %w", err)
	}

	res := &Result{}
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}

		dir := filepath.Join(root, de.Name())
		summaryPath := filepath.Join(dir, SummaryFile)
		if !utils.FileExists(summaryPath) {
			log.WithField("entry", de.Name()).Warnf("%s not found in %s", SummaryFile, de.Name())
			res.Warnings = multierror.Append(res.Warnings, &EntryError{Entry: de.Name(), Err: ErrNoSummary})
			continue
		}

		data, err := readFile(summaryPath)
		if err != nil {
			log.WithField("entry", de.Name()).WithError(err).Warnf("failed to read %s", SummaryFile)
			res.Warnings = multierror.Append(res.Warnings, &EntryError{Entry: de.Name(), Err: err})
			continue
		}

		res.Entries = append(res.Entries, types.Entry{
			Name:      de.Name(),
			Dir:       dir,
			Summary:   ParseSummary(string(data)),
			HasReport: utils.FileExists(filepath.Join(dir, ReportFile)),
		})
	}

	log.Debugf("Discovered %d report entries in %s", len(res.Entries), root)
	return res, nil
}

// ParseSummary extracts the known keys from summary.txt content. A key that
// is absent yields an empty value; when a key repeats, the first line wins.
func ParseSummary(content string) types.Summary {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return types.Summary{
		Image:        getValue(content, keyImage),
		Version:      getValue(content, keyVersion),
		Output:       getValue(content, keyOutput),
		PluginName:   getValue(content, keyPluginName),
		UploadReport: getValue(content, keyUploadReport),
	}
}

func getValue(content, key string) string {
	matches := keyRegexes[key].FindStringSubmatch(content)
	if len(matches) < 2 {
		return ""
	}
	return strings.TrimSpace(matches[1])
}

// UsesPluginName reports whether any entry declares a plugin name, which
// switches the whole table to the five-column layout.
func UsesPluginName(entries types.Entries) bool {
	for _, e := range entries {
		if e.Summary.PluginName != "" {
			return true
		}
	}
	return false
}
