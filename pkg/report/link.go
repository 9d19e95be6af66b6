package report

import (
	"fmt"
	"strings"

	"github.com/project-copacetic/report-table/pkg/types"
)

// PagesBaseURL returns the root under which reports are published. An
// explicit override wins over the GitHub Pages default for owner/repo.
func PagesBaseURL(opts *types.Options) string {
	if opts.PagesBaseURL != "" {
		return strings.TrimRight(opts.PagesBaseURL, "/")
	}
	return fmt.Sprintf("https://%s.github.io/%s", opts.Owner, opts.Repo)
}

// Slug names the published directory of one run:
// <plugin>-<image>-<version> when a plugin name is set, else <image>-<version>.
func Slug(s types.Summary) string {
	if s.PluginName != "" {
		return fmt.Sprintf("%s-%s-%s", s.PluginName, s.Image, s.Version)
	}
	return fmt.Sprintf("%s-%s", s.Image, s.Version)
}

// Link builds the deterministic report URL for one run.
func Link(opts *types.Options, s types.Summary) string {
	return fmt.Sprintf("%s/%s/%s/%s/", PagesBaseURL(opts), opts.Timestamp, opts.Initiator, Slug(s))
}
