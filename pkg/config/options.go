package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/project-copacetic/report-table/pkg/probe"
	"github.com/project-copacetic/report-table/pkg/report"
	"github.com/project-copacetic/report-table/pkg/sink"
	"github.com/project-copacetic/report-table/pkg/types"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyRoot         = "root"
	keyOwner        = "owner"
	keyRepo         = "repo"
	keyTimestamp    = "timestamp"
	keyInitiator    = "initiator"
	keyPagesBaseURL = "pages-base-url"
	keyTitle        = "title"
	keyOutput       = "output"
	keyEnvFile      = "env-file"
	keyEnvVar       = "env-var"
	keySort         = "sort"
	keyProbeTimeout = "probe-timeout"
	keySkipProbe    = "skip-probe"
)

// Bare numbers parse as nanoseconds; anything below this is a missing unit.
const minProbeTimeout = time.Millisecond

// DefaultRootDir is the directory the report artifacts are downloaded into.
const DefaultRootDir = "all-reports"

// Environment variables consulted for each option, in order, when the flag
// was not set on the command line.
var envBindings = map[string][]string{
	keyRoot:         {"REPORTS_DIR"},
	keyOwner:        {"GITHUB_REPOSITORY_OWNER"},
	keyRepo:         {"GITHUB_REPOSITORY_NAME"},
	keyTimestamp:    {"TIMESTAMP"},
	keyInitiator:    {"GITHUB_EVENT_NUMBER", "GITHUB_RUN_ID"},
	keyPagesBaseURL: {"PAGES_BASE_URL"},
	keyTitle:        {"TABLE_TITLE"},
	keyOutput:       {"TABLE_OUTPUT"},
	keyEnvFile:      {"GITHUB_ENV"},
	keyEnvVar:       {"TABLE_ENV_VAR"},
	keySort:         {"TABLE_SORT"},
	keyProbeTimeout: {"PROBE_TIMEOUT"},
	keySkipProbe:    {"SKIP_PROBE"},
}

// AddFlags registers the build options on flags.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(keyRoot, DefaultRootDir, "Directory holding one subdirectory per test run")
	flags.String(keyOwner, "", "Repository owner used in report links")
	flags.String(keyRepo, "", "Repository name used in report links")
	flags.String(keyTimestamp, "", "Timestamp token of the published reports")
	flags.String(keyInitiator, "", "Pull request number or run ID of the published reports")
	flags.String(keyPagesBaseURL, "", "Base URL of the published reports (default https://<owner>.github.io/<repo>)")
	flags.String(keyTitle, report.DefaultTitle, "Line printed above the table")
	flags.String(keyOutput, string(types.OutputAuto), "Where to write the table: auto, env or stdout")
	flags.String(keyEnvFile, "", "Environment file the table is appended to")
	flags.String(keyEnvVar, sink.DefaultVar, "Environment variable name of the exported table")
	flags.String(keySort, string(types.SortAscending), "Version sort order: asc or desc")
	flags.Duration(keyProbeTimeout, probe.DefaultTimeout, "Timeout of the report pages liveness probe")
	flags.Bool(keySkipProbe, false, "Do not probe the published report pages")
}

// Load resolves the options from flags and the environment. A flag set on
// the command line wins over the environment, which wins over the default.
func Load(flags *pflag.FlagSet) (*types.Options, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("binding environment for %s: %w", key, err)
		}
	}

	opts := &types.Options{
		RootDir:      v.GetString(keyRoot),
		Owner:        v.GetString(keyOwner),
		Repo:         v.GetString(keyRepo),
		Timestamp:    v.GetString(keyTimestamp),
		Initiator:    v.GetString(keyInitiator),
		PagesBaseURL: v.GetString(keyPagesBaseURL),
		Title:        v.GetString(keyTitle),
		Output:       types.OutputMode(strings.ToLower(v.GetString(keyOutput))),
		EnvFile:      v.GetString(keyEnvFile),
		EnvVar:       v.GetString(keyEnvVar),
		SortOrder:    types.SortOrder(strings.ToLower(v.GetString(keySort))),
		ProbeTimeout: v.GetDuration(keyProbeTimeout),
		SkipProbe:    v.GetBool(keySkipProbe),
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate rejects options that cannot produce a table. Missing link parts
// are only logged: the links are still built, just from empty segments.
func Validate(opts *types.Options) error {
	switch opts.SortOrder {
	case types.SortAscending, types.SortDescending:
	default:
		return fmt.Errorf("invalid sort order %q: must be asc or desc", opts.SortOrder)
	}

	switch opts.Output {
	case types.OutputAuto, types.OutputEnv, types.OutputStdout:
	default:
		return fmt.Errorf("invalid output %q: must be auto, env or stdout", opts.Output)
	}

	if opts.ProbeTimeout < minProbeTimeout {
		return fmt.Errorf("invalid probe timeout %s: must be at least %s (missing unit?)", opts.ProbeTimeout, minProbeTimeout)
	}

	if !sink.ValidVarName(opts.EnvVar) {
		return fmt.Errorf("invalid environment variable name %q", opts.EnvVar)
	}

	linkParts := []struct{ name, value string }{
		{keyTimestamp, opts.Timestamp},
		{keyInitiator, opts.Initiator},
	}
	if opts.PagesBaseURL == "" {
		linkParts = append([]struct{ name, value string }{
			{keyOwner, opts.Owner},
			{keyRepo, opts.Repo},
		}, linkParts...)
	}
	for _, p := range linkParts {
		if p.value == "" {
			log.Warnf("%s is not set, report links will be incomplete", p.name)
		}
	}
	return nil
}
