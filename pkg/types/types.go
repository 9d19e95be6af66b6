package types

import (
	"strings"
	"time"
)

// Summary holds the key/value pairs read from one run's summary.txt.
type Summary struct {
	Image        string `json:"image"`
	Version      string `json:"version"`
	Output       string `json:"output"`
	PluginName   string `json:"pluginName"`
	UploadReport string `json:"uploadReport"`
}

// Passed reports whether the run finished with OUTPUT=success.
func (s Summary) Passed() bool {
	return s.Output == "success"
}

// UploadEnabled reports whether the run published its report.
// An empty flag counts as enabled.
func (s Summary) UploadEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(s.UploadReport)) {
	case "false", "0", "no", "off":
		return false
	}
	return true
}

// Entry represents one scanned subdirectory of the reports root.
type Entry struct {
	Name      string
	Dir       string
	Summary   Summary
	HasReport bool // index.html present in Dir
}

type Entries []Entry

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

type OutputMode string

const (
	OutputAuto   OutputMode = "auto"
	OutputEnv    OutputMode = "env"
	OutputStdout OutputMode = "stdout"
)

// Options represents the resolved configuration for one build.
type Options struct {
	RootDir      string
	Owner        string
	Repo         string
	Timestamp    string
	Initiator    string
	PagesBaseURL string
	Title        string
	Output       OutputMode
	EnvFile      string
	EnvVar       string
	SortOrder    SortOrder
	ProbeTimeout time.Duration
	SkipProbe    bool
}
