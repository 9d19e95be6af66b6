package sink

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/project-copacetic/report-table/pkg/types"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultVar is the environment variable the table is exported as.
	DefaultVar = "MARKDOWN_TABLE"

	defaultDelimiter = "EOF"
)

var envVarRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ErrNoEnvFile is returned when env output is requested without an env file.
var ErrNoEnvFile = errors.New("env output requested but no env file is set")

// For testing.
var newDelimiter = func() string {
	return defaultDelimiter + "_" + uuid.NewString()
}

// Sink receives the rendered table exactly once.
type Sink interface {
	Write(value string) error
}

// EnvFile appends NAME<<DELIM blocks to a CI environment file.
type EnvFile struct {
	Path string
	Var  string
}

// ValidVarName reports whether name can be used as an environment variable.
func ValidVarName(name string) bool {
	return envVarRegex.MatchString(name)
}

func (e *EnvFile) Write(value string) error {
	if !ValidVarName(e.Var) {
		return errors.Errorf("invalid environment variable name %q", e.Var)
	}

	f, err := os.OpenFile(e.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to open env file %s", e.Path)
	}
	defer f.Close()

	if _, err := io.WriteString(f, formatBlock(e.Var, value)); err != nil {
		return errors.Wrapf(err, "failed to write %s to env file", e.Var)
	}

	log.WithField("file", e.Path).Infof("Exported %s", e.Var)
	return nil
}

// formatBlock renders the multi-line env file form of name=value. The
// delimiter is replaced by a unique one if value contains it on its own line.
func formatBlock(name, value string) string {
	delim := defaultDelimiter
	for containsLine(value, delim) {
		delim = newDelimiter()
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delim, value, delim)
}

func containsLine(s, line string) bool {
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimRight(l, "\r") == line {
			return true
		}
	}
	return false
}

// Stdout writes the table to a writer, os.Stdout by default.
type Stdout struct {
	W io.Writer
}

func (s *Stdout) Write(value string) error {
	w := s.W
	if w == nil {
		w = os.Stdout
	}
	if _, err := fmt.Fprintln(w, value); err != nil {
		return errors.Wrap(err, "failed to write table")
	}
	return nil
}

// New picks the sink for opts. Auto mode uses the env file when one is set
// and standard output otherwise.
func New(opts *types.Options) (Sink, error) {
	switch opts.Output {
	case types.OutputEnv:
		if opts.EnvFile == "" {
			return nil, ErrNoEnvFile
		}
		return &EnvFile{Path: opts.EnvFile, Var: opts.EnvVar}, nil
	case types.OutputStdout:
		return &Stdout{}, nil
	case types.OutputAuto, "":
		if opts.EnvFile != "" {
			return &EnvFile{Path: opts.EnvFile, Var: opts.EnvVar}, nil
		}
		return &Stdout{}, nil
	default:
		return nil, errors.Errorf("unknown output mode %q", opts.Output)
	}
}
