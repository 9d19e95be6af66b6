package manifest

import (
	"errors"
	"fmt"
)

// ErrRootNotDir is returned by Discover when the reports root is missing or is not a directory.
var ErrRootNotDir = errors.New("reports root is not a directory")

// ErrNoSummary marks a subdirectory that carries no summary.txt.
var ErrNoSummary = errors.New("summary.txt not found")

// EntryError describes a problem with a single report subdirectory.
type EntryError struct {
	Entry string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Entry, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
