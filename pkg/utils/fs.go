package utils

import (
	"errors"
	"io/fs"
	"os"
)

// For testing.
var statFn = os.Stat

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := statFn(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir reports whether path names an existing directory. Errors other than
// fs.ErrNotExist are returned so callers can tell a missing path apart from
// one that could not be inspected.
func IsDir(path string) (bool, error) {
	info, err := statFn(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
