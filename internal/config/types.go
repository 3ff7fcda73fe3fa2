package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// PlaceholderPrefix is the fixed text written before the path in every
// scaffolded file.
const PlaceholderPrefix = "// This is the initial content for "

// TargetPath is a relative filesystem path naming a file to scaffold.
// It may contain nested directory segments.
type TargetPath string

// ErrEmptyPath is returned by Validate for the empty string.
var ErrEmptyPath = errors.New("target path must not be empty")

// Validate checks the only invariant a TargetPath carries: it is non-empty.
// Anything else is left for the filesystem to reject.
func (p TargetPath) Validate() error {
	if p == "" {
		return ErrEmptyPath
	}
	return nil
}

// ParentDir returns the directory that must exist before the file can be
// written. A bare filename has no parent segment and yields "".
func (p TargetPath) ParentDir() string {
	dir := filepath.Dir(string(p))
	if dir == "." {
		return ""
	}
	return dir
}

// PlaceholderContent returns the single line written into the file. The path
// is embedded exactly as given, without cleaning or resolving it.
func (p TargetPath) PlaceholderContent() []byte {
	return []byte(fmt.Sprintf("%s%s\n", PlaceholderPrefix, string(p)))
}

// String implements fmt.Stringer.
func (p TargetPath) String() string {
	return string(p)
}
