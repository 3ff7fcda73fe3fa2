package scaffold

import "fmt"

// FilesystemError reports a failed directory creation or file write.
// Err is the underlying *fs.PathError, so errors.Is works against
// fs.ErrPermission and friends.
type FilesystemError struct {
	Op   string // "mkdir" or "write"
	Path string // the target path or directory as given
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
