package scaffold

// FileWriter abstracts the filesystem operations the Scaffolder and the
// check command need.
type FileWriter interface {
	// MkdirAll creates a directory path and all necessary parents.
	// An existing directory is not an error.
	MkdirAll(path string) error

	// WriteFile creates or truncates the file at path and writes data to it.
	// The file handle is released before WriteFile returns.
	WriteFile(path string, data []byte) error

	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// Exists reports whether the given path exists.
	Exists(path string) bool
}
