package scaffold

import (
	"os"
	"path/filepath"
)

// OSFileWriter implements FileWriter using the real filesystem. Relative
// paths are resolved against Root; an empty Root means the working directory.
type OSFileWriter struct {
	Root string
}

var _ FileWriter = (*OSFileWriter)(nil)

func (w *OSFileWriter) resolve(path string) string {
	if w.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.Root, path)
}

func (w *OSFileWriter) MkdirAll(path string) error {
	return os.MkdirAll(w.resolve(path), 0755)
}

func (w *OSFileWriter) WriteFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(w.resolve(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)
	return err
}

func (w *OSFileWriter) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(w.resolve(path))
}

func (w *OSFileWriter) Exists(path string) bool {
	_, err := os.Stat(w.resolve(path))
	return err == nil
}
