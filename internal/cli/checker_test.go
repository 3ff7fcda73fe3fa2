package cli

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/cbout22/scaffold/internal/config"
)

// testFileWriter is a minimal in-memory FileWriter for checker tests.
type testFileWriter struct {
	files      map[string][]byte // paths that "exist" and their content
	unreadable map[string]bool
}

func newTestFileWriter() *testFileWriter {
	return &testFileWriter{files: make(map[string][]byte), unreadable: make(map[string]bool)}
}

func (f *testFileWriter) MkdirAll(path string) error { return nil }
func (f *testFileWriter) WriteFile(path string, data []byte) error {
	f.files[path] = data
	return nil
}
func (f *testFileWriter) ReadFile(path string) ([]byte, error) {
	if f.unreadable[path] {
		return nil, fs.ErrPermission
	}
	data, ok := f.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}
func (f *testFileWriter) Exists(path string) bool {
	_, ok := f.files[path]
	return ok || f.unreadable[path]
}

func TestCheckTargets_AllOK(t *testing.T) {
	t.Parallel()
	paths := []config.TargetPath{"src/a.jsx", "b.jsx"}
	fw := newTestFileWriter()
	for _, p := range paths {
		fw.files[string(p)] = p.PlaceholderContent()
	}

	results := CheckTargets(paths, fw)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Status != CheckOK {
			t.Errorf("%s: status = %d, want CheckOK", r.Path, r.Status)
		}
	}
}

func TestCheckTargets_Statuses(t *testing.T) {
	t.Parallel()
	fw := newTestFileWriter()
	fw.files["ok.jsx"] = config.TargetPath("ok.jsx").PlaceholderContent()
	fw.files["edited.jsx"] = []byte("export default function Edited() {}\n")
	fw.unreadable["locked.jsx"] = true

	paths := []config.TargetPath{"ok.jsx", "gone.jsx", "edited.jsx", "locked.jsx"}
	want := []CheckStatus{CheckOK, CheckMissing, CheckModified, CheckUnreadable}

	results := CheckTargets(paths, fw)
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("results[%d].Path = %q, want %q (order must be preserved)", i, r.Path, paths[i])
		}
		if r.Status != want[i] {
			t.Errorf("%s: status = %d, want %d", r.Path, r.Status, want[i])
		}
	}
	if !errors.Is(results[3].Err, fs.ErrPermission) {
		t.Errorf("unreadable result Err = %v, want fs.ErrPermission", results[3].Err)
	}
}

func TestCheckTargets_Empty(t *testing.T) {
	t.Parallel()
	results := CheckTargets(nil, newTestFileWriter())
	if len(results) != 0 {
		t.Errorf("got %d results for empty input, want 0", len(results))
	}
}
