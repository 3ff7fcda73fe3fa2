package scaffold

import (
	"github.com/cbout22/scaffold/internal/config"
)

// Scaffolder writes a placeholder file for each target path, creating
// parent directories as needed.
type Scaffolder struct {
	fw       FileWriter
	progress func(config.TargetPath)
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithProgress registers fn to be called after each file is written.
func WithProgress(fn func(config.TargetPath)) Option {
	return func(s *Scaffolder) {
		s.progress = fn
	}
}

// New creates a Scaffolder backed by fw.
func New(fw FileWriter, opts ...Option) *Scaffolder {
	s := &Scaffolder{fw: fw}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes paths strictly in order. Existing files are truncated and
// rewritten. The first failure aborts the run and is returned as a
// *FilesystemError; files written before it are left in place.
func (s *Scaffolder) Run(paths []config.TargetPath) error {
	for _, p := range paths {
		if err := s.scaffoldFile(p); err != nil {
			return err
		}
		if s.progress != nil {
			s.progress(p)
		}
	}
	return nil
}

func (s *Scaffolder) scaffoldFile(p config.TargetPath) error {
	if dir := p.ParentDir(); dir != "" {
		if err := s.fw.MkdirAll(dir); err != nil {
			return &FilesystemError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	if err := s.fw.WriteFile(string(p), p.PlaceholderContent()); err != nil {
		return &FilesystemError{Op: "write", Path: string(p), Err: err}
	}
	return nil
}
