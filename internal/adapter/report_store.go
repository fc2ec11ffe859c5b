// Package adapter contains the infrastructure adapters used by the reconciliation workflow.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	m "retest.dev/pkg/retest/internal/model"
)

const defaultReportMode os.FileMode = 0o644

// ReportStore is the path-addressed byte store holding JUnit reports. It hides direct
// filesystem access so the domain can be tested without touching the disk.
type ReportStore interface {
	// ReadReport loads the report at path.
	ReadReport(ctx context.Context, path m.Path) ([]byte, error)

	// WriteReport replaces the report at path with data. Implementations must not leave
	// a partially written report behind.
	WriteReport(ctx context.Context, path m.Path, data []byte) error

	// SamePath reports whether a and b address the same report.
	SamePath(a, b m.Path) bool
}

// FSReportStore implements ReportStore on top of an afero filesystem.
type FSReportStore struct {
	fs afero.Fs
}

// NewReportStore creates a ReportStore backed by the OS filesystem.
func NewReportStore() *FSReportStore {
	return NewFSReportStore(afero.NewOsFs())
}

// NewFSReportStore creates a ReportStore backed by fs.
func NewFSReportStore(fs afero.Fs) *FSReportStore {
	return &FSReportStore{fs: fs}
}

// ReadReport loads the report at path.
func (s *FSReportStore) ReadReport(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return afero.ReadFile(s.fs, string(path))
}

// WriteReport writes data to a temporary file next to path and renames it over path,
// keeping the permissions of an existing report.
func (s *FSReportStore) WriteReport(ctx context.Context, path m.Path, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := string(path)
	dir := filepath.Dir(target)

	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	mode := defaultReportMode
	if info, err := s.fs.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return err
	}

	if err := s.fs.Chmod(tmpName, mode); err != nil {
		_ = s.fs.Remove(tmpName)
		return err
	}

	if err := s.fs.Rename(tmpName, target); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", target, err)
	}

	return nil
}

// SamePath compares the absolute, cleaned forms of a and b.
func (s *FSReportStore) SamePath(a, b m.Path) bool {
	return absPath(a) == absPath(b)
}

func absPath(path m.Path) string {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return filepath.Clean(string(path))
	}

	return abs
}
