package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/voicekeep/voicekeep/internal/common"
	"github.com/voicekeep/voicekeep/internal/filex"
)

// WriteScratch stores pre-save audio bytes in the shared scratch directory
// and returns the file path. Scratch files belong to no user and are reaped
// by CleanupScratch once stale.
func (s *Store) WriteScratch(data []byte) (string, error) {
	dir, err := filex.EnsureDir(s.scratchDir)
	if err != nil {
		return "", fmt.Errorf("%w: ensure scratch dir: %v", common.ErrStorageIO, err)
	}

	name := fmt.Sprintf("%s_%s.%s", time.Now().Format("20060102_150405"), uuid.New(), s.ext)
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", common.ErrStorageIO, path, err)
	}
	return path, nil
}

// ReadScratch loads pre-save bytes back from a path previously returned by
// WriteScratch. Paths outside the scratch directory are rejected.
func (s *Store) ReadScratch(path string) ([]byte, error) {
	if filepath.Dir(filepath.Clean(path)) != filepath.Clean(s.scratchDir) {
		return nil, fmt.Errorf("scratch path %q: %w", path, common.ErrValidation)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scratch %q: %w", path, common.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrStorageIO, path, err)
	}
	return data, nil
}

// CleanupScratch deletes scratch files whose last modification is older
// than maxAge. A delete failure on one file is logged and the sweep moves
// on; a failure to list the directory is logged and aborts the sweep.
func (s *Store) CleanupScratch(ctx context.Context, maxAge time.Duration) {
	entries, err := os.ReadDir(s.scratchDir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn(ctx, "cannot list scratch dir, sweep aborted", "dir", s.scratchDir, "error", err)
		}
		return
	}

	cutoff := time.Now().Add(-maxAge)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			s.log.Warn(ctx, "cannot stat scratch file", "name", e.Name(), "error", err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.scratchDir, e.Name())
		if err := os.Remove(path); err != nil {
			s.log.Warn(ctx, "cannot remove stale scratch file", "path", path, "error", err)
			continue
		}
		s.log.Debug(ctx, "removed stale scratch file", "path", path)
	}
}
