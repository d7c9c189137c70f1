package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/voicekeep/voicekeep/internal/common"
)

func TestWriteScratch_ThenReadBack(t *testing.T) {
	s, _ := newTestStore(t)

	data := []byte("pre-save audio")
	path, err := s.WriteScratch(data)
	require.NoError(t, err)
	require.Equal(t, filepath.Clean(s.scratchDir), filepath.Dir(path))
	require.Equal(t, ".wav", filepath.Ext(path))

	got, err := s.ReadScratch(path)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestWriteScratch_NamesDoNotCollide(t *testing.T) {
	s, _ := newTestStore(t)

	p1, err := s.WriteScratch([]byte("a"))
	require.NoError(t, err)
	p2, err := s.WriteScratch([]byte("b"))
	require.NoError(t, err)
	require.NotEqual(t, p1, p2)
}

func TestReadScratch_RejectsPathsOutsideScratchDir(t *testing.T) {
	s, _ := newTestStore(t)

	outside := filepath.Join(t.TempDir(), "evil.wav")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o660))

	_, err := s.ReadScratch(outside)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestReadScratch_MissingFile(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.WriteScratch([]byte("x")) // ensures the dir exists
	require.NoError(t, err)

	_, err = s.ReadScratch(filepath.Join(s.scratchDir, "nope.wav"))
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCleanupScratch_ZeroMaxAgeRemovesEverything(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	p1, err := s.WriteScratch([]byte("a"))
	require.NoError(t, err)
	p2, err := s.WriteScratch([]byte("b"))
	require.NoError(t, err)

	// push mtimes firmly into the past so age > 0 for both
	old := time.Now().Add(-time.Minute)
	require.NoError(t, os.Chtimes(p1, old, old))
	require.NoError(t, os.Chtimes(p2, old, old))

	s.CleanupScratch(ctx, 0)

	entries, err := os.ReadDir(s.scratchDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestCleanupScratch_KeepsFreshFiles(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.WriteScratch([]byte("fresh"))
	require.NoError(t, err)

	s.CleanupScratch(ctx, time.Hour)

	entries, err := os.ReadDir(s.scratchDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestCleanupScratch_MissingDirIsSilent(t *testing.T) {
	s, _ := newTestStore(t)
	// scratch dir was never created; the sweep must not panic or error
	s.CleanupScratch(context.Background(), time.Hour)
}

func TestCleanupScratch_RemovesOnlyStaleFiles(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	stale, err := s.WriteScratch([]byte("stale"))
	require.NoError(t, err)
	fresh, err := s.WriteScratch([]byte("fresh"))
	require.NoError(t, err)

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	s.CleanupScratch(ctx, time.Hour)

	_, err = os.Stat(stale)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	require.NoError(t, err)
}
