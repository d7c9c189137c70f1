package document

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/voicekeep/voicekeep/internal/logging"
	"github.com/voicekeep/voicekeep/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewStore(filepath.Join(t.TempDir(), "users.json"), log)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)

	doc := s.Load(context.Background())
	require.NotNil(t, doc)
	require.Empty(t, doc)
}

func TestLoad_CorruptFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0o660))

	doc := s.Load(context.Background())
	require.Empty(t, doc)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := Document{
		"alice": {
			Email:        "alice@example.com",
			PasswordHash: "deadbeef",
			CreatedAt:    time.Now().UTC(),
			AudioFiles:   []models.AssetRecord{},
		},
	}
	require.NoError(t, s.Save(ctx, doc))

	got := s.Load(ctx)
	require.Len(t, got, 1)
	require.Equal(t, "alice@example.com", got["alice"].Email)
	require.Equal(t, "deadbeef", got["alice"].PasswordHash)
	require.NotNil(t, got["alice"].AudioFiles)
}

func TestSave_WritesIndentedJSON(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Document{"bob": {Email: "b@example.com"}}))

	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  \"bob\"", "document must stay human-diffable")
	require.True(t, json.Valid(data))
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(context.Background(), Document{}))

	entries, err := os.ReadDir(filepath.Dir(s.path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, filepath.Base(s.path), entries[0].Name())
}

func TestUpdate_AppliesMutation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.Update(ctx, func(doc Document) error {
		doc["carol"] = &models.UserRecord{Email: "c@example.com"}
		return nil
	})
	require.NoError(t, err)

	got := s.Load(ctx)
	require.Contains(t, got, "carol")
}

func TestUpdate_ErrorAbortsWithoutWriting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, Document{"dave": {Email: "d@example.com"}}))

	boom := errors.New("boom")
	err := s.Update(ctx, func(doc Document) error {
		doc["mallory"] = &models.UserRecord{}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got := s.Load(ctx)
	require.NotContains(t, got, "mallory")
	require.Contains(t, got, "dave")
}
