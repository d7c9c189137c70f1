// Package assets persists per-user audio assets: raw bytes under the
// user's exclusive directory, metadata records inside the shared user
// document. It also manages the shared scratch area for pre-save audio.
package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/voicekeep/voicekeep/internal/common"
	"github.com/voicekeep/voicekeep/internal/config"
	"github.com/voicekeep/voicekeep/internal/document"
	"github.com/voicekeep/voicekeep/internal/filex"
	"github.com/voicekeep/voicekeep/internal/logging"
	"github.com/voicekeep/voicekeep/internal/models"
)

const bytesPerMB = 1 << 20

// StorageInfo summarizes one user's asset storage. FileCount covers every
// record; TotalSizeMB only those whose backing file still exists.
type StorageInfo struct {
	FileCount   int
	TotalSizeMB float64
}

type Store struct {
	docs       *document.Store
	rootDir    string
	scratchDir string
	ext        string
	log        logging.Logger
}

func NewStore(docs *document.Store, cfg *config.Config, log logging.Logger) *Store {
	return &Store{
		docs:       docs,
		rootDir:    cfg.AudioRootDir,
		scratchDir: cfg.ScratchDir,
		ext:        cfg.AudioFileExt,
		log:        log,
	}
}

// UserDir returns the user's exclusive audio directory.
func (s *Store) UserDir(username string) string {
	return filepath.Join(s.rootDir, username)
}

// EnsureUserDir creates the user's audio directory if missing.
func (s *Store) EnsureUserDir(username string) (string, error) {
	return filex.EnsureDir(s.UserDir(username))
}

// SanitizeFilename keeps letters, digits, spaces, hyphens and underscores
// from raw and trims trailing whitespace. An input with nothing left yields
// a generated audio_<timestamp> name with second precision.
func SanitizeFilename(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r == ' ' || r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimRightFunc(b.String(), unicode.IsSpace)
	if safe == "" {
		safe = "audio_" + time.Now().Format("20060102150405")
	}
	return safe
}

// uniqueName suffixes base with " (1)", " (2)", ... until it no longer
// collides with a filename already in files.
func uniqueName(base string, files []models.AssetRecord) string {
	taken := make(map[string]struct{}, len(files))
	for _, f := range files {
		taken[f.Filename] = struct{}{}
	}

	name := base
	for i := 1; ; i++ {
		if _, ok := taken[name]; !ok {
			return name
		}
		name = fmt.Sprintf("%s (%d)", base, i)
	}
}

// Save writes data under the user's directory and appends the metadata
// record to the user's asset list in one document update. The stored
// filename is the sanitized rawName, suffixed when the user already owns an
// asset with that name.
func (s *Store) Save(ctx context.Context, username string, data []byte, rawName, sourceText string) error {
	dir, err := s.EnsureUserDir(username)
	if err != nil {
		return fmt.Errorf("%w: ensure user dir: %v", common.ErrStorageIO, err)
	}

	return s.docs.Update(ctx, func(doc document.Document) error {
		user, ok := doc[username]
		if !ok {
			return fmt.Errorf("user %q: %w", username, common.ErrNotFound)
		}

		name := uniqueName(SanitizeFilename(rawName), user.AudioFiles)
		path := filepath.Join(dir, name+"."+s.ext)

		if err := os.WriteFile(path, data, 0o660); err != nil {
			return fmt.Errorf("%w: write %s: %v", common.ErrStorageIO, path, err)
		}

		user.AudioFiles = append(user.AudioFiles, models.AssetRecord{
			Filename:      name,
			FilePath:      path,
			SourceText:    sourceText,
			CreatedAt:     time.Now(),
			FileSizeBytes: int64(len(data)),
		})
		return nil
	})
}

// List returns the user's assets, newest first. Unknown users and users
// without assets both yield an empty slice.
func (s *Store) List(ctx context.Context, username string) []models.AssetRecord {
	user, ok := s.docs.Load(ctx)[username]
	if !ok || len(user.AudioFiles) == 0 {
		return []models.AssetRecord{}
	}

	out := make([]models.AssetRecord, len(user.AudioFiles))
	copy(out, user.AudioFiles)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Get returns the first asset named filename owned by username.
func (s *Store) Get(ctx context.Context, username, filename string) (*models.AssetRecord, error) {
	user, ok := s.docs.Load(ctx)[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}
	for i := range user.AudioFiles {
		if user.AudioFiles[i].Filename == filename {
			rec := user.AudioFiles[i]
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("asset %q: %w", filename, common.ErrNotFound)
}

// Delete removes the first asset named filename from the user's list along
// with its backing file. A backing file that is already gone is not an
// error; the record is removed regardless.
func (s *Store) Delete(ctx context.Context, username, filename string) error {
	return s.docs.Update(ctx, func(doc document.Document) error {
		user, ok := doc[username]
		if !ok {
			return fmt.Errorf("user %q: %w", username, common.ErrNotFound)
		}

		for i, f := range user.AudioFiles {
			if f.Filename != filename {
				continue
			}
			if err := os.Remove(f.FilePath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("%w: remove %s: %v", common.ErrStorageIO, f.FilePath, err)
			}
			user.AudioFiles = append(user.AudioFiles[:i], user.AudioFiles[i+1:]...)
			return nil
		}
		return fmt.Errorf("asset %q: %w", filename, common.ErrNotFound)
	})
}

// StorageInfo counts the user's asset records and sums the recorded sizes
// of those whose backing file still exists. Records with a missing file
// stay in FileCount but contribute nothing to TotalSizeMB.
func (s *Store) StorageInfo(ctx context.Context, username string) StorageInfo {
	info := StorageInfo{}

	user, ok := s.docs.Load(ctx)[username]
	if !ok {
		return info
	}

	info.FileCount = len(user.AudioFiles)

	var total int64
	for _, f := range user.AudioFiles {
		if _, err := os.Stat(f.FilePath); err == nil {
			total += f.FileSizeBytes
		}
	}
	info.TotalSizeMB = float64(total) / bytesPerMB
	return info
}
