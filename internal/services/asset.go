package services

import (
	"context"
	"os"

	"github.com/voicekeep/voicekeep/internal/logging"
	"github.com/voicekeep/voicekeep/internal/models"
	"github.com/voicekeep/voicekeep/internal/repositories/assets"
	"github.com/voicekeep/voicekeep/internal/tts"
)

// AssetService is a username-scoped handle over the asset store: construct
// one for an authenticated user and every call operates on that user's
// assets only.
type AssetService struct {
	store    *assets.Store
	username string
	log      logging.Logger
}

func NewAssetService(store *assets.Store, username string, log logging.Logger) *AssetService {
	return &AssetService{
		store:    store,
		username: username,
		log:      log.With("username", username),
	}
}

// Convert renders text through the synthesis collaborator and stashes the
// result in the scratch area for preview. It returns the scratch path.
func (s *AssetService) Convert(ctx context.Context, synth tts.Synthesizer, text string, voice tts.Voice, rate int) (string, bool) {
	if text == "" {
		s.log.Warn(ctx, "convert declined: empty text")
		return "", false
	}
	if rate < tts.MinRate || rate > tts.MaxRate {
		s.log.Warn(ctx, "convert declined: rate out of range", "rate", rate)
		return "", false
	}

	data, err := synth.Synthesize(ctx, text, voice, rate)
	if err != nil {
		s.log.Warn(ctx, "synthesis produced no audio", "error", err)
		return "", false
	}

	path, err := s.store.WriteScratch(data)
	if err != nil {
		s.log.Error(ctx, "cannot stash converted audio", "error", err)
		return "", false
	}
	return path, true
}

// Save persists audio bytes as a named asset of this user.
func (s *AssetService) Save(ctx context.Context, data []byte, rawName, sourceText string) bool {
	if err := s.store.Save(ctx, s.username, data, rawName, sourceText); err != nil {
		s.log.Warn(ctx, "cannot save asset", "name", rawName, "error", err)
		return false
	}
	return true
}

// SaveFromScratch promotes a scratch file produced by Convert into a named
// asset of this user. The scratch file itself is left for the cleanup
// sweep.
func (s *AssetService) SaveFromScratch(ctx context.Context, scratchPath, rawName, sourceText string) bool {
	data, err := s.store.ReadScratch(scratchPath)
	if err != nil {
		s.log.Warn(ctx, "cannot read scratch audio", "path", scratchPath, "error", err)
		return false
	}
	return s.Save(ctx, data, rawName, sourceText)
}

// List returns this user's assets, newest first.
func (s *AssetService) List(ctx context.Context) []models.AssetRecord {
	return s.store.List(ctx, s.username)
}

// Read loads the audio bytes of a saved asset for playback or download.
func (s *AssetService) Read(ctx context.Context, filename string) ([]byte, bool) {
	rec, err := s.store.Get(ctx, s.username, filename)
	if err != nil {
		s.log.Warn(ctx, "cannot look up asset", "filename", filename, "error", err)
		return nil, false
	}

	data, err := os.ReadFile(rec.FilePath)
	if err != nil {
		s.log.Warn(ctx, "cannot read asset file", "path", rec.FilePath, "error", err)
		return nil, false
	}
	return data, true
}

// Delete removes a saved asset and its backing file.
func (s *AssetService) Delete(ctx context.Context, filename string) bool {
	if err := s.store.Delete(ctx, s.username, filename); err != nil {
		s.log.Warn(ctx, "cannot delete asset", "filename", filename, "error", err)
		return false
	}
	return true
}

// StorageInfo reports this user's asset count and on-disk size.
func (s *AssetService) StorageInfo(ctx context.Context) assets.StorageInfo {
	return s.store.StorageInfo(ctx, s.username)
}
