// Command cleanup removes stale pre-save audio from the shared scratch
// directory. It is meant to be run on demand or from cron, not as a daemon.
package main

import (
	"context"
	"time"

	"github.com/voicekeep/voicekeep/internal/config"
	"github.com/voicekeep/voicekeep/internal/document"
	"github.com/voicekeep/voicekeep/internal/logging"
	"github.com/voicekeep/voicekeep/internal/repositories/assets"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewDefault()
	ctx := context.Background()

	docs := document.NewStore(cfg.DocumentPath, logger)
	store := assets.NewStore(docs, cfg, logger)

	maxAge := time.Duration(cfg.ScratchMaxAgeSec) * time.Second
	logger.Info(ctx, "sweeping scratch dir", "dir", cfg.ScratchDir, "max_age", maxAge.String())
	store.CleanupScratch(ctx, maxAge)
}
