package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment. An optional .env
// file in the working directory is loaded first; a missing .env is fine.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.DocumentPath = getEnv("VOICEKEEP_DOCUMENT_PATH", cfg.DocumentPath)
	cfg.AudioRootDir = getEnv("VOICEKEEP_AUDIO_ROOT", cfg.AudioRootDir)
	cfg.ScratchDir = getEnv("VOICEKEEP_SCRATCH_DIR", cfg.ScratchDir)
	cfg.AudioFileExt = getEnv("VOICEKEEP_AUDIO_EXT", cfg.AudioFileExt)
	cfg.ScratchMaxAgeSec = getEnvAsInt("VOICEKEEP_SCRATCH_MAX_AGE_SEC", cfg.ScratchMaxAgeSec)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
