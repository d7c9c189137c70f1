package config

import (
	"encoding/json"
	"os"

	"github.com/voicekeep/voicekeep/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. Absent fields stay at
// their zero value and are not copied over the already-loaded settings.
type JsonConfig struct {
	DocumentPath     string `json:"document_path"`
	AudioRootDir     string `json:"audio_root_dir"`
	ScratchDir       string `json:"scratch_dir"`
	AudioFileExt     string `json:"audio_file_ext"`
	ScratchMaxAgeSec int    `json:"scratch_max_age_sec"`
}

// parseJson loads configuration values from the JSON file given via the -c
// or -config flags. When no file is given, nothing is loaded. An unreadable
// or invalid file panics: a config file that exists but cannot be used is a
// deployment error, not a runtime condition.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DocumentPath != "" {
		config.DocumentPath = c.DocumentPath
	}
	if c.AudioRootDir != "" {
		config.AudioRootDir = c.AudioRootDir
	}
	if c.ScratchDir != "" {
		config.ScratchDir = c.ScratchDir
	}
	if c.AudioFileExt != "" {
		config.AudioFileExt = c.AudioFileExt
	}
	if c.ScratchMaxAgeSec != 0 {
		config.ScratchMaxAgeSec = c.ScratchMaxAgeSec
	}
}
