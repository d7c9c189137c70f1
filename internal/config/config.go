// Package config handles configuration for voicekeep, including defaults,
// environment overlay, JSON overlay, and command-line flags.
package config

// Config holds runtime settings.
//
// Fields:
//   - DocumentPath: path of the JSON document holding all user records.
//   - AudioRootDir: root of the per-user audio directories.
//   - ScratchDir: shared directory for pre-save audio bytes.
//   - AudioFileExt: extension (without dot) given to stored audio files.
//   - ScratchMaxAgeSec: age in seconds after which scratch files are reaped.
type Config struct {
	DocumentPath     string
	AudioRootDir     string
	ScratchDir       string
	AudioFileExt     string
	ScratchMaxAgeSec int
}

// LoadDefaults populates Config with the stock single-machine layout.
func (c *Config) LoadDefaults() {
	c.DocumentPath = "users.json"
	c.AudioRootDir = "user_audio"
	c.ScratchDir = "temp_audio"
	c.AudioFileExt = "wav"
	c.ScratchMaxAgeSec = 3600
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), from an optional
// JSON file, and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
