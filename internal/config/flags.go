package config

import (
	"flag"
	"os"

	"github.com/voicekeep/voicekeep/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path to the user document file
//	-d string   root directory for per-user audio
//	-t string   scratch directory for pre-save audio
//	-x string   audio file extension (without dot)
//	-m int      scratch max age, seconds
//
// Args are filtered with flagx.FilterArgs first so flags owned by other
// components do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-d", "-t", "-x", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DocumentPath, "f", config.DocumentPath, "path to the user document file")
	fs.StringVar(&config.AudioRootDir, "d", config.AudioRootDir, "root directory for per-user audio")
	fs.StringVar(&config.ScratchDir, "t", config.ScratchDir, "scratch directory for pre-save audio")
	fs.StringVar(&config.AudioFileExt, "x", config.AudioFileExt, "audio file extension")
	fs.IntVar(&config.ScratchMaxAgeSec, "m", config.ScratchMaxAgeSec, "scratch max age (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
