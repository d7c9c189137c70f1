// Package tts defines the contract of the external speech-synthesis
// collaborator. Concrete implementations wrap a local engine or a hosted
// TTS API and live outside this module.
package tts

import "context"

// Voice selects the synthesized speaker.
type Voice string

const (
	VoiceFemale Voice = "female"
	VoiceMale   Voice = "male"
)

// Speech rate bounds, in words per minute.
const (
	MinRate     = 50
	MaxRate     = 300
	DefaultRate = 150
)

// Synthesizer converts text into raw audio bytes.
type Synthesizer interface {
	// Synthesize renders text with the given voice and rate. An error means
	// no audio was produced; callers do not retry.
	Synthesize(ctx context.Context, text string, voice Voice, rate int) ([]byte, error)
}
