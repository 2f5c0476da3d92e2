package assets

import (
	"log"
	"sync"

	"github.com/automoto/danmaku/config"
)

// SoundPlayer plays a sound profile. Settings are passed with every call.
type SoundPlayer interface {
	Play(profile string, settings config.AudioSettings)
}

// LogPlayer logs every sound instead of playing it. Headless runs use it.
type LogPlayer struct {
	Verbose bool
}

func (p LogPlayer) Play(profile string, settings config.AudioSettings) {
	if p.Verbose {
		log.Printf("audio: %s at volume %.2f", profile, settings.Volume)
	}
}

// PlayedSound is one call recorded by a Recorder.
type PlayedSound struct {
	Profile  string
	Settings config.AudioSettings
}

// Recorder keeps every played sound.
type Recorder struct {
	mu     sync.Mutex
	played []PlayedSound
}

func (r *Recorder) Play(profile string, settings config.AudioSettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, PlayedSound{Profile: profile, Settings: settings})
}

// Played returns a copy of the recorded sounds.
func (r *Recorder) Played() []PlayedSound {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]PlayedSound(nil), r.played...)
}
