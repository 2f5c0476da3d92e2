package systems

import (
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudio hands every pending sound to the sound player with the
// simulation's audio settings.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	svc := services(e.World)
	if svc != nil && svc.Sound != nil {
		for _, soundID := range audioData.PendingSFX {
			playSFX(svc, soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(svc *components.ServicesData, soundID cfg.SoundID) {
	if svc.Audio.Muted || svc.Audio.Volume <= 0 {
		return
	}
	profile, settings, ok := cfg.ProfileFor(soundID, svc.Audio)
	if !ok {
		return
	}
	svc.Sound.Play(profile, settings)
}

// PlaySFX queues a sound for the end of the tick.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	components.QueueSFX(e.World, sound)
}
