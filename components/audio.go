package components

import (
	cfg "github.com/automoto/danmaku/config"
	"github.com/yohamta/donburi"
)

// AudioData stores pending sounds (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

// QueueSFX adds a sound for the audio phase to play.
func QueueSFX(w donburi.World, id cfg.SoundID) {
	entry, ok := Audio.First(w)
	if !ok {
		return
	}
	a := Audio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, id)
}
