package components

import (
	"github.com/automoto/danmaku/assets"
	"github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/spatial"
	"github.com/yohamta/donburi"
)

// ServicesData holds the simulation's collaborators (singleton component).
type ServicesData struct {
	Queue       *queue.Queue
	Index       *spatial.Index
	Animatables assets.Animatables
	Sound       assets.SoundPlayer
	Audio       config.AudioSettings

	// Playfield
	Width, Height float64
}

var Services = donburi.NewComponentType[ServicesData]()

// ClockData is the tick being simulated (singleton component).
type ClockData struct {
	Delta float64
	Tick  int
}

var Clock = donburi.NewComponentType[ClockData]()
