package systems

import (
	"github.com/automoto/danmaku/components"
	"github.com/yohamta/donburi/ecs"
)

// SetPaused holds or resumes the gameplay phases.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	if pause.IsPaused != paused {
		pause.PausedTicks = 0
	}
	pause.IsPaused = paused
}

// IsPaused reports whether the gameplay phases are held.
func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused
}

// WithPauseCheck skips system while the simulation is paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if IsPaused(ecs) {
			return
		}
		system(ecs)
	}
}

// UpdatePause counts paused ticks. It runs every tick, paused or not.
func UpdatePause(ecs *ecs.ECS) {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		return
	}
	pause := components.Pause.Get(entry)
	if pause.IsPaused {
		pause.PausedTicks++
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Create(components.Pause)
	}
	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
