package systems

import (
	"time"

	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/metrics"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func services(w donburi.World) *components.ServicesData {
	entry, ok := components.Services.First(w)
	if !ok {
		return nil
	}
	return components.Services.Get(entry)
}

// clock returns the tick being simulated. Without a clock singleton the
// delta is zero.
func clock(w donburi.World) components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		return components.ClockData{}
	}
	return *components.Clock.Get(entry)
}

// bornThisTick reports whether e was created during tick. It was created
// at its end-of-tick state and must not be advanced again.
func bornThisTick(e *donburi.Entry, tick int) bool {
	return e.HasComponent(components.Despawn) && components.Despawn.Get(e).Born == tick
}

func level(w donburi.World) *components.LevelData {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func livePlayer(w donburi.World) (*donburi.Entry, bool) {
	entry, ok := tags.Player.First(w)
	if !ok || components.Player.Get(entry).Dead {
		return nil, false
	}
	return entry, true
}

// WithFlush runs system and then drains the creation queue, so every phase
// sees the structural changes of the phases before it.
func WithFlush(phase string, system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		start := time.Now()
		system(ecs)
		if svc := services(ecs.World); svc != nil && svc.Queue != nil {
			svc.Queue.Flush(ecs)
		}
		metrics.RecordPhase(phase, time.Since(start))
	}
}
