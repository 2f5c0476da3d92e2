package systems

import (
	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/motion"
	"github.com/automoto/danmaku/reference"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion advances every path by the tick delta, then resolves global
// positions with references before their dependents. Entities created
// earlier in the same tick are resolved but not advanced.
func UpdateMotion(ecs *ecs.ECS) {
	w := ecs.World
	svc := services(w)
	if svc == nil {
		return
	}
	clk := clock(w)

	components.Movement.Each(w, func(e *donburi.Entry) {
		if bornThisTick(e, clk.Tick) {
			return
		}
		mv := components.Movement.Get(e)
		mv.Path.Tick(clk.Delta)
		mv.Path.Step(func(tr motion.Transition) {
			reference.OnActionStart(w, svc.Queue, e, tr)
		})
	})

	target := func(e *donburi.Entry, from gamemath.Point) (gamemath.Point, bool) {
		return nearestOpponent(w, factionOf(e), from)
	}
	components.Movement.Each(w, func(e *donburi.Entry) {
		reference.Resolve(w, e, clk.Tick, target)
	})
}

func factionOf(e *donburi.Entry) components.Faction {
	switch {
	case e.HasComponent(components.Hazard):
		return components.Hazard.Get(e).Faction
	case e.HasComponent(components.Spawner):
		return components.Spawner.Get(e).Faction
	}
	return components.FactionEnemy
}
