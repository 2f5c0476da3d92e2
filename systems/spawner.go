package systems

import (
	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawners advances every running spawner and queues the children
// that came due. Paused spawners hold their place.
func UpdateSpawners(ecs *ecs.ECS) {
	w := ecs.World
	svc := services(w)
	if svc == nil {
		return
	}
	clk := clock(w)
	components.Spawner.Each(w, func(e *donburi.Entry) {
		sp := components.Spawner.Get(e)
		if sp.Paused || sp.Done() || bornThisTick(e, clk.Tick) {
			return
		}
		sp.Elapsed += clk.Delta
		factory.EmitDue(svc.Queue, e)
	})
}
