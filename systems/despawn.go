package systems

import (
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDespawn queues the removal of every entity whose time is up, whose
// last child is gone, that left the map or that was marked despawning.
func UpdateDespawn(ecs *ecs.ECS) {
	w := ecs.World
	svc := services(w)
	if svc == nil {
		return
	}
	clk := clock(w)
	width, height := playfield(w)

	components.Despawn.Each(w, func(e *donburi.Entry) {
		d := components.Despawn.Get(e)
		// The spawn lag already came off the timer of a new entity.
		if d.HasTimer && d.Born != clk.Tick {
			d.Timer -= clk.Delta
		}
		if !d.Despawning && shouldDespawn(e, d, width, height) {
			d.Despawning = true
		}
		if d.Despawning {
			svc.Queue.Enqueue(&factory.DestroyEntity{Entity: e.Entity()})
		}
	})
}

func shouldDespawn(e *donburi.Entry, d *components.DespawnData, width, height float64) bool {
	switch {
	case d.HasTimer && d.Timer <= 0:
		return true
	case d.WithChildren && childrenDone(e):
		return true
	}
	if d.LeavesMap && e.HasComponent(components.Position) {
		pos := components.Position.Get(e)
		return gamemath.OutsideRect(pos.X, pos.Y, width, height, cfg.Bullet.OffMapPadding)
	}
	return false
}

// childrenDone reports whether a spawner has nothing left to emit and no
// live runtime child.
func childrenDone(e *donburi.Entry) bool {
	if e.HasComponent(components.Spawner) && !components.Spawner.Get(e).Done() {
		return false
	}
	if !e.HasComponent(components.Lineage) {
		return true
	}
	return len(components.Lineage.Get(e).Children) == 0
}
