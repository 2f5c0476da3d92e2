package systems

import (
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var enemyQuery = donburi.NewQuery(filter.Contains(tags.Enemy))

// UpdateLevel advances stage time and spawns the enemies that came due.
// The stage is cleared once the schedule is exhausted and no enemy is left.
func UpdateLevel(ecs *ecs.ECS) {
	w := ecs.World
	svc := services(w)
	lvl := level(w)
	if svc == nil || lvl == nil || lvl.Stage == nil || lvl.Cleared {
		return
	}

	enemies := lvl.Stage.Enemies
	if lvl.NextEnemy >= len(enemies) && enemyQuery.Count(w) == 0 {
		lvl.Cleared = true
		return
	}

	lvl.Time += clock(w).Delta
	for lvl.NextEnemy < len(enemies) && enemies[lvl.NextEnemy].Time <= lvl.Time {
		spawn := enemies[lvl.NextEnemy]
		lvl.NextEnemy++
		svc.Queue.Enqueue(&factory.SpawnEnemy{
			Spawn:   spawn,
			Library: lvl.Library,
			TimeLag: lvl.Time - spawn.Time,
			Created: func(e *donburi.Entry) {
				enemySpawned(w, e, spawn.Name, spawn.Boss)
			},
		})
	}
}

func enemySpawned(w donburi.World, e *donburi.Entry, name string, boss bool) {
	if boss {
		if lvl := level(w); lvl != nil {
			lvl.Boss = e.Entity()
			lvl.HasBoss = true
		}
		components.QueueSFX(w, cfg.SoundBossSpawn)
	}
	components.SpawnEvent.Publish(w, components.SpawnNotice{
		Entity: e.Entity(),
		Name:   name,
		Boss:   boss,
	})
}
