package systems

import (
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies despawns enemies that have left the map. They give no
// score and run no death actions.
func UpdateEnemies(ecs *ecs.ECS) {
	w := ecs.World
	width, height := playfield(w)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		d := components.Despawn.Get(e)
		if d.Despawning {
			return
		}
		pos := components.Position.Get(e)
		if !gamemath.OutsideRect(pos.X, pos.Y, width, height, cfg.Enemy.OffMapPadding) {
			return
		}
		d.Despawning = true
		cancelPatterns(w, e)
		if lvl := level(w); lvl != nil && lvl.HasBoss && lvl.Boss == e.Entity() {
			lvl.HasBoss = false
		}
	})
}

// killEnemy marks a dead enemy for despawn, awards its score and queues
// its death actions and drops.
func killEnemy(w donburi.World, q *queue.Queue, e *donburi.Entry) {
	components.Despawn.Get(e).Despawning = true
	cancelPatterns(w, e)

	enemy := components.Enemy.Get(e)
	pos := components.Position.Get(e).Point()
	// Hits resolve against start-of-tick positions.
	lag := clock(w).Delta

	if lvl := level(w); lvl != nil {
		if enemy.Score > 0 {
			lvl.Score += enemy.Score
			components.ScoreEvent.Publish(w, components.ScoreNotice{Points: enemy.Score, Total: lvl.Score})
		}
		if lvl.HasBoss && lvl.Boss == e.Entity() {
			lvl.HasBoss = false
		}
		factory.RunDeathActions(w, q, lvl.Library, enemy.DeathActions, pos, lag)
	} else {
		factory.RunDeathActions(w, q, nil, enemy.DeathActions, pos, lag)
	}
	if enemy.Drops > 0 {
		q.Enqueue(&factory.SpawnCollectibles{X: pos.X, Y: pos.Y, Count: enemy.Drops})
	}

	components.DeathEvent.Publish(w, components.DeathNotice{
		Entity: e.Entity(),
		Boss:   enemy.Boss,
		X:      pos.X,
		Y:      pos.Y,
	})
}

// cancelPatterns stops the attack patterns an enemy started. Bullets
// already fired keep flying.
func cancelPatterns(w donburi.World, e *donburi.Entry) {
	for _, c := range components.Lineage.Get(e).Children {
		if !w.Valid(c) {
			continue
		}
		ce := w.Entry(c)
		if !ce.HasComponent(components.Spawner) {
			continue
		}
		sp := components.Spawner.Get(ce)
		sp.Loop = 0
		sp.Next = len(sp.Children)
	}
}
