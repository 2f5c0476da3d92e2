package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/queue"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnCollectibles drops Count items spread around (X, Y).
type SpawnCollectibles struct {
	X, Y  float64
	Count int
	Score int
}

func (c *SpawnCollectibles) EntitiesQueued() int { return c.Count }

func (c *SpawnCollectibles) Components() []donburi.IComponentType {
	return archetypes.Collectible.Components()
}

func (c *SpawnCollectibles) Execute(e *ecs.ECS, _ *queue.Queue) {
	score := c.Score
	if score <= 0 {
		score = cfg.Collectible.Score
	}
	for i := 0; i < c.Count; i++ {
		item := archetypes.Collectible.Spawn(e)
		// Spread evenly left to right around the drop point.
		dx := 0.0
		if c.Count > 1 {
			dx = (float64(i)/float64(c.Count-1)*2 - 1) * cfg.Collectible.Scatter
		}
		components.Position.SetValue(item, components.PositionData{X: c.X + dx, Y: c.Y})
		components.Collectible.SetValue(item, components.CollectibleData{Score: score})
		components.Despawn.SetValue(item, components.DespawnData{LeavesMap: true, Born: currentTick(e.World)})
	}
}
