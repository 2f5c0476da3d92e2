package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/spawntree"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer adds the player at (x, y) and queues its shot spawner, a
// paused copy of the shot pattern attached to the player. The player
// system unpauses it while firing.
func CreatePlayer(ecs *ecs.ECS, q *queue.Queue, x, y float64, shot spawntree.Pattern) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs, components.Sprite)

	components.Position.SetValue(player, components.PositionData{X: x, Y: y})
	components.Hitbox.SetValue(player, components.HitboxData{Radius: cfg.Player.HitboxRadius})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Player.SetValue(player, components.PlayerData{})
	components.Sprite.SetValue(player, newSprite(ecs.World, "player"))

	if shot.Valid() && q != nil {
		owner := player.Entity()
		w := ecs.World
		q.Enqueue(&SpawnFromParent{
			Arena:     shot.Arena,
			Node:      shot.Root,
			Parent:    owner,
			HasParent: true,
			ParentPos: gamemath.Point{X: x, Y: y},
			Faction:   components.FactionPlayer,
			Main:      true,
			Paused:    true,
			Created: func(e *donburi.Entry) {
				if !w.Valid(owner) {
					return
				}
				pd := components.Player.Get(w.Entry(owner))
				pd.Shot = e.Entity()
				pd.HasShot = true
			},
		})
	}
	return player
}
