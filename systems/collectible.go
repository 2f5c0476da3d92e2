package systems

import (
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectibles drops items, pulls them toward a nearby player and
// awards their score on pickup.
func UpdateCollectibles(ecs *ecs.ECS) {
	w := ecs.World
	dt := clock(w).Delta
	player, hasPlayer := livePlayer(w)

	components.Collectible.Each(w, func(e *donburi.Entry) {
		d := components.Despawn.Get(e)
		if d.Despawning {
			return
		}
		item := components.Collectible.Get(e)
		pos := components.Position.Get(e)

		if !hasPlayer {
			pos.Y += cfg.Collectible.FallSpeed * dt
			return
		}
		target := components.Position.Get(player).Point()
		delta := target.Sub(pos.Point())
		dist := delta.Len()

		switch {
		case dist <= cfg.Collectible.PickupRadius:
			d.Despawning = true
			awardScore(w, item.Score)
			components.QueueSFX(w, cfg.SoundItemPickup)
		case item.Attracted || dist <= cfg.Collectible.MagnetRadius:
			item.Attracted = true
			step := cfg.Collectible.MagnetSpeed * dt
			if step >= dist {
				pos.Set(target)
				return
			}
			pos.Set(pos.Point().Add(delta.Scale(step / dist)))
		default:
			pos.Y += cfg.Collectible.FallSpeed * dt
		}
	})
}

func awardScore(w donburi.World, points int) {
	lvl := level(w)
	if lvl == nil || points <= 0 {
		return
	}
	lvl.Score += points
	components.ScoreEvent.Publish(w, components.ScoreNotice{Points: points, Total: lvl.Score})
}
