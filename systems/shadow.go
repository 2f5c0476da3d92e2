package systems

import (
	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShadowTrails casts shadows from trailing entities and fades the
// shadows already cast.
func UpdateShadowTrails(ecs *ecs.ECS) {
	w := ecs.World
	svc := services(w)
	if svc == nil {
		return
	}
	dt := clock(w).Delta

	components.ShadowTrail.Each(w, func(e *donburi.Entry) {
		trail := components.ShadowTrail.Get(e)
		if trail.Interval <= 0 {
			return
		}
		trail.Timer -= dt
		if trail.Timer > 0 {
			return
		}
		// One shadow per tick at most, however short the interval.
		for trail.Timer <= 0 {
			trail.Timer += trail.Interval
		}
		pos := components.Position.Get(e)
		shadow := &factory.SpawnShadow{X: pos.X, Y: pos.Y, Lifespan: trail.Lifespan}
		if e.HasComponent(components.Sprite) {
			shadow.Sprite = *components.Sprite.Get(e)
		}
		svc.Queue.Enqueue(shadow)
	})

	components.Shadow.Each(w, func(e *donburi.Entry) {
		shadow := components.Shadow.Get(e)
		if shadow.Fade == nil {
			return
		}
		alpha, _ := shadow.Fade.Update(float32(dt))
		components.Sprite.Get(e).Alpha = alpha
	})
}
