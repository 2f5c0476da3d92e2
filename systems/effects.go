package systems

import (
	"github.com/automoto/danmaku/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances sprite animations. Shadows carry no animation
// and stay on the frame they were cast with.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := clock(ecs.World).Delta
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Animation != nil {
			sprite.Animation.Update(dt)
		}
	})
}
