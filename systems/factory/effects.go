package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/queue"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnEffect shows an animatable once at (X, Y). The effect lives for one
// cycle of its animation, counted from TimeLag before the end of the tick.
type SpawnEffect struct {
	X, Y       float64
	Animatable string
	TimeLag    float64
}

func (c *SpawnEffect) EntitiesQueued() int { return 1 }

func (c *SpawnEffect) Components() []donburi.IComponentType {
	return archetypes.Effect.Components()
}

func (c *SpawnEffect) Execute(e *ecs.ECS, _ *queue.Queue) {
	fx := archetypes.Effect.Spawn(e)
	components.Position.SetValue(fx, components.PositionData{X: c.X, Y: c.Y})
	components.Sprite.SetValue(fx, newSprite(e.World, c.Animatable))
	components.Despawn.SetValue(fx, components.DespawnData{
		HasTimer: true,
		Timer:    animatableDuration(e.World, c.Animatable) - c.TimeLag,
		Born:     currentTick(e.World),
	})
}

// SpawnShadow leaves a fading copy of a sprite behind.
type SpawnShadow struct {
	X, Y     float64
	Sprite   components.SpriteData
	Lifespan float64
}

func (c *SpawnShadow) EntitiesQueued() int { return 1 }

func (c *SpawnShadow) Components() []donburi.IComponentType {
	return archetypes.Shadow.Components()
}

func (c *SpawnShadow) Execute(e *ecs.ECS, _ *queue.Queue) {
	shadow := archetypes.Shadow.Spawn(e)
	components.Position.SetValue(shadow, components.PositionData{X: c.X, Y: c.Y})

	sprite := c.Sprite
	sprite.Alpha = cfg.Shadow.StartAlpha
	// Shadows freeze on the frame they were cast with.
	sprite.Animation = nil
	components.Sprite.SetValue(shadow, sprite)

	components.Shadow.SetValue(shadow, components.ShadowData{
		Fade: gween.New(cfg.Shadow.StartAlpha, 0, float32(c.Lifespan), ease.Linear),
	})
	components.Despawn.SetValue(shadow, components.DespawnData{
		HasTimer: true,
		Timer:    c.Lifespan,
		Born:     currentTick(e.World),
	})
}
