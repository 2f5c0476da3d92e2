package factory

import (
	"github.com/automoto/danmaku/assets"
	"github.com/automoto/danmaku/components"
	"github.com/yohamta/donburi"
)

func services(w donburi.World) *components.ServicesData {
	entry, ok := components.Services.First(w)
	if !ok {
		return nil
	}
	return components.Services.Get(entry)
}

// currentTick is the tick being simulated, or -1 without a clock.
func currentTick(w donburi.World) int {
	entry, ok := components.Clock.First(w)
	if !ok {
		return -1
	}
	return components.Clock.Get(entry).Tick
}

// newSprite resolves an animatable name into sprite data. Unknown names
// keep the name with no handle.
func newSprite(w donburi.World, name string) components.SpriteData {
	sprite := components.SpriteData{Name: name, Handle: assets.NoHandle, Alpha: 1}
	svc := services(w)
	if svc == nil || svc.Animatables == nil || name == "" {
		return sprite
	}
	if h, _, ok := svc.Animatables.Resolve(name); ok {
		sprite.Handle = h
		sprite.Animation = svc.Animatables.NewAnimation(h)
	}
	return sprite
}

// animatableDuration is the one-cycle duration of name, or 0.
func animatableDuration(w donburi.World, name string) float64 {
	svc := services(w)
	if svc == nil || svc.Animatables == nil {
		return 0
	}
	_, d, ok := svc.Animatables.Resolve(name)
	if !ok {
		return 0
	}
	return d
}
