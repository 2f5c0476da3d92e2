package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/assets"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/shared/leveldata"
	"github.com/automoto/danmaku/spatial"
	"github.com/automoto/danmaku/spawntree"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel adds the level singleton running stage with the patterns in
// lib.
func CreateLevel(ecs *ecs.ECS, stage *leveldata.Stage, lib spawntree.Library) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Stage:   stage,
		Library: lib,
	})
	return level
}

// Services bundles what CreateServices needs.
type Services struct {
	Queue       *queue.Queue
	Animatables assets.Animatables
	Sound       assets.SoundPlayer
	Audio       cfg.AudioSettings
	// MaxRadius is the largest hitbox radius in the content set.
	MaxRadius float64
	// Width and Height of the playfield; config.C when zero.
	Width, Height float64
}

// CreateServices adds the services, clock and audio singletons.
func CreateServices(ecs *ecs.ECS, s Services) *donburi.Entry {
	width, height := s.Width, s.Height
	if width <= 0 || height <= 0 {
		width, height = float64(cfg.C.Width), float64(cfg.C.Height)
	}
	maxRadius := s.MaxRadius
	if maxRadius < cfg.Player.HitboxRadius {
		maxRadius = cfg.Player.HitboxRadius
	}
	if maxRadius < cfg.Enemy.HitboxRadius {
		maxRadius = cfg.Enemy.HitboxRadius
	}
	if maxRadius < cfg.Player.ShotRadius {
		maxRadius = cfg.Player.ShotRadius
	}

	svc := archetypes.Services.Spawn(ecs)
	components.Services.SetValue(svc, components.ServicesData{
		Queue:       s.Queue,
		Index:       spatial.NewIndex(width, height, maxRadius),
		Animatables: s.Animatables,
		Sound:       s.Sound,
		Audio:       s.Audio,
		Width:       width,
		Height:      height,
	})
	components.Clock.SetValue(svc, components.ClockData{Tick: -1})

	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{})
	return svc
}
