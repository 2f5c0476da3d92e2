package archetypes

import (
	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Hitbox,
		components.Health,
		components.Lineage,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Position,
		components.Movement,
		components.Hitbox,
		components.Health,
		components.Despawn,
		components.Lineage,
	)
	// Node is a runtime spawn tree node. Bullets add a hitbox, hazard and
	// faction tag; spawners add a Spawner.
	Node = newArchetype(
		components.Position,
		components.Movement,
		components.Despawn,
		components.Lineage,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Position,
		components.Despawn,
	)
	Shadow = newArchetype(
		tags.Shadow,
		components.Shadow,
		components.Position,
		components.Sprite,
		components.Despawn,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Position,
		components.Sprite,
		components.Despawn,
	)
	Level = newArchetype(
		components.Level,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Services = newArchetype(
		components.Services,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Components returns the archetype's components plus cs, for queued
// commands to declare what they create.
func (a *archetype) Components(cs ...donburi.IComponentType) []donburi.IComponentType {
	out := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	out = append(out, a.components...)
	return append(out, cs...)
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		a.Components(cs...)...,
	))
	return e
}
