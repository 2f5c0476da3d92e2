package factory

import (
	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/reference"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Destroy removes e from the world now, releasing its motion reference and
// unlinking it from its lineage. Children it spawned keep running on their
// own and stop repeating. It must run inside a queue flush.
func Destroy(w donburi.World, e donburi.Entity) {
	if !w.Valid(e) {
		return
	}
	entry := w.Entry(e)

	if entry.HasComponent(components.Movement) {
		reference.Unlink(w, components.Movement.Get(entry))
	}
	if entry.HasComponent(components.Lineage) {
		l := components.Lineage.Get(entry)
		if l.HasParent && w.Valid(l.Parent) {
			pe := w.Entry(l.Parent)
			if pe.HasComponent(components.Lineage) {
				components.Lineage.Get(pe).Detach(e)
			}
		}
		for _, c := range l.Children {
			if !w.Valid(c) {
				continue
			}
			ce := w.Entry(c)
			if ce.HasComponent(components.Lineage) {
				cl := components.Lineage.Get(ce)
				cl.HasParent = false
			}
			if ce.HasComponent(components.Spawner) {
				components.Spawner.Get(ce).Loop = 0
			}
		}
	}
	w.Remove(e)
}

// Subtree returns root followed by every live runtime descendant reachable
// through lineage links.
func Subtree(w donburi.World, root donburi.Entity) []donburi.Entity {
	out := []donburi.Entity{}
	seen := make(map[donburi.Entity]bool)
	stack := []donburi.Entity{root}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[e] || !w.Valid(e) {
			continue
		}
		seen[e] = true
		out = append(out, e)
		entry := w.Entry(e)
		if entry.HasComponent(components.Lineage) {
			stack = append(stack, components.Lineage.Get(entry).Children...)
		}
	}
	return out
}

// DestroyEntity removes an entity, and with Recursive every runtime child
// it spawned, in the flush it runs in.
type DestroyEntity struct {
	Entity    donburi.Entity
	Recursive bool
}

func (c *DestroyEntity) EntitiesQueued() int                  { return 0 }
func (c *DestroyEntity) Components() []donburi.IComponentType { return nil }

func (c *DestroyEntity) Execute(e *ecs.ECS, _ *queue.Queue) {
	if !c.Recursive {
		Destroy(e.World, c.Entity)
		return
	}
	subtree := Subtree(e.World, c.Entity)
	// Leaves first so parents still exist while children unlink.
	for i := len(subtree) - 1; i >= 0; i-- {
		Destroy(e.World, subtree[i])
	}
}

// StripHazard turns a bullet into an inert point: hitbox, hazard, sprite,
// spawner, trail and faction tag go; position, motion and despawn stay so
// children attached to it keep moving.
type StripHazard struct {
	Entity donburi.Entity
}

func (c *StripHazard) EntitiesQueued() int                  { return 0 }
func (c *StripHazard) Components() []donburi.IComponentType { return nil }

func (c *StripHazard) Execute(e *ecs.ECS, _ *queue.Queue) {
	if !e.World.Valid(c.Entity) {
		return
	}
	entry := e.World.Entry(c.Entity)
	for _, ct := range []donburi.IComponentType{
		components.Hitbox,
		components.Hazard,
		components.Sprite,
		components.Spawner,
		components.ShadowTrail,
		tags.PlayerShot,
		tags.EnemyBullet,
	} {
		if entry.HasComponent(ct) {
			entry.RemoveComponent(ct)
		}
	}
}
