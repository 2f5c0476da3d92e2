package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/metrics"
	"github.com/automoto/danmaku/motion"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/reference"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/spawntree"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxLoopsPerEmit bounds how many times a repeating spawner wraps in one
// call, so a tiny Repeat cannot stall a tick.
const maxLoopsPerEmit = 16

// SpawnFromParent instantiates one spawn tree node. Parent is the spawner
// entity that emitted it; ParentPos is where that parent was when the
// command was queued, used if the parent is gone by the time it runs.
type SpawnFromParent struct {
	Arena     *spawntree.Arena
	Node      spawntree.NodeID
	Parent    donburi.Entity
	HasParent bool
	ParentPos gamemath.Point
	// TimeLag is how long ago, in tick time, the node should have spawned.
	TimeLag float64
	Faction components.Faction
	// Main marks the root of a pattern started directly by an enemy, the
	// player or a death action.
	Main bool
	// Paused starts the node's spawner paused.
	Paused bool
	// Created is called with the new entity before its children are due.
	Created func(e *donburi.Entry)
}

func (c *SpawnFromParent) EntitiesQueued() int { return 1 }

func (c *SpawnFromParent) Components() []donburi.IComponentType {
	if c.Arena == nil || !c.Arena.Valid(c.Node) {
		return archetypes.Node.Components()
	}
	return nodeComponents(c.Arena.Node(c.Node), c.Arena.Children(c.Node), c.Faction)
}

func nodeComponents(n *spawntree.Node, children []spawntree.NodeID, faction components.Faction) []donburi.IComponentType {
	var extra []donburi.IComponentType
	if n.IsBullet && n.Radius > 0 {
		extra = append(extra, components.Hitbox, components.Hazard, factionTag(faction))
	}
	if n.Sprite != "" {
		extra = append(extra, components.Sprite)
	}
	if n.ShadowInterval > 0 {
		extra = append(extra, components.ShadowTrail)
	}
	if len(children) > 0 {
		extra = append(extra, components.Spawner)
	}
	return archetypes.Node.Components(extra...)
}

func factionTag(f components.Faction) donburi.IComponentType {
	if f == components.FactionPlayer {
		return tags.PlayerShot
	}
	return tags.EnemyBullet
}

func (c *SpawnFromParent) Execute(e *ecs.ECS, q *queue.Queue) {
	if c.Arena == nil || !c.Arena.Valid(c.Node) {
		return
	}
	w := e.World
	n := c.Arena.Node(c.Node)
	children := c.Arena.Children(c.Node)

	var parent *donburi.Entry
	parentPos := c.ParentPos
	if c.HasParent && w.Valid(c.Parent) {
		parent = w.Entry(c.Parent)
		parentPos = reference.PositionAt(w, parent, c.TimeLag)
	}

	var origin gamemath.Point
	attached := false
	switch s := n.Spawn.(type) {
	case spawntree.SpawnAtPoint:
		origin = gamemath.Point{X: s.X, Y: s.Y}
	case spawntree.SpawnAttached:
		if parent != nil && parent.HasComponent(components.Position) {
			origin = gamemath.Point{X: s.X, Y: s.Y}
			attached = true
		} else {
			origin = parentPos.Add(gamemath.Point{X: s.X, Y: s.Y})
		}
	case spawntree.SpawnRelative:
		origin = parentPos.Add(gamemath.Point{X: s.X, Y: s.Y})
	default:
		origin = parentPos
	}

	entry := w.Entry(w.Create(nodeComponents(n, children, c.Faction)...))

	path := motion.New(n.Actions, origin)
	path.Local = c.TimeLag
	components.Movement.SetValue(entry, components.MovementData{Path: path, Stamp: -1})
	if attached {
		reference.Link(w, entry, c.Parent)
	}
	mv := components.Movement.Get(entry)
	onStart := func(tr motion.Transition) {
		reference.OnActionStart(w, q, entry, tr)
	}
	mv.Path.Begin(onStart)
	mv.Path.Step(onStart)
	components.Position.Get(entry).Set(reference.PositionAt(w, entry, 0))

	despawn := despawnFor(n, len(children) > 0, c.Main, c.TimeLag)
	despawn.Born = currentTick(w)
	components.Despawn.SetValue(entry, despawn)

	lineage := components.LineageData{}
	if parent != nil {
		lineage.Parent = c.Parent
		lineage.HasParent = true
		if parent.HasComponent(components.Lineage) {
			pl := components.Lineage.Get(parent)
			pl.Children = append(pl.Children, entry.Entity())
		}
	}
	components.Lineage.SetValue(entry, lineage)

	if n.IsBullet && n.Radius > 0 {
		components.Hitbox.SetValue(entry, components.HitboxData{Radius: n.Radius})
		components.Hazard.SetValue(entry, components.HazardData{
			Damage:      n.Damage,
			Faction:     c.Faction,
			Policy:      n.OnCollision,
			DeathEffect: n.DeathEffect,
		})
	}
	if n.Sprite != "" {
		components.Sprite.SetValue(entry, newSprite(w, n.Sprite))
	}
	if n.ShadowInterval > 0 {
		components.ShadowTrail.SetValue(entry, components.ShadowTrailData{
			Interval: n.ShadowInterval,
			Lifespan: n.ShadowLifespan,
			Timer:    n.ShadowInterval,
		})
	}
	metrics.RecordSpawn()

	if len(children) > 0 {
		components.Spawner.SetValue(entry, components.SpawnerData{
			Arena:    c.Arena,
			Node:     c.Node,
			Children: children,
			Elapsed:  c.TimeLag,
			Faction:  c.Faction,
			Loop:     n.Repeat,
			Paused:   c.Paused,
		})
	}
	if c.Created != nil {
		c.Created(entry)
	}
	if len(children) > 0 {
		// Children due already, zero-offset ones included, spawn in this
		// same flush.
		EmitDue(q, entry)
	}
}

func despawnFor(n *spawntree.Node, hasChildren, main bool, lag float64) components.DespawnData {
	lifetime := n.RuntimeDespawnTime()
	d := components.DespawnData{LeavesMap: n.IsBullet}
	d.WithChildren = !n.IsBullet && hasChildren && (main || lifetime <= 0)
	if d.WithChildren {
		return d
	}
	if lifetime > 0 || !hasChildren {
		d.HasTimer = true
		d.Timer = lifetime - lag
	}
	return d
}

// EmitDue queues a SpawnFromParent for every child of the spawner on entry
// whose offset has been reached, and wraps repeating spawners. It returns
// the number of children queued.
func EmitDue(q *queue.Queue, entry *donburi.Entry) int {
	sp := components.Spawner.Get(entry)
	if sp.Paused || sp.Arena == nil {
		return 0
	}
	var parentPos gamemath.Point
	if entry.HasComponent(components.Position) {
		parentPos = components.Position.Get(entry).Point()
	}

	emitted := 0
	for loops := 0; ; loops++ {
		for sp.Next < len(sp.Children) {
			child := sp.Children[sp.Next]
			offset := sp.Arena.Node(child).SpawnOffset()
			if offset > sp.Elapsed {
				break
			}
			q.Enqueue(&SpawnFromParent{
				Arena:     sp.Arena,
				Node:      child,
				Parent:    entry.Entity(),
				HasParent: true,
				ParentPos: parentPos,
				TimeLag:   sp.Elapsed - offset,
				Faction:   sp.Faction,
			})
			sp.Next++
			emitted++
		}
		if sp.Loop <= 0 || sp.Next < len(sp.Children) || sp.Elapsed < sp.Loop || loops >= maxLoopsPerEmit {
			return emitted
		}
		sp.Elapsed -= sp.Loop
		sp.Next = 0
	}
}

// StartPattern queues the root of a pattern as a main node. Owner, when
// set, is the entity the pattern spawns from and is attached to. lag is
// how long before the end of the tick the pattern started.
func StartPattern(q *queue.Queue, p spawntree.Pattern, owner donburi.Entity, hasOwner bool, at gamemath.Point, faction components.Faction, lag float64) {
	if !p.Valid() {
		return
	}
	q.Enqueue(&SpawnFromParent{
		Arena:     p.Arena,
		Node:      p.Root,
		Parent:    owner,
		HasParent: hasOwner,
		ParentPos: at,
		TimeLag:   lag,
		Faction:   faction,
		Main:      true,
	})
}
