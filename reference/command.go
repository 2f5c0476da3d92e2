package reference

import (
	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/motion"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimpleComponents is the archetype of a simple reference entity.
var SimpleComponents = []donburi.IComponentType{
	tags.SimpleReference,
	components.Position,
	components.Movement,
	components.Reference,
}

// CreateReference applies the reference change sampled by OnActionStart.
//
// A simple reference owned only by the entity is moved in place. Otherwise
// a new simple reference is created at the sample, anchored to the base of
// the chain. Detach makes the entity absolute at the sample instead. Either
// way chains never grow past entity, simple reference, base.
type CreateReference struct {
	Entity donburi.Entity
}

func (c *CreateReference) EntitiesQueued() int { return 1 }

func (c *CreateReference) Components() []donburi.IComponentType {
	return SimpleComponents
}

func (c *CreateReference) Execute(e *ecs.ECS, q *queue.Queue) {
	w := e.World
	if !w.Valid(c.Entity) {
		return
	}
	entry := w.Entry(c.Entity)
	if !entry.HasComponent(components.Movement) {
		return
	}
	mv := components.Movement.Get(entry)
	if !mv.Pending {
		return
	}
	anchor, lag, detach := mv.PendingAnchor, mv.PendingLag, mv.PendingDetach
	mv.Pending = false
	mv.PendingDetach = false

	if detach {
		Unlink(w, mv)
		mv.Path.Rebase(mv.Path.Base.Add(anchor))
		mv.Anchor = gamemath.Point{}
		return
	}

	// Relocate a reference nobody else uses.
	if mv.HasReference && IsSimple(w, mv.Reference) {
		refEntry := w.Entry(mv.Reference)
		if components.Reference.Get(refEntry).Owners == 1 {
			rm := components.Movement.Get(refEntry)
			rm.Path.Rebase(anchor.Sub(anchorAt(w, rm, lag, 0)))
			mv.Anchor = anchor
			return
		}
	}

	base, hasBase := ChainBase(w, mv)
	Unlink(w, mv)

	ref := NewSimple(w, anchor, base, hasBase, lag)
	if !Link(w, entry, ref) {
		// The entity keeps moving from the sample on its own.
		Release(w, ref)
		mv.Path.Rebase(mv.Path.Base.Add(anchor))
		return
	}
	mv.Anchor = anchor
}

// NewSimple creates a simple reference whose position lag seconds ago was
// at. With a base it follows the base from then on; without one it stays
// put. It starts with one owner.
func NewSimple(w donburi.World, at gamemath.Point, base donburi.Entity, hasBase bool, lag float64) donburi.Entity {
	ref := w.Create(SimpleComponents...)
	entry := w.Entry(ref)

	offset := at
	if hasBase && w.Valid(base) {
		offset = at.Sub(PositionAt(w, w.Entry(base), lag))
	} else {
		hasBase = false
	}

	components.Movement.SetValue(entry, components.MovementData{
		Path:         motion.New(nil, offset),
		Reference:    base,
		HasReference: hasBase,
		Stamp:        -1,
	})
	pos := offset
	if hasBase {
		pos = PositionAt(w, w.Entry(base), 0).Add(offset)
	}
	components.Position.Get(entry).Set(pos)
	components.Reference.SetValue(entry, components.ReferenceData{Owners: 1})
	return ref
}
