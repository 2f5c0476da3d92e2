// Package reference maintains the graph of motion references: which entity
// each moving entity is anchored to, the simple reference entities created
// when an action starts, and resolution of global positions along chains.
package reference

import (
	"fmt"
	"log"

	"github.com/automoto/danmaku/components"
	"github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/motion"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/spawntree"
	"github.com/yohamta/donburi"
)

// maxDepth bounds every walk along a reference chain.
const maxDepth = 64

// TargetFunc returns the global point a homing entity steers toward.
type TargetFunc func(entry *donburi.Entry, from gamemath.Point) (gamemath.Point, bool)

// Resolve computes entry's global position for tick, resolving its
// reference chain first, and stores it in Position. Each entity is resolved
// once per tick.
func Resolve(w donburi.World, entry *donburi.Entry, tick int, target TargetFunc) gamemath.Point {
	return resolve(w, entry, tick, target, 0)
}

func resolve(w donburi.World, entry *donburi.Entry, tick int, target TargetFunc, depth int) gamemath.Point {
	if !entry.HasComponent(components.Movement) {
		if entry.HasComponent(components.Position) {
			return components.Position.Get(entry).Point()
		}
		return gamemath.Point{}
	}
	mv := components.Movement.Get(entry)
	if mv.Stamp == tick && entry.HasComponent(components.Position) {
		return components.Position.Get(entry).Point()
	}
	mv.Stamp = tick

	var anchor gamemath.Point
	switch {
	case mv.Pending:
		anchor = mv.PendingAnchor
	case mv.HasReference && !w.Valid(mv.Reference):
		orphan(mv)
	case mv.HasReference && depth >= maxDepth:
		log.Printf("reference: chain deeper than %d at entity %v", maxDepth, entry.Entity())
		anchor = mv.Anchor
	case mv.HasReference:
		anchor = resolve(w, w.Entry(mv.Reference), tick, target, depth+1)
	}
	mv.Anchor = anchor

	if target != nil {
		if a, ok := mv.Path.Current(); ok {
			if _, homing := a.(spawntree.HomingMove); homing {
				from := anchor.Add(mv.Path.Offset())
				t, ok := target(entry, from)
				mv.Path.Steer(from, t, ok)
			}
		}
	}

	p := anchor.Add(mv.Path.Offset())
	if entry.HasComponent(components.Position) {
		components.Position.Get(entry).Set(p)
	}
	return p
}

// orphan turns motion anchored to a vanished reference into absolute motion
// from the reference's last known position.
func orphan(mv *components.MovementData) {
	mv.Path.Rebase(mv.Path.Base.Add(mv.Anchor))
	mv.HasReference = false
	mv.Anchor = gamemath.Point{}
}

// PositionAt returns entry's global position lag seconds of local time ago,
// following the current action of every entity in the chain.
func PositionAt(w donburi.World, entry *donburi.Entry, lag float64) gamemath.Point {
	return positionAt(w, entry, lag, 0)
}

func positionAt(w donburi.World, entry *donburi.Entry, lag float64, depth int) gamemath.Point {
	if !entry.HasComponent(components.Movement) {
		if entry.HasComponent(components.Position) {
			return components.Position.Get(entry).Point()
		}
		return gamemath.Point{}
	}
	mv := components.Movement.Get(entry)
	return anchorAt(w, mv, lag, depth).Add(mv.Path.OffsetAt(mv.Path.Local - lag))
}

func anchorAt(w donburi.World, mv *components.MovementData, lag float64, depth int) gamemath.Point {
	switch {
	case mv.Pending:
		return mv.PendingAnchor
	case mv.HasReference && w.Valid(mv.Reference) && depth < maxDepth:
		return positionAt(w, w.Entry(mv.Reference), lag, depth+1)
	case mv.HasReference:
		return mv.Anchor
	}
	return gamemath.Point{}
}

// IsSimple reports whether e is a simple reference entity.
func IsSimple(w donburi.World, e donburi.Entity) bool {
	return w.Valid(e) && w.Entry(e).HasComponent(components.Reference)
}

// ChainBase returns the first entity up entry's chain that is not a simple
// reference, or false when the chain ends in absolute motion.
func ChainBase(w donburi.World, mv *components.MovementData) (donburi.Entity, bool) {
	if !mv.HasReference {
		return 0, false
	}
	ref := mv.Reference
	for depth := 0; depth < maxDepth; depth++ {
		if !w.Valid(ref) {
			return 0, false
		}
		entry := w.Entry(ref)
		if !entry.HasComponent(components.Reference) {
			return ref, true
		}
		rm := components.Movement.Get(entry)
		if !rm.HasReference {
			return 0, false
		}
		ref = rm.Reference
	}
	return 0, false
}

// Link anchors entry's motion to ref. Links that would close a cycle are
// rejected: the entity keeps its current global position as absolute motion.
func Link(w donburi.World, entry *donburi.Entry, ref donburi.Entity) bool {
	mv := components.Movement.Get(entry)
	if createsCycle(w, entry.Entity(), ref) {
		msg := fmt.Sprintf("reference: linking %v to %v would create a cycle", entry.Entity(), ref)
		if config.Debug.Assertions && ref == entry.Entity() {
			panic(msg)
		}
		log.Print(msg)
		return false
	}
	mv.Reference = ref
	mv.HasReference = true
	return true
}

func createsCycle(w donburi.World, self, ref donburi.Entity) bool {
	cur := ref
	for depth := 0; depth < maxDepth; depth++ {
		if cur == self {
			return true
		}
		if !w.Valid(cur) {
			return false
		}
		entry := w.Entry(cur)
		if !entry.HasComponent(components.Movement) {
			return false
		}
		mv := components.Movement.Get(entry)
		if !mv.HasReference {
			return false
		}
		cur = mv.Reference
	}
	// Too deep to tell; treat as a cycle.
	return true
}

// Release drops one owner of ref if it is a simple reference and removes it
// once nobody owns it. It must run inside a queue flush.
func Release(w donburi.World, ref donburi.Entity) {
	if !IsSimple(w, ref) {
		return
	}
	r := components.Reference.Get(w.Entry(ref))
	r.Owners--
	if r.Owners <= 0 {
		w.Remove(ref)
	}
}

// Unlink clears entry's reference, releasing it.
func Unlink(w donburi.World, mv *components.MovementData) {
	if !mv.HasReference {
		return
	}
	ref := mv.Reference
	mv.HasReference = false
	Release(w, ref)
}

// OnActionStart handles the start of an action on entry. Actions that
// create a reference sample the entity's global position at the moment the
// action began and queue the reference change in front of other commands.
// Absolute motion needs nothing: its origin already is that position.
func OnActionStart(w donburi.World, q *queue.Queue, entry *donburi.Entry, tr motion.Transition) {
	if !spawntree.CreatesReference(tr.Action) {
		return
	}
	mv := components.Movement.Get(entry)
	if !mv.HasReference && !mv.Pending {
		return
	}

	sample := anchorAt(w, mv, tr.Lag, 0).Add(mv.Path.Base)
	mv.Path.Rebase(gamemath.Point{})
	mv.PendingAnchor = sample
	mv.PendingLag = tr.Lag
	mv.PendingDetach = mv.PendingDetach || spawntree.IsDetach(tr.Action)
	if mv.Pending {
		// The queued command reads the latest sample.
		return
	}
	mv.Pending = true
	q.EnqueueFront(&CreateReference{Entity: entry.Entity()})
}
