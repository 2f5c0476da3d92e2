// Package store adapts the donburi world into the entity store the
// simulation runs on: it counts creations and pre-grows archetype storage
// so queued creation commands can declare their needs up front.
package store

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/danmaku/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// World is a donburi.World that counts the entities created through it.
type World struct {
	donburi.World

	created  int
	reserved map[string]int
}

// NewWorld creates an empty store.
func NewWorld() *World {
	return &World{
		World:    donburi.NewWorld(),
		reserved: make(map[string]int),
	}
}

// Create creates an entity and counts it.
func (w *World) Create(cs ...donburi.IComponentType) donburi.Entity {
	w.created++
	return w.World.Create(cs...)
}

// CreateMany creates n entities and counts them.
func (w *World) CreateMany(n int, cs ...donburi.IComponentType) []donburi.Entity {
	w.created += n
	return w.World.CreateMany(n, cs...)
}

// Created is the number of entities created through w since it was made.
func (w *World) Created() int {
	return w.created
}

// Reserve makes sure the archetype made of cs can hold n entities without
// growing. Capacity is tracked as a high-water mark per archetype and grows
// geometrically; growth happens by creating and removing placeholders so
// the storage slices keep their capacity.
func (w *World) Reserve(n int, cs ...donburi.IComponentType) {
	if n <= 0 || len(cs) == 0 {
		return
	}
	key := archetypeKey(cs)
	if n <= w.reserved[key] {
		return
	}
	target := int(math.Ceil(float64(n) * config.Queue.ReserveGrowth))
	if target < config.Queue.InitialCapacity {
		target = config.Queue.InitialCapacity
	}
	w.reserved[key] = target

	live := w.CountExact(cs...)
	if extra := target - live; extra > 0 {
		// Placeholders bypass the creation count.
		for _, e := range w.World.CreateMany(extra, cs...) {
			w.World.Remove(e)
		}
	}
}

// CountExact returns how many live entities belong to the archetype made of
// exactly cs. Entities with extra components are not counted.
func (w *World) CountExact(cs ...donburi.IComponentType) int {
	return donburi.NewQuery(filter.Exact(cs)).Count(w.World)
}

// Reserved returns the capacity recorded for the archetype made of cs.
func (w *World) Reserved(cs ...donburi.IComponentType) int {
	return w.reserved[archetypeKey(cs)]
}

func archetypeKey(cs []donburi.IComponentType) string {
	ids := make([]int, len(cs))
	for i, c := range cs {
		ids[i] = int(c.Id())
	}
	sort.Ints(ids)
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
