package components

import "github.com/yohamta/donburi"

// DespawnData decides when an entity leaves the world.
type DespawnData struct {
	Timer        float64 // seconds left; only counts when HasTimer
	HasTimer     bool
	WithChildren bool // despawn once the last runtime child is gone
	LeavesMap    bool // despawn when outside the map padding
	Despawning   bool // destroy on the next despawn phase
	// Born is the tick the entity was created in. A new entity already
	// stands at its end-of-tick state, so that tick's motion, spawner and
	// despawn phases leave it alone.
	Born int
}

var Despawn = donburi.NewComponentType[DespawnData]()

// LineageData links a runtime entity to the spawner entity that created it
// and to the entities it created.
type LineageData struct {
	Parent    donburi.Entity
	HasParent bool
	Children  []donburi.Entity
}

// Detach removes child from the children list.
func (l *LineageData) Detach(child donburi.Entity) {
	for i, c := range l.Children {
		if c == child {
			l.Children = append(l.Children[:i], l.Children[i+1:]...)
			return
		}
	}
}

var Lineage = donburi.NewComponentType[LineageData]()
