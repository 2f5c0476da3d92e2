package components

import (
	"github.com/automoto/danmaku/spawntree"
	"github.com/yohamta/donburi"
)

// Faction decides which actors a hazard can hit.
type Faction int

const (
	FactionEnemy Faction = iota
	FactionPlayer
)

// HazardData makes an entity damage actors of the opposing faction.
type HazardData struct {
	Damage  int
	Faction Faction
	Policy  spawntree.CollisionPolicy
	// DeathEffect is shown where the hazard is used up.
	DeathEffect string
	// Spent hazards stay in the world until their removal is flushed but
	// never hit again.
	Spent bool
	// PierceTimers holds, per target, the seconds before it can be hit again.
	PierceTimers map[donburi.Entity]float64
}

// CanHit reports whether the hazard may hit target now.
func (h *HazardData) CanHit(target donburi.Entity) bool {
	if h.Spent {
		return false
	}
	if t, ok := h.PierceTimers[target]; ok && t > 0 {
		return false
	}
	return true
}

var Hazard = donburi.NewComponentType[HazardData]()
