package components

import (
	"github.com/automoto/danmaku/motion"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/yohamta/donburi"
)

// MovementData drives Position. Position = reference position + path offset.
type MovementData struct {
	Path motion.Path

	// Reference anchors the path. Without one the path is absolute.
	Reference    donburi.Entity
	HasReference bool
	// Anchor is the reference position used on the last resolve.
	Anchor gamemath.Point

	// A reference change sampled this tick and waiting for its command.
	// Until it runs, PendingAnchor stands in for the reference position.
	Pending       bool
	PendingAnchor gamemath.Point
	PendingLag    float64
	PendingDetach bool

	// Stamp is the tick Position was last resolved on.
	Stamp int
}

var Movement = donburi.NewComponentType[MovementData]()

// ReferenceData marks a simple reference: an invisible anchor shared by
// the entities whose motion it carries.
type ReferenceData struct {
	Owners int
}

var Reference = donburi.NewComponentType[ReferenceData]()
