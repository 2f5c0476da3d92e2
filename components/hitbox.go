package components

import (
	"github.com/automoto/danmaku/spatial"
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	OffsetX, OffsetY float64
	Radius           float64
	DisabledFor      float64 // seconds; disabled hitboxes are never queried
}

func (h *HitboxData) Enabled() bool {
	return h.DisabledFor <= 0 && h.Radius > 0
}

// Circle places the hitbox at pos.
func (h *HitboxData) Circle(pos *PositionData) spatial.Circle {
	return spatial.Circle{X: pos.X + h.OffsetX, Y: pos.Y + h.OffsetY, R: h.Radius}
}

var Hitbox = donburi.NewComponentType[HitboxData]()
