package components

import (
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PositionData is the global position, written once per tick by motion.
type PositionData struct {
	X, Y float64
}

func (p *PositionData) Point() gamemath.Point {
	return gamemath.Point{X: p.X, Y: p.Y}
}

func (p *PositionData) Set(pt gamemath.Point) {
	p.X, p.Y = pt.X, pt.Y
}

var Position = donburi.NewComponentType[PositionData]()
