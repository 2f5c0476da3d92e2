package components

import (
	"github.com/automoto/danmaku/assets"
	"github.com/automoto/danmaku/assets/animations"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Name      string
	Handle    assets.Handle
	Animation *animations.Animation
	Rotation  float64
	Alpha     float32
}

var Sprite = donburi.NewComponentType[SpriteData]()
