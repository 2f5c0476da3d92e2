package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	Score     int
	Attracted bool // once inside the magnet radius it keeps homing
}

var Collectible = donburi.NewComponentType[CollectibleData]()
