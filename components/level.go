package components

import (
	"github.com/automoto/danmaku/shared/leveldata"
	"github.com/automoto/danmaku/spawntree"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Stage     *leveldata.Stage
	Library   spawntree.Library
	Time      float64 // stage seconds
	NextEnemy int     // index into Stage.Enemies
	Score     int
	Cleared   bool

	Boss    donburi.Entity
	HasBoss bool
}

var Level = donburi.NewComponentType[LevelData]()
