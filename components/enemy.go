package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Name    string
	Pattern string
	Score   int
	Boss    bool
	Drops   int

	DeathActions []DeathAction
}

var Enemy = donburi.NewComponentType[EnemyData]()
