package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Input, written by whoever drives the simulation
	InputX, InputY float64 // -1..1 per axis
	Focus          bool
	Firing         bool

	Dead      bool
	DeadTimer float64 // seconds since death

	Shot    donburi.Entity // the player's shot spawner
	HasShot bool
}

var Player = donburi.NewComponentType[PlayerData]()
