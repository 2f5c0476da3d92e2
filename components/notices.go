package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SpawnNotice is published when the level manager spawns an enemy.
type SpawnNotice struct {
	Entity donburi.Entity
	Name   string
	Boss   bool
}

// DamageNotice is published for every resolved hit.
type DamageNotice struct {
	Target donburi.Entity
	Amount int
	Player bool
}

// DeathNotice is published when the player or an enemy dies.
type DeathNotice struct {
	Entity donburi.Entity
	Player bool
	Boss   bool
	X, Y   float64
}

// ScoreNotice is published when score is awarded.
type ScoreNotice struct {
	Points int
	Total  int
}

var (
	SpawnEvent  = events.NewEventType[SpawnNotice]()
	DamageEvent = events.NewEventType[DamageNotice]()
	DeathEvent  = events.NewEventType[DeathNotice]()
	ScoreEvent  = events.NewEventType[ScoreNotice]()
)
