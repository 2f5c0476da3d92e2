package components

import "github.com/yohamta/donburi"

// PauseData holds the simulation (singleton component). While paused the
// gameplay phases do not run and stage time stands still.
type PauseData struct {
	IsPaused bool
	// PausedTicks counts ticks skipped since the last pause.
	PausedTicks int
}

var Pause = donburi.NewComponentType[PauseData]()
