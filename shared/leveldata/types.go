// Package leveldata parses TMX stage files into enemy schedules.
// It has no dependencies on donburi or resolv; pure data only.
package leveldata

// Stage holds everything the level manager needs from a TMX stage.
type Stage struct {
	Name        string
	MapWidth    int
	MapHeight   int
	PlayerSpawn *SpawnPoint
	Enemies     []EnemySpawn // sorted by Time
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y float64
}

// EnemySpawn is one scheduled enemy.
type EnemySpawn struct {
	Name    string
	X, Y    float64
	Time    float64 // stage seconds
	Health  int
	Pattern string // attack pattern name
	Path    string // pattern whose root actions move the enemy
	Score   int
	Boss    bool
	Drops   int // collectibles dropped on death

	// Death actions, all optional
	DeathPattern string
	DeathSound   string
	DeathEffect  string
}
