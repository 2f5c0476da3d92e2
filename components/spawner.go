package components

import (
	"github.com/automoto/danmaku/spawntree"
	"github.com/yohamta/donburi"
)

// SpawnerData runs the children of one spawn tree node.
type SpawnerData struct {
	Arena    *spawntree.Arena
	Node     spawntree.NodeID
	Children []spawntree.NodeID // ordered by spawn offset
	Next     int
	Elapsed  float64
	Faction  Faction

	// Loop restarts the children after this many seconds; 0 runs once.
	Loop float64
	// Paused spawners keep their place but emit nothing.
	Paused bool
}

// Done reports whether every child has been emitted and nothing loops.
func (s *SpawnerData) Done() bool {
	return s.Loop <= 0 && s.Next >= len(s.Children)
}

var Spawner = donburi.NewComponentType[SpawnerData]()
