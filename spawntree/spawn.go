package spawntree

// SpawnType decides where a child appears relative to its spawner and when.
type SpawnType interface {
	// Offset is the time after the parent appeared at which the child spawns.
	Offset() float64
	spawnType()
}

// SpawnAtPoint spawns at a fixed global point.
type SpawnAtPoint struct {
	X, Y float64
	Time float64
}

// SpawnRelative spawns at an offset from the parent's position at spawn
// time and moves independently afterwards.
type SpawnRelative struct {
	X, Y float64
	Time float64
}

// SpawnAttached spawns at an offset from the parent and keeps following it.
type SpawnAttached struct {
	X, Y float64
	Time float64
}

func (s SpawnAtPoint) Offset() float64  { return s.Time }
func (s SpawnRelative) Offset() float64 { return s.Time }
func (s SpawnAttached) Offset() float64 { return s.Time }

func (SpawnAtPoint) spawnType()  {}
func (SpawnRelative) spawnType() {}
func (SpawnAttached) spawnType() {}

func spawnOffset(s SpawnType) float64 {
	if s == nil {
		return 0
	}
	return s.Offset()
}
