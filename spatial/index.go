package spatial

import (
	"math"

	"github.com/automoto/danmaku/config"
	"github.com/yohamta/donburi"
)

// Index pairs a default grid sized to the map with a coarse grid for
// actors and oversized hazards.
type Index struct {
	Default *Grid
	Large   *Grid

	scratch []donburi.Entity
	seen    map[donburi.Entity]struct{}
}

// NewIndex sizes both grids for a width × height map whose largest hitbox
// radius is maxRadius.
func NewIndex(width, height, maxRadius float64) *Index {
	defCell := int(math.Ceil(math.Max(width, height) / config.Spatial.DefaultCellDivisor))
	if defCell < config.Spatial.MinCellSize {
		defCell = config.Spatial.MinCellSize
	}
	largeCell := int(math.Ceil(2 * maxRadius))
	if largeCell < defCell {
		largeCell = defCell
	}
	return &Index{
		Default: NewGrid(width, height, defCell),
		Large:   NewGrid(width, height, largeCell),
		seen:    make(map[donburi.Entity]struct{}),
	}
}

// Clear empties both grids.
func (idx *Index) Clear() {
	idx.Default.Clear()
	idx.Large.Clear()
}

// InsertHazard puts a hazard in the default grid, or in the large grid if
// it is wider than a default cell.
func (idx *Index) InsertHazard(handle donburi.Entity, c Circle, tag string) {
	if 2*c.R > float64(idx.Default.CellSize()) {
		idx.Large.Insert(handle, c, tag)
		return
	}
	idx.Default.Insert(handle, c, tag)
}

// InsertActor puts a player or enemy in the large grid.
func (idx *Index) InsertActor(handle donburi.Entity, c Circle, tag string) {
	idx.Large.Insert(handle, c, tag)
}

// QueryAll appends candidates from both grids to out.
func (idx *Index) QueryAll(c Circle, out []donburi.Entity) []donburi.Entity {
	out = idx.Default.Query(c, out)
	return idx.Large.Query(c, out)
}

// QueryTag appends candidates carrying tag from both grids to out.
func (idx *Index) QueryTag(c Circle, tag string, out []donburi.Entity) []donburi.Entity {
	out = idx.Default.QueryTag(c, tag, out)
	return idx.Large.QueryTag(c, tag, out)
}

// Candidates is QueryTag with each handle listed once, into a buffer reused
// between calls. A hitbox spanning several cells is returned once per cell
// by the grids. The result is only valid until the next call.
func (idx *Index) Candidates(c Circle, tag string) []donburi.Entity {
	if idx.seen == nil {
		idx.seen = make(map[donburi.Entity]struct{})
	}
	clear(idx.seen)
	found := idx.QueryTag(c, tag, idx.scratch[:0])
	out := found[:0]
	for _, e := range found {
		if _, dup := idx.seen[e]; dup {
			continue
		}
		idx.seen[e] = struct{}{}
		out = append(out, e)
	}
	idx.scratch = out
	return out
}
