// Package spatial is the broad phase: uniform grids that bucket hitboxes by
// cell so collision queries only look at nearby candidates.
package spatial

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Circle is a hitbox in world space.
type Circle struct {
	X, Y, R float64
}

// Overlaps is the exact narrow-phase test. Touching circles overlap.
func Overlaps(a, b Circle) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	r := a.R + b.R
	return dx*dx+dy*dy <= r*r
}

// Grid buckets circles into square cells of a resolv.Space. Circles are
// clamped to the map, so anything outside lands in the border cells and
// queries outside the map still find it.
type Grid struct {
	space *resolv.Space
	cell  int
	cols  int
	rows  int

	pools map[string]*objectPool
	used  int
}

// objectPool recycles objects carrying one resolv tag.
type objectPool struct {
	objs []*resolv.Object
	used int
}

// NewGrid creates a grid covering a width × height map.
func NewGrid(width, height float64, cell int) *Grid {
	if cell < 1 {
		cell = 1
	}
	cols := int(math.Ceil(width / float64(cell)))
	rows := int(math.Ceil(height / float64(cell)))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		space: resolv.NewSpace(cols*cell, rows*cell, cell, cell),
		cell:  cell,
		cols:  cols,
		rows:  rows,
		pools: make(map[string]*objectPool),
	}
}

// CellSize returns the side of one cell.
func (g *Grid) CellSize() int {
	return g.cell
}

// Len returns the number of circles inserted since the last Clear.
func (g *Grid) Len() int {
	return g.used
}

// Clear empties every cell. Objects go back to the pool.
func (g *Grid) Clear() {
	for _, p := range g.pools {
		if p.used > 0 {
			g.space.Remove(p.objs[:p.used]...)
		}
		for i := 0; i < p.used; i++ {
			p.objs[i].Data = nil
		}
		p.used = 0
	}
	g.used = 0
}

// Insert registers handle in every cell its circle touches.
func (g *Grid) Insert(handle donburi.Entity, c Circle, tag string) {
	x0, y0, x1, y1 := g.cellRange(c)

	p, ok := g.pools[tag]
	if !ok {
		p = &objectPool{}
		g.pools[tag] = p
	}
	var obj *resolv.Object
	if p.used < len(p.objs) {
		obj = p.objs[p.used]
	} else {
		if tag == "" {
			obj = resolv.NewObject(0, 0, 0, 0)
		} else {
			obj = resolv.NewObject(0, 0, 0, 0, tag)
		}
		p.objs = append(p.objs, obj)
	}
	p.used++
	g.used++

	// The object covers whole cells so it stays consistent with the
	// clamped cell range used for queries.
	obj.X = float64(x0 * g.cell)
	obj.Y = float64(y0 * g.cell)
	obj.W = float64((x1 - x0 + 1) * g.cell)
	obj.H = float64((y1 - y0 + 1) * g.cell)
	obj.Data = handle

	// Add runs obj.Update, which files the object in every cell its
	// bounds touch.
	g.space.Add(obj)
}

// Query appends to out the handle of every circle sharing a cell with c.
// A handle appears once per shared cell.
func (g *Grid) Query(c Circle, out []donburi.Entity) []donburi.Entity {
	x0, y0, x1, y1 := g.cellRange(c)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cell := g.space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if e, ok := obj.Data.(donburi.Entity); ok {
					out = append(out, e)
				}
			}
		}
	}
	return out
}

// QueryTag is Query restricted to circles inserted with tag.
func (g *Grid) QueryTag(c Circle, tag string, out []donburi.Entity) []donburi.Entity {
	x0, y0, x1, y1 := g.cellRange(c)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cell := g.space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if !obj.HasTags(tag) {
					continue
				}
				if e, ok := obj.Data.(donburi.Entity); ok {
					out = append(out, e)
				}
			}
		}
	}
	return out
}

func (g *Grid) cellRange(c Circle) (x0, y0, x1, y1 int) {
	r := math.Abs(c.R)
	x0 = g.clampCol(int(math.Floor((c.X - r) / float64(g.cell))))
	x1 = g.clampCol(int(math.Floor((c.X + r) / float64(g.cell))))
	y0 = g.clampRow(int(math.Floor((c.Y - r) / float64(g.cell))))
	y1 = g.clampRow(int(math.Floor((c.Y + r) / float64(g.cell))))
	return
}

func (g *Grid) clampCol(x int) int {
	return clampInt(x, 0, g.cols-1)
}

func (g *Grid) clampRow(y int) int {
	return clampInt(y, 0, g.rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
