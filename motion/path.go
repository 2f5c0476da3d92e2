// Package motion evaluates action sequences as closed-form offsets from a
// reference point. It knows nothing about entities; the motion system feeds
// it time and reference positions.
package motion

import (
	"math"

	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/spawntree"
)

// Transition reports the start of an action.
type Transition struct {
	Action spawntree.Action
	Index  int
	// Lag is how much local time has passed since the action started.
	Lag float64
}

// Path is the motion state of one entity. Offsets are relative to the
// entity's reference, or to the world origin when it has none.
type Path struct {
	Actions []spawntree.Action
	Index   int     // current action; len(Actions) once finished
	Start   float64 // local time the current action started
	Local   float64 // local time since spawn
	Base    gamemath.Point

	// Homing state of the current HomingMove
	Heading    float64 // radians
	Homing     gamemath.Point
	HomingTime float64 // local time Homing is integrated up to
}

// New creates a path that starts at base.
func New(actions []spawntree.Action, base gamemath.Point) Path {
	return Path{Actions: actions, Base: base}
}

// Current returns the running action.
func (p *Path) Current() (spawntree.Action, bool) {
	if p.Index < 0 || p.Index >= len(p.Actions) {
		return nil, false
	}
	return p.Actions[p.Index], true
}

// Finished reports whether every action has run.
func (p *Path) Finished() bool {
	return p.Index >= len(p.Actions)
}

// Begin reports the start of the first action. Spawning calls it once.
func (p *Path) Begin(start func(Transition)) {
	a, ok := p.Current()
	if !ok {
		return
	}
	p.enter(a)
	if start != nil {
		start(Transition{Action: a, Index: p.Index, Lag: p.Local - p.Start})
	}
}

// Tick adds dt to local time without moving between actions.
func (p *Path) Tick(dt float64) {
	p.Local += dt
}

// Step moves past every action whose duration local time exceeds.
// Zero-duration actions are passed in the same call. Base is moved to the
// end of each finished action before start is called for the next one.
func (p *Path) Step(start func(Transition)) {
	for {
		a, ok := p.Current()
		if !ok {
			return
		}
		d := math.Max(a.Duration(), 0)
		if d > 0 && p.Local-p.Start <= d {
			return
		}
		if h, ok := a.(spawntree.HomingMove); ok {
			p.integrateHoming(h, p.Start+d)
		}
		p.Base = p.Base.Add(p.segment(a, d))
		p.Index++
		p.Start += d

		next, ok := p.Current()
		if !ok {
			return
		}
		p.enter(next)
		if start != nil {
			start(Transition{Action: next, Index: p.Index, Lag: p.Local - p.Start})
		}
	}
}

func (p *Path) enter(a spawntree.Action) {
	if h, ok := a.(spawntree.HomingMove); ok {
		p.Heading = gamemath.Radians(h.InitialAngle)
		p.Homing = gamemath.Point{}
		p.HomingTime = p.Start
	}
}

// Rebase moves the origin of the current action.
func (p *Path) Rebase(base gamemath.Point) {
	p.Base = base
}

// Offset returns the offset from the reference at the current local time.
func (p *Path) Offset() gamemath.Point {
	return p.OffsetAt(p.Local)
}

// OffsetAt returns the offset at local time t along the current action.
// Times before the action started clamp to its start.
func (p *Path) OffsetAt(t float64) gamemath.Point {
	a, ok := p.Current()
	if !ok {
		return p.Base
	}
	return p.Base.Add(p.segment(a, t-p.Start))
}

// segment is the offset of a from its own start point after t seconds.
func (p *Path) segment(a spawntree.Action, t float64) gamemath.Point {
	d := a.Duration()
	t = gamemath.Clamp(t, 0, math.Max(d, 0))

	switch a := a.(type) {
	case spawntree.PolarMove:
		r := a.Radius.At(t, d)
		deg := a.Angle.At(t, d) + a.AngleOffset
		return gamemath.Polar(r, deg)
	case spawntree.BezierMove:
		u := 1.0
		if d > 0 {
			u = gamemath.Interpolate(a.Ease, 0, 1, t, d)
		}
		return gamemath.Rotate(gamemath.Bezier(a.Points, u), a.Rotation)
	case spawntree.HomingMove:
		// Integrated part plus a straight extrapolation along the heading.
		extra := t - (p.HomingTime - p.Start)
		speed := a.Speed.At(t, d)
		dir := gamemath.Point{X: math.Cos(p.Heading), Y: math.Sin(p.Heading)}
		return p.Homing.Add(dir.Scale(speed * extra))
	}
	return gamemath.Point{}
}

// Steer integrates the running HomingMove up to local time. from is the
// entity's global position, target the global position it homes on; when
// hasTarget is false the heading is kept.
func (p *Path) Steer(from, target gamemath.Point, hasTarget bool) {
	a, ok := p.Current()
	if !ok {
		return
	}
	h, ok := a.(spawntree.HomingMove)
	if !ok {
		return
	}
	end := math.Min(p.Local, p.Start+h.Time)
	dt := end - p.HomingTime
	if dt <= 0 {
		return
	}
	if hasTarget {
		desired := math.Atan2(target.Y-from.Y, target.X-from.X)
		turn := gamemath.Radians(h.Strength.At(p.HomingTime-p.Start, h.Time)) * dt
		p.Heading = gamemath.SteerAngle(p.Heading, desired, turn)
	}
	p.integrateHoming(h, end)
}

func (p *Path) integrateHoming(h spawntree.HomingMove, until float64) {
	dt := until - p.HomingTime
	if dt <= 0 {
		return
	}
	speed := h.Speed.At(p.HomingTime-p.Start, h.Time)
	dir := gamemath.Point{X: math.Cos(p.Heading), Y: math.Sin(p.Heading)}
	p.Homing = p.Homing.Add(dir.Scale(speed * dt))
	p.HomingTime = until
}
