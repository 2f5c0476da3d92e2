package spawntree

import "github.com/automoto/danmaku/shared/gamemath"

// Action is one closed-form motion segment of a path. The set of actions
// is closed: Stay, Detach, PolarMove, BezierMove and HomingMove.
type Action interface {
	Duration() float64
	action()
}

// Profile eases a scalar from From to To over an action's duration.
type Profile struct {
	From, To float64
	Ease     string
}

// Const returns a profile that holds v.
func Const(v float64) Profile {
	return Profile{From: v, To: v}
}

// At evaluates the profile at t within an action lasting d.
func (p Profile) At(t, d float64) float64 {
	if p.From == p.To {
		return p.From
	}
	return gamemath.Interpolate(p.Ease, p.From, p.To, t, d)
}

// Stay holds the current offset.
type Stay struct {
	Time float64
}

// Detach stops following the reference chain. It always lasts zero time.
type Detach struct{}

// PolarMove moves around the point where it began. Angles are degrees.
type PolarMove struct {
	Time        float64
	Radius      Profile
	Angle       Profile
	AngleOffset float64
}

// BezierMove follows a curve starting where it began. Points are control
// points relative to that start: three for cubic, four for quartic.
type BezierMove struct {
	Time     float64
	Points   []gamemath.Point
	Rotation float64 // degrees
	Ease     string
}

// HomingMove steers toward the nearest opposing actor. Speed is in pixels
// per second, Strength is the maximum turn rate in degrees per second.
type HomingMove struct {
	Time         float64
	InitialAngle float64 // degrees
	Speed        Profile
	Strength     Profile
}

func (a Stay) Duration() float64       { return a.Time }
func (Detach) Duration() float64       { return 0 }
func (a PolarMove) Duration() float64  { return a.Time }
func (a BezierMove) Duration() float64 { return a.Time }
func (a HomingMove) Duration() float64 { return a.Time }

func (Stay) action()       {}
func (Detach) action()     {}
func (PolarMove) action()  {}
func (BezierMove) action() {}
func (HomingMove) action() {}

// CreatesReference reports whether starting a creates a new motion
// reference at the entity's position.
func CreatesReference(a Action) bool {
	switch a.(type) {
	case Detach, PolarMove, BezierMove, HomingMove:
		return true
	}
	return false
}

// IsDetach reports whether a breaks the reference chain.
func IsDetach(a Action) bool {
	_, ok := a.(Detach)
	return ok
}

// TotalDuration sums the duration of every action.
func TotalDuration(actions []Action) float64 {
	var total float64
	for _, a := range actions {
		if d := a.Duration(); d > 0 {
			total += d
		}
	}
	return total
}

func cloneActions(actions []Action) []Action {
	if actions == nil {
		return nil
	}
	out := make([]Action, len(actions))
	for i, a := range actions {
		if b, ok := a.(BezierMove); ok {
			b.Points = append([]gamemath.Point(nil), b.Points...)
			a = b
		}
		out[i] = a
	}
	return out
}
