package gamemath

import "math"

// Point is a 2D position or offset in pixels.
type Point struct {
	X, Y float64
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the euclidean length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// CirclesOverlap reports whether two circles touch or overlap.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	dx := ax - bx
	dy := ay - by
	rs := ar + br
	return dx*dx+dy*dy <= rs*rs
}

// OutsideRect reports whether (x, y) lies further than pad outside the
// rectangle [0, w] x [0, h].
func OutsideRect(x, y, w, h, pad float64) bool {
	return x < -pad || y < -pad || x > w+pad || y > h+pad
}
