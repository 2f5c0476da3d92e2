package gamemath

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Polar returns the cartesian offset for a radius and an angle in degrees.
// 0 degrees points right, 90 degrees points down (screen space).
func Polar(radius, deg float64) Point {
	rad := Radians(deg)
	return Point{X: radius * math.Cos(rad), Y: radius * math.Sin(rad)}
}

// Rotate rotates p around the origin by deg degrees.
func Rotate(p Point, deg float64) Point {
	if deg == 0 {
		return p
	}
	rad := Radians(deg)
	s, c := math.Sincos(rad)
	return Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

// Bezier evaluates the curve that starts at the origin and continues
// through points at t in [0, 1]. Three points give a cubic curve, four a
// quartic one; any count works.
func Bezier(points []Point, t float64) Point {
	n := len(points)
	if n == 0 {
		return Point{}
	}
	t = Clamp(t, 0, 1)

	// De Casteljau over origin + points, on a small stack buffer.
	var buf [8]Point
	work := buf[:0]
	if n+1 > len(buf) {
		work = make([]Point, 0, n+1)
	}
	work = append(work, Point{})
	work = append(work, points...)

	for k := len(work) - 1; k > 0; k-- {
		for i := 0; i < k; i++ {
			work[i] = Point{
				X: work[i].X + (work[i+1].X-work[i].X)*t,
				Y: work[i].Y + (work[i+1].Y-work[i].Y)*t,
			}
		}
	}
	return work[0]
}
