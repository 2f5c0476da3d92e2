package gamemath

import "github.com/tanema/gween/ease"

var easings = map[string]ease.TweenFunc{
	"":           ease.Linear,
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
}

// HasEasing reports whether name is a known easing function.
func HasEasing(name string) bool {
	_, ok := easings[name]
	return ok
}

// Ease returns the easing function registered under name, falling back to
// linear for unknown names.
func Ease(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.Linear
}

// Interpolate eases from -> to over duration d at time t.
func Interpolate(name string, from, to, t, d float64) float64 {
	if d <= 0 || t >= d {
		return to
	}
	if t <= 0 {
		return from
	}
	fn := Ease(name)
	return float64(fn(float32(t), float32(from), float32(to-from), float32(d)))
}
