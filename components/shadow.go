package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ShadowTrailData makes an entity leave fading copies behind it.
type ShadowTrailData struct {
	Interval float64
	Lifespan float64
	Timer    float64 // seconds until the next shadow
}

var ShadowTrail = donburi.NewComponentType[ShadowTrailData]()

// ShadowData is one fading copy.
type ShadowData struct {
	Fade *gween.Tween
}

var Shadow = donburi.NewComponentType[ShadowData]()
