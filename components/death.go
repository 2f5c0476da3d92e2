package components

import "github.com/automoto/danmaku/config"

// DeathAction runs where an enemy dies. The set is closed: SpawnPattern,
// PlaySound and SpawnEffect.
type DeathAction interface {
	deathAction()
}

// SpawnPattern starts a named pattern at the death position.
type SpawnPattern struct {
	Name string
}

// PlaySound queues a sound.
type PlaySound struct {
	Sound config.SoundID
}

// SpawnEffect shows an animatable for one cycle of its animation.
type SpawnEffect struct {
	Animatable string
}

func (SpawnPattern) deathAction() {}
func (PlaySound) deathAction()    {}
func (SpawnEffect) deathAction()  {}
