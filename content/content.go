// Package content is the built-in demo content: animatables and the
// pattern library the stages refer to by name.
package content

import (
	"fmt"

	"github.com/automoto/danmaku/assets"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/shared/gamemath"
	st "github.com/automoto/danmaku/spawntree"
)

// PlayerShot is the pattern the player fires.
const PlayerShot = "player_shot"

// Catalog returns the demo animatables.
func Catalog() *assets.Catalog {
	return assets.NewCatalog(
		assets.Animatable{Name: "player", First: 0, Last: 3, FPS: 8, Loop: true},
		assets.Animatable{Name: "fairy", First: 0, Last: 3, FPS: 8, Loop: true},
		assets.Animatable{Name: "boss", First: 0, Last: 7, FPS: 10, Loop: true},
		assets.Animatable{Name: "orb", First: 0, Last: 1, FPS: 6, Loop: true},
		assets.Animatable{Name: "rice", First: 0, Last: 0, FPS: 1, Loop: true},
		assets.Animatable{Name: "shot", First: 0, Last: 0, FPS: 1, Loop: true},
		assets.Animatable{Name: "pop", First: 0, Last: 5, FPS: 20},
		assets.Animatable{Name: "explosion", First: 0, Last: 11, FPS: 24},
	)
}

// Library returns the demo patterns: attack patterns, enemy paths and the
// player's shot.
func Library() st.Library {
	return st.Library{
		"aimed":    aimed(),
		"spiral":   spiral(),
		"burst":    burst(),
		PlayerShot: playerShot(),
		"descend":  path(descend()...),
		"swoop":    path(swoop()...),
		"hover":    path(hover()...),
	}
}

// aimed fires a three-way fan of slowly homing orbs every 1.2 seconds.
func aimed() st.Pattern {
	a := st.NewArena()
	orb := a.AddModel(st.BulletModel{
		Name:        "orb",
		Radius:      4,
		Damage:      1,
		Sprite:      "orb",
		DeathEffect: "pop",
	})
	root := a.AddNode(st.Node{Name: "aimed", Spawn: st.SpawnAttached{}, Repeat: 1.2})
	for i, spread := range []float64{-15, 0, 15} {
		a.AddChild(root, st.Node{
			Name:     fmt.Sprintf("aimed-%d", i),
			IsBullet: true,
			Spawn:    st.SpawnRelative{Time: 0.2},
			Actions: []st.Action{
				st.HomingMove{Time: 5, InitialAngle: 90 + spread, Speed: st.Const(140), Strength: st.Const(25)},
			},
			Model:   orb,
			Inherit: st.InheritRadius | st.InheritDamage | st.InheritPolicy | st.InheritAnimatables,
		})
	}
	return st.Pattern{Arena: a, Root: root}
}

// spiral sweeps twelve rice bullets around the spawner, each orbiting
// outward before it detaches and flies straight.
func spiral() st.Pattern {
	a := st.NewArena()
	rice := a.AddModel(st.BulletModel{
		Name:           "rice",
		Radius:         3,
		Damage:         1,
		Sprite:         "rice",
		ShadowInterval: 0.05,
		ShadowLifespan: 0.2,
	})
	root := a.AddNode(st.Node{Name: "spiral", Spawn: st.SpawnAttached{}, Repeat: 1.5})
	for i := 0; i < 12; i++ {
		angle := float64(i) * 30
		a.AddChild(root, st.Node{
			Name:     fmt.Sprintf("spiral-%d", i),
			IsBullet: true,
			Spawn:    st.SpawnAttached{Time: float64(i) * 0.08},
			Actions: []st.Action{
				st.PolarMove{
					Time:   1,
					Radius: st.Profile{From: 0, To: 60, Ease: "outQuad"},
					Angle:  st.Profile{From: angle, To: angle + 90},
				},
				st.Detach{},
				st.PolarMove{Time: 4, Radius: st.Profile{From: 0, To: 480}, Angle: st.Const(angle + 90)},
			},
			Model:   rice,
			Inherit: st.InheritAll &^ st.InheritActions &^ st.InheritDespawnTime,
		})
	}
	return st.Pattern{Arena: a, Root: root}
}

// burst scatters sixteen orbs from where it starts; a hit removes an orb
// together with the spark it carries.
func burst() st.Pattern {
	a := st.NewArena()
	root := a.AddNode(st.Node{Name: "burst"})
	for i := 0; i < 16; i++ {
		angle := float64(i) * 22.5
		orb := a.AddChild(root, st.Node{
			Name:        fmt.Sprintf("burst-%d", i),
			IsBullet:    true,
			Radius:      5,
			Damage:      1,
			OnCollision: st.CollisionPolicy{Kind: st.DestroySelfAndChildren},
			Sprite:      "orb",
			Spawn:       st.SpawnRelative{},
			Actions: []st.Action{
				st.PolarMove{Time: 3, Radius: st.Profile{From: 0, To: 300, Ease: "outCubic"}, Angle: st.Const(angle)},
				st.Stay{Time: 1},
			},
		})
		a.AddChild(orb, st.Node{
			Name:        fmt.Sprintf("burst-%d-spark", i),
			IsBullet:    true,
			Radius:      2,
			Damage:      1,
			OnCollision: st.CollisionPolicy{Kind: st.Pierce, ResetTime: 0.5},
			Sprite:      "rice",
			Spawn:       st.SpawnAttached{Time: 0.5},
			Actions: []st.Action{
				st.PolarMove{Time: 3, Radius: st.Const(12), Angle: st.Profile{From: 0, To: 720}},
			},
		})
	}
	return st.Pattern{Arena: a, Root: root}
}

// playerShot fires two shots straight up every shot interval.
func playerShot() st.Pattern {
	a := st.NewArena()
	root := a.AddNode(st.Node{
		Name:   PlayerShot,
		Spawn:  st.SpawnAttached{},
		Repeat: cfg.Player.ShotInterval,
	})
	travel := float64(cfg.C.Height) + 64
	for i, dx := range []float64{-8, 8} {
		a.AddChild(root, st.Node{
			Name:     fmt.Sprintf("%s-%d", PlayerShot, i),
			IsBullet: true,
			Radius:   cfg.Player.ShotRadius,
			Damage:   cfg.Player.ShotDamage,
			Sprite:   "shot",
			Spawn:    st.SpawnRelative{X: dx, Y: -10},
			Actions: []st.Action{
				st.PolarMove{Time: travel / cfg.Player.ShotSpeed, Radius: st.Profile{From: 0, To: travel}, Angle: st.Const(-90)},
			},
		})
	}
	return st.Pattern{Arena: a, Root: root}
}

// path wraps enemy movement as a single node pattern.
func path(actions ...st.Action) st.Pattern {
	a := st.NewArena()
	root := a.AddNode(st.Node{Name: "path", Actions: actions})
	return st.Pattern{Arena: a, Root: root}
}

// descend moves in, waits, then leaves through the top.
func descend() []st.Action {
	return []st.Action{
		st.BezierMove{Time: 2, Points: []gamemath.Point{{X: 0, Y: 60}, {X: 0, Y: 100}, {X: 0, Y: 120}}, Ease: "outQuad"},
		st.Stay{Time: 6},
		st.BezierMove{Time: 3, Points: []gamemath.Point{{X: 0, Y: -40}, {X: 0, Y: -200}, {X: 0, Y: -320}}, Ease: "inQuad"},
	}
}

// swoop curves across the field and out at the bottom.
func swoop() []st.Action {
	return []st.Action{
		st.BezierMove{Time: 8, Points: []gamemath.Point{{X: 120, Y: 200}, {X: 240, Y: 200}, {X: 360, Y: 620}}},
	}
}

// hover drops in and sways in place.
func hover() []st.Action {
	return []st.Action{
		st.BezierMove{Time: 3, Points: []gamemath.Point{{X: 0, Y: 40}, {X: 0, Y: 80}, {X: 0, Y: 100}}, Ease: "outCubic"},
		st.PolarMove{Time: 60, Radius: st.Profile{From: 0, To: 40, Ease: "outSine"}, Angle: st.Profile{From: 0, To: 3600}},
	}
}
