package systems

import (
	"math"

	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player by its input and runs its shot spawner
// while firing.
func UpdatePlayer(ecs *ecs.ECS) {
	w := ecs.World
	entry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	dt := clock(w).Delta
	player := components.Player.Get(entry)

	if player.Dead {
		player.DeadTimer += dt
		setShotPaused(w, player, true)
		return
	}

	speed := cfg.Player.Speed
	if player.Focus {
		speed = cfg.Player.FocusSpeed
	}
	in := gamemath.Point{
		X: gamemath.Clamp(player.InputX, -1, 1),
		Y: gamemath.Clamp(player.InputY, -1, 1),
	}
	// Diagonals are no faster than straight moves.
	if l := in.Len(); l > 1 {
		in = in.Scale(1 / l)
	}

	width, height := playfield(w)
	pos := components.Position.Get(entry)
	pos.X = gamemath.Clamp(pos.X+in.X*speed*dt, 0, width)
	pos.Y = gamemath.Clamp(pos.Y+in.Y*speed*dt, 0, height)

	setShotPaused(w, player, !player.Firing)
}

// SetPlayerInput stores the input the next player phase applies.
func SetPlayerInput(w donburi.World, x, y float64, focus, firing bool) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	player.InputX, player.InputY = x, y
	player.Focus = focus
	player.Firing = firing
}

func setShotPaused(w donburi.World, player *components.PlayerData, paused bool) {
	if !player.HasShot || !w.Valid(player.Shot) {
		return
	}
	shot := w.Entry(player.Shot)
	if shot.HasComponent(components.Spawner) {
		components.Spawner.Get(shot).Paused = paused
	}
}

// killPlayer leaves the player in the world, dead.
func killPlayer(w donburi.World, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.Dead = true
	player.DeadTimer = 0
	setShotPaused(w, player, true)

	pos := components.Position.Get(entry)
	components.DeathEvent.Publish(w, components.DeathNotice{
		Entity: entry.Entity(),
		Player: true,
		X:      pos.X,
		Y:      pos.Y,
	})
	components.QueueSFX(w, cfg.SoundPlayerDeath)
}

func playfield(w donburi.World) (float64, float64) {
	if svc := services(w); svc != nil && svc.Width > 0 && svc.Height > 0 {
		return svc.Width, svc.Height
	}
	return float64(cfg.C.Width), float64(cfg.C.Height)
}

// nearestOpponent returns the closest live actor a homing entity of faction
// should steer toward.
func nearestOpponent(w donburi.World, faction components.Faction, from gamemath.Point) (gamemath.Point, bool) {
	if faction == components.FactionEnemy {
		player, ok := livePlayer(w)
		if !ok {
			return gamemath.Point{}, false
		}
		return components.Position.Get(player).Point(), true
	}

	best, found := math.Inf(1), false
	var target gamemath.Point
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Despawn.Get(e).Despawning {
			return
		}
		p := components.Position.Get(e).Point()
		if d := p.Sub(from).Len(); d < best {
			best, target, found = d, p, true
		}
	})
	return target, found
}
