package systems

import (
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/metrics"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/spatial"
	"github.com/automoto/danmaku/spawntree"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves hazard hits on the player, then on enemies.
func UpdateCollisions(ecs *ecs.ECS) {
	w := ecs.World
	svc := services(w)
	if svc == nil || svc.Index == nil {
		return
	}
	ageCollisionTimers(w, clock(w).Delta)
	rebuildIndex(w, svc.Index)

	if player, ok := livePlayer(w); ok {
		resolveHits(w, svc, player, true)
	}

	var enemies []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Despawn.Get(e).Despawning {
			return
		}
		enemies = append(enemies, e)
	})
	for _, e := range enemies {
		resolveHits(w, svc, e, false)
	}
}

func ageCollisionTimers(w donburi.World, dt float64) {
	if dt <= 0 {
		return
	}
	components.Hitbox.Each(w, func(e *donburi.Entry) {
		hb := components.Hitbox.Get(e)
		if hb.DisabledFor > 0 {
			hb.DisabledFor -= dt
			if hb.DisabledFor < 0 {
				hb.DisabledFor = 0
			}
		}
	})
	components.Hazard.Each(w, func(e *donburi.Entry) {
		hz := components.Hazard.Get(e)
		for target, t := range hz.PierceTimers {
			t -= dt
			if t <= 0 {
				delete(hz.PierceTimers, target)
				continue
			}
			hz.PierceTimers[target] = t
		}
	})
}

// rebuildIndex fills both grids with every live hazard and actor.
func rebuildIndex(w donburi.World, idx *spatial.Index) {
	idx.Clear()
	components.Hazard.Each(w, func(e *donburi.Entry) {
		hz := components.Hazard.Get(e)
		if hz.Spent || !e.HasComponent(components.Hitbox) {
			return
		}
		hb := components.Hitbox.Get(e)
		if !hb.Enabled() {
			return
		}
		tag := tags.ResolvEnemyBullet
		if hz.Faction == components.FactionPlayer {
			tag = tags.ResolvPlayerShot
		}
		idx.InsertHazard(e.Entity(), hb.Circle(components.Position.Get(e)), tag)
	})
	if player, ok := livePlayer(w); ok {
		hb := components.Hitbox.Get(player)
		if hb.Enabled() {
			idx.InsertActor(player.Entity(), hb.Circle(components.Position.Get(player)), tags.ResolvPlayer)
		}
	}
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		hb := components.Hitbox.Get(e)
		if components.Despawn.Get(e).Despawning || !hb.Enabled() {
			return
		}
		idx.InsertActor(e.Entity(), hb.Circle(components.Position.Get(e)), tags.ResolvEnemy)
	})
}

// resolveHits tests actor against opposing hazards and applies every hit.
func resolveHits(w donburi.World, svc *components.ServicesData, actor *donburi.Entry, isPlayer bool) {
	hb := components.Hitbox.Get(actor)
	if !hb.Enabled() {
		return
	}
	pos := components.Position.Get(actor)
	circle := hb.Circle(pos)

	tag, faction := tags.ResolvPlayerShot, components.FactionPlayer
	if isPlayer {
		tag, faction = tags.ResolvEnemyBullet, components.FactionEnemy
	}

	// Candidates reuses the index buffer, so copy before acting on hits.
	candidates := append([]donburi.Entity(nil), svc.Index.Candidates(circle, tag)...)
	for _, c := range candidates {
		if !w.Valid(c) {
			continue
		}
		hazard := w.Entry(c)
		if !hazard.HasComponent(components.Hazard) || !hazard.HasComponent(components.Hitbox) {
			continue
		}
		hz := components.Hazard.Get(hazard)
		if hz.Faction != faction || !hz.CanHit(actor.Entity()) {
			continue
		}
		hhb := components.Hitbox.Get(hazard)
		if !hhb.Enabled() || !spatial.Overlaps(circle, hhb.Circle(components.Position.Get(hazard))) {
			continue
		}

		dead := applyHit(w, svc.Queue, actor, hazard, isPlayer)
		// Invulnerability or death ends the pass for this actor.
		if dead || !hb.Enabled() {
			return
		}
	}
}

// applyHit damages actor, applies the hazard's policy and reports whether
// the actor died.
func applyHit(w donburi.World, q *queue.Queue, actor, hazard *donburi.Entry, isPlayer bool) bool {
	hz := components.Hazard.Get(hazard)
	health := components.Health.Get(actor)
	dead := health.Damage(hz.Damage)

	components.DamageEvent.Publish(w, components.DamageNotice{
		Target: actor.Entity(),
		Amount: hz.Damage,
		Player: isPlayer,
	})
	metrics.RecordCollision(hz.Policy.Kind.String())

	hb := components.Hitbox.Get(actor)
	if isPlayer {
		hb.DisabledFor = cfg.Collision.PlayerInvulnerability
	} else {
		hb.DisabledFor = cfg.Collision.EnemyInvulnerability
	}

	switch hz.Policy.Kind {
	case spawntree.DestroySelfAndChildren:
		hz.Spent = true
		q.Enqueue(&factory.DestroyEntity{Entity: hazard.Entity(), Recursive: true})
		spentEffect(w, q, hazard, hz)
	case spawntree.DestroySelf:
		hz.Spent = true
		q.Enqueue(&factory.StripHazard{Entity: hazard.Entity()})
		spentEffect(w, q, hazard, hz)
	case spawntree.Pierce:
		reset := hz.Policy.ResetTime
		if reset <= 0 {
			reset = cfg.Collision.DefaultPierceReset
		}
		if hz.PierceTimers == nil {
			hz.PierceTimers = make(map[donburi.Entity]float64)
		}
		hz.PierceTimers[actor.Entity()] = reset
	}

	switch {
	case isPlayer && dead:
		killPlayer(w, actor)
	case isPlayer:
		components.QueueSFX(w, cfg.SoundPlayerHit)
	case dead:
		killEnemy(w, q, actor)
	default:
		components.QueueSFX(w, cfg.SoundEnemyHit)
	}
	return dead
}

func spentEffect(w donburi.World, q *queue.Queue, hazard *donburi.Entry, hz *components.HazardData) {
	if hz.DeathEffect == "" {
		return
	}
	pos := components.Position.Get(hazard)
	q.Enqueue(&factory.SpawnEffect{X: pos.X, Y: pos.Y, Animatable: hz.DeathEffect, TimeLag: clock(w).Delta})
}
