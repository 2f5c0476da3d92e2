package factory

import (
	"github.com/automoto/danmaku/archetypes"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/motion"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/shared/leveldata"
	"github.com/automoto/danmaku/spawntree"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnEnemy creates a scheduled enemy and starts its attack pattern.
type SpawnEnemy struct {
	Spawn   leveldata.EnemySpawn
	Library spawntree.Library
	// TimeLag is how long before the end of the tick the enemy was due.
	TimeLag float64
	// Created is called with the new entity once it exists.
	Created func(e *donburi.Entry)
}

func (c *SpawnEnemy) EntitiesQueued() int { return 1 }

func (c *SpawnEnemy) Components() []donburi.IComponentType {
	return archetypes.Enemy.Components(c.extra()...)
}

func (c *SpawnEnemy) extra() []donburi.IComponentType {
	extra := []donburi.IComponentType{components.Sprite}
	if c.Spawn.Boss {
		extra = append(extra, tags.Boss)
	}
	return extra
}

func (c *SpawnEnemy) Execute(e *ecs.ECS, q *queue.Queue) {
	s := c.Spawn
	enemy := archetypes.Enemy.Spawn(e, c.extra()...)

	// Enemies move along the root actions of their path pattern.
	var actions []spawntree.Action
	if p, ok := c.Library[s.Path]; ok && p.Valid() {
		actions = p.Arena.Node(p.Root).Actions
	}
	start := gamemath.Point{X: s.X, Y: s.Y}
	path := motion.New(actions, start)
	path.Local = c.TimeLag
	components.Movement.SetValue(enemy, components.MovementData{Path: path, Stamp: -1})
	mv := components.Movement.Get(enemy)
	mv.Path.Begin(nil)
	mv.Path.Step(nil)
	components.Position.Get(enemy).Set(mv.Path.Offset())

	health := s.Health
	if health <= 0 {
		health = cfg.Enemy.DefaultHealth
	}
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.Hitbox.SetValue(enemy, components.HitboxData{Radius: cfg.Enemy.HitboxRadius})
	components.Despawn.SetValue(enemy, components.DespawnData{Born: currentTick(e.World)})
	components.Sprite.SetValue(enemy, newSprite(e.World, s.Name))
	components.Enemy.SetValue(enemy, components.EnemyData{
		Name:         s.Name,
		Pattern:      s.Pattern,
		Score:        s.Score,
		Boss:         s.Boss,
		Drops:        s.Drops,
		DeathActions: deathActions(s),
	})

	if p, ok := c.Library[s.Pattern]; ok {
		StartPattern(q, p, enemy.Entity(), true, start, components.FactionEnemy, c.TimeLag)
	}
	if c.Created != nil {
		c.Created(enemy)
	}
}

func deathActions(s leveldata.EnemySpawn) []components.DeathAction {
	var actions []components.DeathAction
	if s.DeathPattern != "" {
		actions = append(actions, components.SpawnPattern{Name: s.DeathPattern})
	}
	sound := cfg.SoundEnemyDeath
	if s.DeathSound != "" {
		if id, ok := cfg.SoundByProfile(s.DeathSound); ok {
			sound = id
		}
	}
	actions = append(actions, components.PlaySound{Sound: sound})
	if s.DeathEffect != "" {
		actions = append(actions, components.SpawnEffect{Animatable: s.DeathEffect})
	}
	return actions
}

// RunDeathActions queues an enemy's death actions at its position. lag is
// how long before the end of the tick the enemy died.
func RunDeathActions(w donburi.World, q *queue.Queue, lib spawntree.Library, actions []components.DeathAction, at gamemath.Point, lag float64) {
	for _, a := range actions {
		switch a := a.(type) {
		case components.SpawnPattern:
			if p, ok := lib[a.Name]; ok {
				StartPattern(q, p, 0, false, at, components.FactionEnemy, lag)
			}
		case components.PlaySound:
			components.QueueSFX(w, a.Sound)
		case components.SpawnEffect:
			q.Enqueue(&SpawnEffect{X: at.X, Y: at.Y, Animatable: a.Animatable, TimeLag: lag})
		}
	}
}
