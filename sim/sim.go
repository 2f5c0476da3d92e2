// Package sim wires the phases of one simulation tick together.
package sim

import (
	"fmt"
	"time"

	"github.com/automoto/danmaku/assets"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/metrics"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/shared/leveldata"
	"github.com/automoto/danmaku/spawntree"
	"github.com/automoto/danmaku/store"
	"github.com/automoto/danmaku/systems"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Options configures a Simulation.
type Options struct {
	Stage   *leveldata.Stage
	Library spawntree.Library
	// PlayerShot names the library pattern the player fires. Empty or
	// unknown names leave the player unarmed.
	PlayerShot  string
	Animatables assets.Animatables
	Sound       assets.SoundPlayer
	Audio       cfg.AudioSettings
	// NoPlayer runs the stage without a player.
	NoPlayer bool
}

// Stats counts what the notifications reported.
type Stats struct {
	Spawned     int
	Hits        int
	PlayerHits  int
	Kills       int
	BossKills   int
	PlayerDied  bool
	ScoreEvents int
}

// Simulation is one running stage.
type Simulation struct {
	ECS   *ecs.ECS
	World *store.World
	Queue *queue.Queue

	player    donburi.Entity
	hasPlayer bool
	stats     Stats
}

var hazardQuery = donburi.NewQuery(filter.Contains(components.Hazard))

// New builds a simulation for opts.Stage. The library is validated against
// the animatables first.
func New(opts Options) (*Simulation, error) {
	if opts.Library == nil {
		opts.Library = spawntree.Library{}
	}
	if opts.Sound == nil {
		opts.Sound = assets.LogPlayer{}
	}
	if err := validate(opts.Library, opts.Animatables); err != nil {
		return nil, err
	}

	w := store.NewWorld()
	s := &Simulation{
		ECS:   ecs.NewECS(w),
		World: w,
		Queue: queue.New(w),
	}

	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	if opts.Stage != nil && opts.Stage.MapWidth > 0 && opts.Stage.MapHeight > 0 {
		width, height = float64(opts.Stage.MapWidth), float64(opts.Stage.MapHeight)
	}
	factory.CreateServices(s.ECS, factory.Services{
		Queue:       s.Queue,
		Animatables: opts.Animatables,
		Sound:       opts.Sound,
		Audio:       opts.Audio,
		MaxRadius:   opts.Library.MaxRadius(),
		Width:       width,
		Height:      height,
	})
	systems.GetOrCreatePause(s.ECS)
	if opts.Stage != nil {
		factory.CreateLevel(s.ECS, opts.Stage, opts.Library)
	}

	// Event types create their queue entity on first use; subscribing here
	// keeps that out of the tick.
	s.subscribe()

	if !opts.NoPlayer {
		x, y := cfg.Player.SpawnX, cfg.Player.SpawnY
		if opts.Stage != nil && opts.Stage.PlayerSpawn != nil {
			x, y = opts.Stage.PlayerSpawn.X, opts.Stage.PlayerSpawn.Y
		}
		shot := opts.Library[opts.PlayerShot]
		s.player = factory.CreatePlayer(s.ECS, s.Queue, x, y, shot).Entity()
		s.hasPlayer = true
		s.Queue.Flush(s.ECS)
	}

	s.ECS.AddSystem(systems.UpdatePause)
	for _, p := range []struct {
		name   string
		system ecs.System
	}{
		{"collision", systems.UpdateCollisions},
		{"level", systems.UpdateLevel},
		{"shadow", systems.UpdateShadowTrails},
		{"motion", updateMotionAndSpawners},
		{"collectible", systems.UpdateCollectibles},
		{"player", systems.UpdatePlayer},
		{"enemy", systems.UpdateEnemies},
		{"despawn", systems.UpdateDespawn},
		{"animation", systems.UpdateAnimations},
	} {
		s.ECS.AddSystem(systems.WithPauseCheck(systems.WithFlush(p.name, p.system)))
	}
	return s, nil
}

func updateMotionAndSpawners(e *ecs.ECS) {
	systems.UpdateMotion(e)
	systems.UpdateSpawners(e)
}

// validate reports the first problem of the first invalid pattern. Without
// animatables the names are not checked.
func validate(lib spawntree.Library, a assets.Animatables) error {
	var known func(string) bool
	if a != nil {
		known = func(name string) bool {
			_, _, ok := a.Resolve(name)
			return ok
		}
	}
	problems := lib.Validate(known)
	for _, name := range lib.Names() {
		if errs := problems[name]; len(errs) > 0 {
			return fmt.Errorf("pattern %q: %w", name, errs[0])
		}
	}
	return nil
}

func (s *Simulation) subscribe() {
	components.SpawnEvent.Subscribe(s.World, func(_ donburi.World, _ components.SpawnNotice) {
		s.stats.Spawned++
	})
	components.DamageEvent.Subscribe(s.World, func(_ donburi.World, n components.DamageNotice) {
		s.stats.Hits++
		if n.Player {
			s.stats.PlayerHits++
		}
	})
	components.DeathEvent.Subscribe(s.World, func(_ donburi.World, n components.DeathNotice) {
		switch {
		case n.Player:
			s.stats.PlayerDied = true
		case n.Boss:
			s.stats.Kills++
			s.stats.BossKills++
		default:
			s.stats.Kills++
		}
	})
	components.ScoreEvent.Subscribe(s.World, func(_ donburi.World, _ components.ScoreNotice) {
		s.stats.ScoreEvents++
	})
}

// Update advances the simulation by dt seconds: every phase in order, each
// followed by a queue flush, then notifications and audio.
func (s *Simulation) Update(dt float64) {
	start := time.Now()
	if entry, ok := components.Clock.First(s.World); ok {
		c := components.Clock.Get(entry)
		if !systems.IsPaused(s.ECS) {
			c.Delta = dt
			c.Tick++
		} else {
			c.Delta = 0
		}
	}

	s.ECS.Update()
	events.ProcessAllEvents(s.World)
	systems.UpdateAudio(s.ECS)

	metrics.RecordTick(time.Since(start))
	metrics.UpdateEntityCounts(s.World.Len(), hazardQuery.Count(s.World))
}

// SetInput sets the player's input for the next tick.
func (s *Simulation) SetInput(x, y float64, focus, firing bool) {
	systems.SetPlayerInput(s.World, x, y, focus, firing)
}

// Pause holds every gameplay phase until Resume.
func (s *Simulation) Pause() { systems.SetPaused(s.ECS, true) }

// Resume continues after Pause.
func (s *Simulation) Resume() { systems.SetPaused(s.ECS, false) }

// Tick returns the number of ticks simulated.
func (s *Simulation) Tick() int {
	entry, ok := components.Clock.First(s.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Tick + 1
}

// Level returns the level state, or nil without a stage.
func (s *Simulation) Level() *components.LevelData {
	entry, ok := components.Level.First(s.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// Score returns the stage score.
func (s *Simulation) Score() int {
	if lvl := s.Level(); lvl != nil {
		return lvl.Score
	}
	return 0
}

// Cleared reports whether the stage is over.
func (s *Simulation) Cleared() bool {
	lvl := s.Level()
	return lvl != nil && lvl.Cleared
}

// Player returns the player entry, if there is one.
func (s *Simulation) Player() (*donburi.Entry, bool) {
	if !s.hasPlayer || !s.World.Valid(s.player) {
		return nil, false
	}
	return s.World.Entry(s.player), true
}

// PlayerDead reports whether the player has died.
func (s *Simulation) PlayerDead() bool {
	p, ok := s.Player()
	return ok && components.Player.Get(p).Dead
}

// Stats returns the notification counters.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// Bullets returns the number of live hazards.
func (s *Simulation) Bullets() int {
	return hazardQuery.Count(s.World)
}
