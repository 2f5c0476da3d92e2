package systems

import (
	"math"
	"testing"

	"github.com/automoto/danmaku/assets"
	"github.com/automoto/danmaku/components"
	cfg "github.com/automoto/danmaku/config"
	"github.com/automoto/danmaku/queue"
	"github.com/automoto/danmaku/shared/gamemath"
	"github.com/automoto/danmaku/shared/leveldata"
	"github.com/automoto/danmaku/spawntree"
	"github.com/automoto/danmaku/store"
	"github.com/automoto/danmaku/systems/factory"
	"github.com/automoto/danmaku/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

type fixture struct {
	ecs   *ecs.ECS
	w     *store.World
	q     *queue.Queue
	sound *assets.Recorder
}

func newFixture() *fixture {
	w := store.NewWorld()
	f := &fixture{ecs: ecs.NewECS(w), w: w, q: queue.New(w), sound: &assets.Recorder{}}
	factory.CreateServices(f.ecs, factory.Services{
		Queue:     f.q,
		Sound:     f.sound,
		Audio:     cfg.AudioSettings{Volume: 1},
		MaxRadius: 16,
		Width:     384,
		Height:    448,
	})
	return f
}

// run advances the clock by dt and runs each phase followed by a flush.
func (f *fixture) run(dt float64, phases ...ecs.System) {
	entry, _ := components.Clock.First(f.w)
	c := components.Clock.Get(entry)
	c.Delta = dt
	c.Tick++
	for _, p := range phases {
		WithFlush("test", p)(f.ecs)
	}
}

func (f *fixture) count(cs ...donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(cs...)).Count(f.w)
}

// spawn starts p as a main pattern at (x, y) and returns its root.
func (f *fixture) spawn(p spawntree.Pattern, x, y float64, faction components.Faction) donburi.Entity {
	var root donburi.Entity
	f.q.Enqueue(&factory.SpawnFromParent{
		Arena:     p.Arena,
		Node:      p.Root,
		ParentPos: gamemath.Point{X: x, Y: y},
		Faction:   faction,
		Main:      true,
		Created:   func(e *donburi.Entry) { root = e.Entity() },
	})
	f.q.Flush(f.ecs)
	return root
}

func (f *fixture) bullet(x, y float64, faction components.Faction, policy spawntree.CollisionPolicy) donburi.Entity {
	a := spawntree.NewArena()
	root := a.AddNode(spawntree.Node{
		IsBullet:    true,
		Radius:      4,
		Damage:      1,
		OnCollision: policy,
		Actions:     []spawntree.Action{spawntree.Stay{Time: 10}},
	})
	return f.spawn(spawntree.Pattern{Arena: a, Root: root}, x, y, faction)
}

func (f *fixture) enemy(s leveldata.EnemySpawn) *donburi.Entry {
	var enemy *donburi.Entry
	f.q.Enqueue(&factory.SpawnEnemy{
		Spawn:   s,
		Created: func(e *donburi.Entry) { enemy = e },
	})
	f.q.Flush(f.ecs)
	return f.w.Entry(enemy.Entity())
}

func (f *fixture) player(x, y float64) *donburi.Entry {
	return factory.CreatePlayer(f.ecs, f.q, x, y, spawntree.Pattern{})
}

func position(e *donburi.Entry) gamemath.Point {
	return components.Position.Get(e).Point()
}

func near(a, b gamemath.Point) bool {
	return math.Abs(a.X-b.X) < 1e-4 && math.Abs(a.Y-b.Y) < 1e-4
}

func TestPierceRehitWindow(t *testing.T) {
	f := newFixture()
	enemy := f.enemy(leveldata.EnemySpawn{Name: "target", X: 100, Y: 100, Health: 10})
	f.bullet(100, 100, components.FactionPlayer, spawntree.CollisionPolicy{Kind: spawntree.Pierce, ResetTime: 0.5})

	health := func() int { return components.Health.Get(enemy).Current }
	f.run(0.25, UpdateCollisions)
	if health() != 9 {
		t.Fatalf("after first hit health = %d, want 9", health())
	}
	f.run(0.25, UpdateCollisions)
	if health() != 9 {
		t.Fatalf("hit again inside the pierce window: health = %d", health())
	}
	f.run(0.25, UpdateCollisions)
	if health() != 8 {
		t.Errorf("after the window health = %d, want 8", health())
	}
}

func TestDestroySelfAndChildrenRemovesSubtree(t *testing.T) {
	f := newFixture()
	player := f.player(100, 100)

	a := spawntree.NewArena()
	root := a.AddNode(spawntree.Node{
		IsBullet:    true,
		Radius:      4,
		Damage:      1,
		OnCollision: spawntree.CollisionPolicy{Kind: spawntree.DestroySelfAndChildren},
		Actions:     []spawntree.Action{spawntree.Stay{Time: 10}},
	})
	a.AddChild(root, spawntree.Node{
		Spawn:   spawntree.SpawnAttached{X: 30},
		Actions: []spawntree.Action{spawntree.Stay{Time: 10}},
	})
	f.spawn(spawntree.Pattern{Arena: a, Root: root}, 100, 100, components.FactionEnemy)
	if got := f.count(components.Movement); got != 2 {
		t.Fatalf("%d moving entities before the hit, want 2", got)
	}

	f.run(1.0/60, UpdateCollisions)
	if got := f.count(components.Movement); got != 0 {
		t.Errorf("%d moving entities after the hit, want 0", got)
	}
	if h := components.Health.Get(player).Current; h != cfg.Player.Health-1 {
		t.Errorf("player health = %d, want %d", h, cfg.Player.Health-1)
	}
	if hb := components.Hitbox.Get(player); hb.Enabled() {
		t.Error("player is not invulnerable after a hit")
	}
}

func TestDestroySelfStripsBullet(t *testing.T) {
	f := newFixture()
	f.enemy(leveldata.EnemySpawn{X: 50, Y: 50, Health: 5})
	shot := f.bullet(50, 50, components.FactionPlayer, spawntree.CollisionPolicy{Kind: spawntree.DestroySelf})

	f.run(1.0/60, UpdateCollisions)
	if !f.w.Valid(shot) {
		t.Fatal("destroy-self removed the entity")
	}
	entry := f.w.Entry(shot)
	if entry.HasComponent(components.Hazard) || entry.HasComponent(tags.PlayerShot) {
		t.Error("stripped shot still hazardous")
	}
}

func TestInvulnerablePlayerTakesOneHitPerTick(t *testing.T) {
	f := newFixture()
	player := f.player(100, 100)
	for i := 0; i < 3; i++ {
		f.bullet(100, 100, components.FactionEnemy, spawntree.CollisionPolicy{Kind: spawntree.Pierce})
	}
	f.run(1.0/60, UpdateCollisions)
	if h := components.Health.Get(player).Current; h != cfg.Player.Health-1 {
		t.Errorf("player health = %d, want one hit", h)
	}
}

func TestLethalHitOnPlayer(t *testing.T) {
	f := newFixture()
	player := f.player(100, 100)
	components.Health.Get(player).Current = 1
	f.bullet(100, 100, components.FactionEnemy, spawntree.CollisionPolicy{})

	var deaths []components.DeathNotice
	components.DeathEvent.Subscribe(f.w, func(_ donburi.World, n components.DeathNotice) {
		deaths = append(deaths, n)
	})

	f.run(1.0/60, UpdateCollisions)
	events.ProcessAllEvents(f.w)

	if !f.w.Valid(player.Entity()) {
		t.Fatal("dead player was removed")
	}
	if !components.Player.Get(player).Dead {
		t.Error("player not marked dead")
	}
	if len(deaths) != 1 || !deaths[0].Player {
		t.Errorf("death notices = %+v, want one for the player", deaths)
	}
}

func TestLethalHitOnEnemy(t *testing.T) {
	f := newFixture()
	factory.CreateLevel(f.ecs, &leveldata.Stage{}, spawntree.Library{})
	enemy := f.enemy(leveldata.EnemySpawn{X: 60, Y: 60, Health: 1, Score: 100, Drops: 2})
	f.bullet(60, 60, components.FactionPlayer, spawntree.CollisionPolicy{})

	f.run(1.0/60, UpdateCollisions)
	if !components.Despawn.Get(enemy).Despawning {
		t.Error("dead enemy not despawning")
	}
	if got := level(f.w).Score; got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
	if got := f.count(components.Collectible); got != 2 {
		t.Errorf("%d drops, want 2", got)
	}

	UpdateAudio(f.ecs)
	played := f.sound.Played()
	if len(played) != 1 || played[0].Profile != "enemy_death" {
		t.Errorf("played %+v, want enemy_death", played)
	}

	f.run(1.0/60, UpdateDespawn)
	if f.w.Valid(enemy.Entity()) {
		t.Error("dead enemy survived the despawn phase")
	}
}

func TestDespawnTimerAndChildren(t *testing.T) {
	f := newFixture()
	a := spawntree.NewArena()
	root := a.AddNode(spawntree.Node{Name: "spawner"})
	a.AddChild(root, spawntree.Node{
		IsBullet: true,
		Radius:   1,
		Actions:  []spawntree.Action{spawntree.Stay{Time: 0.5}},
	})
	spawner := f.spawn(spawntree.Pattern{Arena: a, Root: root}, 100, 100, components.FactionEnemy)

	f.run(0.25, UpdateDespawn)
	if got := f.count(components.Hazard); got != 1 {
		t.Fatalf("bullet gone early: %d hazards", got)
	}
	f.run(0.25, UpdateDespawn)
	if got := f.count(components.Hazard); got != 0 {
		t.Fatalf("bullet outlived its lifetime: %d hazards", got)
	}
	if !f.w.Valid(spawner) {
		t.Fatal("spawner removed in the same phase as its last child")
	}
	f.run(0.25, UpdateDespawn)
	if f.w.Valid(spawner) {
		t.Error("spawner outlived its last child")
	}
}

func TestBulletLeavingMapDespawns(t *testing.T) {
	f := newFixture()
	inside := f.bullet(100, 100, components.FactionEnemy, spawntree.CollisionPolicy{})
	outside := f.bullet(-500, 100, components.FactionEnemy, spawntree.CollisionPolicy{})

	f.run(1.0/60, UpdateDespawn)
	if !f.w.Valid(inside) {
		t.Error("bullet inside the map despawned")
	}
	if f.w.Valid(outside) {
		t.Error("bullet outside the map survived")
	}
}

func TestMotionFollowsSimpleReference(t *testing.T) {
	f := newFixture()
	a := spawntree.NewArena()
	root := a.AddNode(spawntree.Node{Name: "center", Actions: []spawntree.Action{spawntree.Stay{Time: 10}}})
	a.AddChild(root, spawntree.Node{
		Spawn: spawntree.SpawnAttached{},
		Actions: []spawntree.Action{
			spawntree.PolarMove{Time: 1, Radius: spawntree.Profile{From: 0, To: 50}, Angle: spawntree.Const(0)},
		},
	})
	center := f.spawn(spawntree.Pattern{Arena: a, Root: root}, 100, 100, components.FactionEnemy)
	if got := f.count(tags.SimpleReference); got != 1 {
		t.Fatalf("%d simple references, want 1", got)
	}

	f.run(0.5, UpdateMotion)
	child := f.w.Entry(components.Lineage.Get(f.w.Entry(center)).Children[0])
	if got := position(child); !near(got, gamemath.Point{X: 125, Y: 100}) {
		t.Errorf("orbiter at %v, want (125, 100)", got)
	}
}

func TestSpawnersEmitOnSchedule(t *testing.T) {
	f := newFixture()
	a := spawntree.NewArena()
	root := a.AddNode(spawntree.Node{Name: "delayed"})
	a.AddChild(root, spawntree.Node{
		IsBullet: true,
		Radius:   1,
		Spawn:    spawntree.SpawnRelative{Time: 0.3},
		Actions:  []spawntree.Action{spawntree.Stay{Time: 1}},
	})
	f.spawn(spawntree.Pattern{Arena: a, Root: root}, 0, 0, components.FactionEnemy)

	f.run(0.2, UpdateSpawners)
	if got := f.count(components.Hazard); got != 0 {
		t.Fatalf("child spawned at 0.2s")
	}
	f.run(0.2, UpdateSpawners)
	if got := f.count(components.Hazard); got != 1 {
		t.Errorf("%d children at 0.4s, want 1", got)
	}
}

func TestEnemyLeavingMapGivesNoScore(t *testing.T) {
	f := newFixture()
	factory.CreateLevel(f.ecs, &leveldata.Stage{}, spawntree.Library{})
	enemy := f.enemy(leveldata.EnemySpawn{X: -200, Y: 0, Score: 500})

	f.run(1.0/60, UpdateEnemies)
	if !components.Despawn.Get(enemy).Despawning {
		t.Error("escaped enemy not despawning")
	}
	if got := level(f.w).Score; got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestCollectibleMagnetAndPickup(t *testing.T) {
	f := newFixture()
	factory.CreateLevel(f.ecs, &leveldata.Stage{}, spawntree.Library{})
	f.player(100, 400)
	f.q.Enqueue(&factory.SpawnCollectibles{X: 100, Y: 350, Count: 1})
	f.q.Enqueue(&factory.SpawnCollectibles{X: 300, Y: 100, Count: 1})
	f.q.Flush(f.ecs)

	var inRange, far *donburi.Entry
	components.Collectible.Each(f.w, func(e *donburi.Entry) {
		if components.Position.Get(e).X == 100 {
			inRange = e
		} else {
			far = e
		}
	})

	f.run(0.1, UpdateCollectibles)
	if !components.Collectible.Get(inRange).Attracted {
		t.Error("item inside the magnet radius not attracted")
	}
	if got := components.Position.Get(far).Y; math.Abs(got-(100+cfg.Collectible.FallSpeed*0.1)) > 1e-9 {
		t.Errorf("far item y = %v, want it falling", got)
	}

	f.run(0.1, UpdateCollectibles)
	if !components.Despawn.Get(inRange).Despawning {
		t.Error("item next to the player not picked up")
	}
	if got := level(f.w).Score; got != cfg.Collectible.Score {
		t.Errorf("score = %d, want %d", got, cfg.Collectible.Score)
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name   string
		start  gamemath.Point
		inX    float64
		inY    float64
		focus  bool
		dt     float64
		expect gamemath.Point
	}{
		{"clamped to the map", gamemath.Point{X: 10, Y: 10}, -1, 0, false, 1, gamemath.Point{X: 0, Y: 10}},
		{"focus halves speed", gamemath.Point{X: 100, Y: 100}, 1, 0, true, 0.5, gamemath.Point{X: 160, Y: 100}},
		{"diagonal normalized", gamemath.Point{X: 100, Y: 100}, 1, 1, false, 0.1,
			gamemath.Point{X: 100 + 24/math.Sqrt2, Y: 100 + 24/math.Sqrt2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			player := f.player(tt.start.X, tt.start.Y)
			SetPlayerInput(f.w, tt.inX, tt.inY, tt.focus, false)
			f.run(tt.dt, UpdatePlayer)
			if got := position(player); !near(got, tt.expect) {
				t.Errorf("player at %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestFiringUnpausesShot(t *testing.T) {
	f := newFixture()
	a := spawntree.NewArena()
	root := a.AddNode(spawntree.Node{Spawn: spawntree.SpawnAttached{}, Repeat: 0.1})
	a.AddChild(root, spawntree.Node{
		IsBullet: true,
		Radius:   2,
		Actions:  []spawntree.Action{spawntree.Stay{Time: 1}},
	})
	player := factory.CreatePlayer(f.ecs, f.q, 100, 100, spawntree.Pattern{Arena: a, Root: root})
	f.q.Flush(f.ecs)
	shot := f.w.Entry(components.Player.Get(player).Shot)

	SetPlayerInput(f.w, 0, 0, false, true)
	f.run(1.0/60, UpdatePlayer)
	if components.Spawner.Get(shot).Paused {
		t.Fatal("shot still paused while firing")
	}
	f.run(0.1, UpdateSpawners)
	if got := f.count(tags.PlayerShot); got == 0 {
		t.Error("no shots fired")
	}

	SetPlayerInput(f.w, 0, 0, false, false)
	f.run(1.0/60, UpdatePlayer)
	if !components.Spawner.Get(shot).Paused {
		t.Error("shot keeps firing after release")
	}
}

func TestLevelSpawnsScheduleAndClears(t *testing.T) {
	f := newFixture()
	stage := &leveldata.Stage{Enemies: []leveldata.EnemySpawn{
		{Name: "boss", X: 100, Y: 50, Time: 0.5, Boss: true},
	}}
	factory.CreateLevel(f.ecs, stage, spawntree.Library{})

	var spawned []components.SpawnNotice
	components.SpawnEvent.Subscribe(f.w, func(_ donburi.World, n components.SpawnNotice) {
		spawned = append(spawned, n)
	})

	f.run(0.3, UpdateLevel)
	if got := f.count(tags.Enemy); got != 0 {
		t.Fatalf("%d enemies at 0.3s", got)
	}
	f.run(0.3, UpdateLevel)
	events.ProcessAllEvents(f.w)
	if got := f.count(tags.Enemy); got != 1 {
		t.Fatalf("%d enemies at 0.6s, want 1", got)
	}
	if lvl := level(f.w); !lvl.HasBoss || len(spawned) != 1 || !spawned[0].Boss {
		t.Errorf("boss not tracked: HasBoss %v, notices %+v", lvl.HasBoss, spawned)
	}

	f.run(0.1, UpdateLevel)
	if level(f.w).Cleared {
		t.Fatal("stage cleared with an enemy alive")
	}
	f.q.Enqueue(&factory.DestroyEntity{Entity: level(f.w).Boss})
	f.q.Flush(f.ecs)
	f.run(0.1, UpdateLevel)
	if !level(f.w).Cleared {
		t.Error("stage not cleared after the last enemy")
	}
}

func TestUpdateAudioPassesSettings(t *testing.T) {
	f := newFixture()
	services(f.w).Audio = cfg.AudioSettings{Volume: 0.5}
	PlaySFX(f.ecs, cfg.SoundShot)
	UpdateAudio(f.ecs)

	played := f.sound.Played()
	if len(played) != 1 {
		t.Fatalf("played %d sounds, want 1", len(played))
	}
	if played[0].Profile != "shot" || math.Abs(played[0].Settings.Volume-0.2) > 1e-9 {
		t.Errorf("played %+v, want shot at 0.2", played[0])
	}

	services(f.w).Audio.Muted = true
	PlaySFX(f.ecs, cfg.SoundShot)
	UpdateAudio(f.ecs)
	if got := len(f.sound.Played()); got != 1 {
		t.Errorf("muted sound played: %d sounds", got)
	}
}

func TestShadowTrailCastsFadingShadows(t *testing.T) {
	f := newFixture()
	a := spawntree.NewArena()
	root := a.AddNode(spawntree.Node{
		IsBullet:       true,
		Radius:         2,
		ShadowInterval: 0.1,
		ShadowLifespan: 0.3,
		Sprite:         "rice",
		Actions:        []spawntree.Action{spawntree.Stay{Time: 5}},
	})
	f.spawn(spawntree.Pattern{Arena: a, Root: root}, 50, 50, components.FactionEnemy)

	f.run(0.1, UpdateShadowTrails)
	shadow, ok := tags.Shadow.First(f.w)
	if !ok {
		t.Fatal("no shadow cast")
	}
	if got := components.Sprite.Get(shadow).Alpha; got != cfg.Shadow.StartAlpha {
		t.Fatalf("fresh shadow alpha = %v, want %v", got, cfg.Shadow.StartAlpha)
	}

	f.run(0.15, UpdateShadowTrails)
	if got := components.Sprite.Get(shadow).Alpha; math.Abs(float64(got)-0.3) > 1e-4 {
		t.Errorf("half faded alpha = %v, want 0.3", got)
	}
}

func TestPauseHoldsPhases(t *testing.T) {
	f := newFixture()
	f.player(100, 100)
	SetPlayerInput(f.w, 1, 0, false, false)

	SetPaused(f.ecs, true)
	f.run(1, WithPauseCheck(UpdatePlayer))
	p, _ := tags.Player.First(f.w)
	if got := position(p); got.X != 100 {
		t.Errorf("paused player moved to %v", got)
	}

	SetPaused(f.ecs, false)
	f.run(0.1, WithPauseCheck(UpdatePlayer))
	if got := position(p); got.X <= 100 {
		t.Errorf("resumed player did not move: %v", got)
	}
}

func TestNilScoreStoreIsNoOp(t *testing.T) {
	var s *ScoreStore
	if hs, err := s.Load(); hs != nil || err != nil {
		t.Errorf("Load() = %v, %v", hs, err)
	}
	if saved, err := s.Submit(100, "stage1"); saved || err != nil {
		t.Errorf("Submit() = %v, %v", saved, err)
	}
}

// outward is a pattern whose root moves 100 units along +x over one second.
func outward() spawntree.Pattern {
	a := spawntree.NewArena()
	root := a.AddNode(spawntree.Node{
		Actions: []spawntree.Action{
			spawntree.PolarMove{Time: 1, Radius: spawntree.Profile{From: 0, To: 100}, Angle: spawntree.Const(0)},
		},
	})
	return spawntree.Pattern{Arena: a, Root: root}
}

// volley fires one bullet moving like outward as soon as it starts.
func volley() spawntree.Pattern {
	a := spawntree.NewArena()
	root := a.AddNode(spawntree.Node{Name: "volley"})
	a.AddChild(root, spawntree.Node{
		IsBullet: true,
		Radius:   1,
		Spawn:    spawntree.SpawnRelative{},
		Actions: []spawntree.Action{
			spawntree.PolarMove{Time: 1, Radius: spawntree.Profile{From: 0, To: 100}, Angle: spawntree.Const(0)},
		},
	})
	return spawntree.Pattern{Arena: a, Root: root}
}

func TestBulletSpawnedMidTickLivesFullLifetime(t *testing.T) {
	f := newFixture()
	a := spawntree.NewArena()
	root := a.AddNode(spawntree.Node{Actions: []spawntree.Action{spawntree.Stay{Time: 10}}})
	a.AddChild(root, spawntree.Node{
		IsBullet: true,
		Radius:   1,
		Spawn:    spawntree.SpawnRelative{Time: 0.25},
		Actions:  []spawntree.Action{spawntree.Stay{Time: 1}},
	})
	f.spawn(spawntree.Pattern{Arena: a, Root: root}, 100, 100, components.FactionEnemy)

	tick := func() { f.run(0.25, UpdateMotion, UpdateSpawners, UpdateDespawn) }
	tick()
	entry, ok := components.Hazard.First(f.w)
	if !ok {
		t.Fatal("bullet not spawned at 0.25s")
	}
	bullet := entry.Entity()
	local := func() float64 { return components.Movement.Get(f.w.Entry(bullet)).Path.Local }
	if got := local(); got != 0 {
		t.Fatalf("new bullet local time = %v, want 0", got)
	}
	if got := components.Despawn.Get(entry).Timer; got != 1 {
		t.Fatalf("new bullet timer = %v, want 1", got)
	}

	for i := 1; i <= 3; i++ {
		tick()
		if !f.w.Valid(bullet) {
			t.Fatalf("bullet gone after %d ticks of its one second", i)
		}
		if got, want := local(), 0.25*float64(i); got != want {
			t.Fatalf("local time = %v, want %v", got, want)
		}
	}
	tick()
	if f.w.Valid(bullet) {
		t.Error("bullet outlived its lifetime")
	}
}

func TestEnemySpawnCarriesStageLag(t *testing.T) {
	f := newFixture()
	stage := &leveldata.Stage{Enemies: []leveldata.EnemySpawn{
		{Name: "late", X: 100, Y: 50, Time: 0.1, Path: "outward", Pattern: "volley"},
	}}
	factory.CreateLevel(f.ecs, stage, spawntree.Library{"outward": outward(), "volley": volley()})

	f.run(0.25, UpdateLevel, UpdateMotion, UpdateSpawners)
	entry, ok := tags.Enemy.First(f.w)
	if !ok {
		t.Fatal("enemy not spawned")
	}
	enemy := entry.Entity()
	if got := components.Movement.Get(entry).Path.Local; math.Abs(got-0.15) > 1e-9 {
		t.Errorf("enemy local time = %v, want 0.15", got)
	}
	if got := position(entry); !near(got, gamemath.Point{X: 115, Y: 50}) {
		t.Errorf("enemy at %v, want (115, 50)", got)
	}

	// The opening bullet left at the spawn time and has moved as long.
	first, ok := tags.EnemyBullet.First(f.w)
	if !ok {
		t.Fatal("opening bullet not fired")
	}
	shot := first.Entity()
	if got := position(first); !near(got, gamemath.Point{X: 115, Y: 50}) {
		t.Errorf("opening bullet at %v, want (115, 50)", got)
	}

	f.run(0.25, UpdateLevel, UpdateMotion, UpdateSpawners)
	if got := position(f.w.Entry(enemy)); !near(got, gamemath.Point{X: 140, Y: 50}) {
		t.Errorf("enemy at %v after the second tick, want (140, 50)", got)
	}
	if got := position(f.w.Entry(shot)); !near(got, gamemath.Point{X: 140, Y: 50}) {
		t.Errorf("opening bullet at %v after the second tick, want (140, 50)", got)
	}
}

func TestDeathPatternStartsAtTheHit(t *testing.T) {
	f := newFixture()
	factory.CreateLevel(f.ecs, &leveldata.Stage{}, spawntree.Library{"volley": volley()})
	f.enemy(leveldata.EnemySpawn{X: 100, Y: 100, Health: 1, DeathPattern: "volley"})
	f.bullet(100, 100, components.FactionPlayer, spawntree.CollisionPolicy{})

	f.run(0.25, UpdateCollisions, UpdateMotion, UpdateSpawners, UpdateDespawn)
	shot, ok := tags.EnemyBullet.First(f.w)
	if !ok {
		t.Fatal("death pattern fired nothing")
	}
	// Hits resolve at the start of the tick, so the bullet has flown one
	// full tick and no more.
	if got := components.Movement.Get(shot).Path.Local; got != 0.25 {
		t.Errorf("death bullet local time = %v, want 0.25", got)
	}
	if got := position(shot); !near(got, gamemath.Point{X: 125, Y: 100}) {
		t.Errorf("death bullet at %v, want (125, 100)", got)
	}
	if got := components.Despawn.Get(shot).Timer; got != 0.75 {
		t.Errorf("death bullet timer = %v, want 0.75", got)
	}
}
