package config

// Config holds general simulation configuration
type Config struct {
	// Playfield size in pixels. Stages loaded from TMX override these.
	Width  int
	Height int

	TickRate int // simulation ticks per second
}

// SpatialConfig sizes the two broad-phase grids
type SpatialConfig struct {
	DefaultCellDivisor float64 // default cell = max(width, height) / divisor
	MinCellSize        int     // lower bound for either grid
}

// CollisionConfig contains hit resolution values
type CollisionConfig struct {
	PlayerInvulnerability float64 // seconds the player hitbox stays disabled after a hit
	EnemyInvulnerability  float64 // seconds an enemy hitbox stays disabled after a hit
	DefaultPierceReset    float64 // used when a pierce policy declares no reset time
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed        float64 // pixels per second
	FocusSpeed   float64 // pixels per second while focused
	Health       int
	HitboxRadius float64
	SpawnX       float64
	SpawnY       float64
	ShotRadius   float64
	ShotDamage   int
	ShotSpeed    float64
	ShotInterval float64
}

// EnemyConfig contains enemy lifecycle values
type EnemyConfig struct {
	HitboxRadius  float64
	DefaultHealth int
	OffMapPadding float64 // enemies further than this outside the map despawn
}

// BulletConfig contains bullet lifecycle values
type BulletConfig struct {
	OffMapPadding float64 // bullets further than this outside the map despawn
}

// CollectibleConfig contains item drop behaviour
type CollectibleConfig struct {
	Radius       float64
	FallSpeed    float64
	MagnetRadius float64
	MagnetSpeed  float64
	PickupRadius float64
	Score        int
	Scatter      float64 // horizontal spread of multi-item drops
}

// ShadowConfig contains shadow trail defaults
type ShadowConfig struct {
	StartAlpha float32
}

// QueueConfig contains creation queue tuning
type QueueConfig struct {
	InitialCapacity int // pending command slots preallocated
	ReserveGrowth   float64
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	// Assertions turns invariant violations into panics. Release builds
	// skip the offending operation and log instead.
	Assertions bool
}

// Global configuration instances
var C *Config
var Spatial SpatialConfig
var Collision CollisionConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Bullet BulletConfig
var Collectible CollectibleConfig
var Shadow ShadowConfig
var Queue QueueConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:    384,
		Height:   448,
		TickRate: 60,
	}

	Spatial = SpatialConfig{
		DefaultCellDivisor: 10,
		MinCellSize:        8,
	}

	Collision = CollisionConfig{
		PlayerInvulnerability: 2.0,
		EnemyInvulnerability:  0,
		DefaultPierceReset:    0.5,
	}

	Player = PlayerConfig{
		Speed:        240,
		FocusSpeed:   120,
		Health:       3,
		HitboxRadius: 3,
		SpawnX:       192,
		SpawnY:       400,
		ShotRadius:   6,
		ShotDamage:   1,
		ShotSpeed:    600,
		ShotInterval: 0.08,
	}

	Enemy = EnemyConfig{
		HitboxRadius:  14,
		DefaultHealth: 20,
		OffMapPadding: 64,
	}

	Bullet = BulletConfig{
		OffMapPadding: 96,
	}

	Collectible = CollectibleConfig{
		Radius:       8,
		FallSpeed:    90,
		MagnetRadius: 64,
		MagnetSpeed:  360,
		PickupRadius: 16,
		Score:        100,
		Scatter:      12,
	}

	Shadow = ShadowConfig{
		StartAlpha: 0.6,
	}

	Queue = QueueConfig{
		InitialCapacity: 256,
		ReserveGrowth:   1.5,
	}

	Debug = DebugConfig{
		Assertions: false,
	}
}
