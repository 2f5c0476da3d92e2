package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundPlayerHit
	SoundEnemyHit
	SoundEnemyDeath
	SoundPlayerDeath
	// Pattern sounds
	SoundShot
	SoundBossSpawn
	// Pickup sounds
	SoundItemPickup
)

// AudioSettings is handed to the audio collaborator with every play call.
type AudioSettings struct {
	Volume float64 // 0.0 - 1.0
	Muted  bool
}

// SoundConfig maps sound IDs to named sound profiles
type SoundConfig struct {
	Profiles          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioSettings
var Sound SoundConfig

func init() {
	Audio = AudioSettings{
		Volume: 1.0,
	}

	Sound = SoundConfig{
		Profiles: map[SoundID]string{
			SoundPlayerHit:   "player_hit",
			SoundEnemyHit:    "enemy_hit",
			SoundEnemyDeath:  "enemy_death",
			SoundPlayerDeath: "player_death",
			SoundShot:        "shot",
			SoundBossSpawn:   "boss_spawn",
			SoundItemPickup:  "item_pickup",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundShot: 0.4,
		},
	}
}

// ProfileFor returns the named profile for a sound and the settings to play
// it with, or false when the sound has no profile.
func ProfileFor(id SoundID, base AudioSettings) (string, AudioSettings, bool) {
	name, ok := Sound.Profiles[id]
	if !ok {
		return "", base, false
	}
	if mult, ok := Sound.VolumeMultipliers[id]; ok {
		base.Volume *= mult
	}
	return name, base, true
}

// SoundByProfile looks a sound up by its profile name.
func SoundByProfile(name string) (SoundID, bool) {
	for id, profile := range Sound.Profiles {
		if profile == name {
			return id, true
		}
	}
	return SoundNone, false
}
