package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundLand
	SoundGameOver
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump:       "audio/sfx/jump.wav",
			SoundLand:       "audio/sfx/land.wav",
			SoundGameOver:   "audio/sfx/gameover.wav",
			SoundMenuSelect: "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundLand:     0.6,
			SoundGameOver: 1.2,
		},
	}
}
