package audio

import (
	"os"
	"strconv"
)

// Config controls playback.
type Config struct {
	Enabled bool
	Volume  float64 // 0.0 to 1.0
}

func DefaultConfig() Config {
	return Config{Enabled: true, Volume: 0.4}
}

// LoadConfig reads overrides from the environment: TETRIS_AUDIO (bool) and
// TETRIS_VOLUME (0-100).
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("TETRIS_AUDIO"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("TETRIS_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = float64(val) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		}
	}

	return cfg
}
