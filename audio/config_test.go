package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0.4, cfg.Volume)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TETRIS_AUDIO", "false")
	t.Setenv("TETRIS_VOLUME", "80")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 0.8, cfg.Volume)
}

func TestLoadConfigClampsVolume(t *testing.T) {
	t.Setenv("TETRIS_VOLUME", "250")
	assert.Equal(t, 1.0, LoadConfig().Volume)

	t.Setenv("TETRIS_VOLUME", "-5")
	assert.Equal(t, 0.0, LoadConfig().Volume)
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("TETRIS_AUDIO", "loud")
	t.Setenv("TETRIS_VOLUME", "many")

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestThemeStreams(t *testing.T) {
	th := newTheme(0.5)

	samples := make([][2]float64, 4096)
	n, ok := th.Stream(samples)

	assert.True(t, ok)
	assert.Equal(t, len(samples), n)
	assert.NoError(t, th.Err())

	// Square wave at half volume: every sample is ±0.5 or silence.
	for i, s := range samples {
		assert.LessOrEqual(t, s[0], 0.5, "sample %d", i)
		assert.GreaterOrEqual(t, s[0], -0.5, "sample %d", i)
		assert.Equal(t, s[0], s[1], "sample %d must be identical on both channels", i)
	}
}

func TestDisabledPlayerIsInert(t *testing.T) {
	p := NewPlayer(Config{Enabled: false})

	assert.False(t, p.Playing())
	p.Play()
	assert.False(t, p.Playing())
	assert.False(t, p.Toggle())
	p.Pause()
	p.Close()
}
