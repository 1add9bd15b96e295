// Package audio plays the background music. The engine never imports it; the
// frontends toggle playback off the music flag and game-over transitions.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and the looping theme. When the speaker cannot be
// initialized (no audio backend) the player silently disables itself instead
// of failing the game.
type Player struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	music    *beep.Ctrl
	disabled bool
}

func NewPlayer(cfg Config) *Player {
	p := &Player{mixer: &beep.Mixer{}}
	if !cfg.Enabled {
		p.disabled = true
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.disabled = true
		return p
	}
	p.music = &beep.Ctrl{Streamer: newTheme(cfg.Volume), Paused: true}
	p.mixer.Add(p.music)
	speaker.Play(p.mixer)
	return p
}

// Play starts (or resumes) the music loop.
func (p *Player) Play() { p.setPaused(false) }

// Pause stops the music loop, keeping its position.
func (p *Player) Pause() { p.setPaused(true) }

// Toggle flips playback and reports whether music is now playing.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disabled || p.music == nil {
		return false
	}
	speaker.Lock()
	p.music.Paused = !p.music.Paused
	playing := !p.music.Paused
	speaker.Unlock()
	return playing
}

// Playing reports whether the music is currently audible.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disabled || p.music == nil {
		return false
	}
	speaker.Lock()
	paused := p.music.Paused
	speaker.Unlock()
	return !paused
}

func (p *Player) setPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disabled || p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = paused
	speaker.Unlock()
}

// Close mutes everything. beep exposes no speaker teardown; clearing the
// mixer is enough to stop output.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disabled {
		return
	}
	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()
	p.disabled = true
}
