package tetris

import (
	"fmt"
	"time"
)

// Config holds the tunable parameters of a session. The zero value is not
// playable; start from DefaultConfig and override fields as needed.
type Config struct {
	Width  int
	Height int

	// DropInterval is the starting time between automatic one-row descents.
	DropInterval time.Duration
	// DecayFactor multiplies the drop interval on every level-up. Must be
	// strictly between 0 and 1.
	DecayFactor float64
	// ScorePerLine is the base value of one cleared row; the actual award is
	// rows × ScorePerLine × level.
	ScorePerLine int
	// LevelThreshold is the score needed per level: level = 1 + score/threshold.
	LevelThreshold int
	// ClearDelay is how long completed rows stay on the board (marked pending)
	// before they are removed.
	ClearDelay time.Duration

	// Pieces is the selectable catalog. Empty means the standard seven
	// tetrominoes. Tests shrink it to force a known sequence.
	Pieces []Tetromino
}

func DefaultConfig() Config {
	return Config{
		Width:          10,
		Height:         20,
		DropInterval:   800 * time.Millisecond,
		DecayFactor:    0.95,
		ScorePerLine:   100,
		LevelThreshold: 500,
		ClearDelay:     300 * time.Millisecond,
		Pieces:         Pieces(),
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("tetris: board size %dx%d is not positive", c.Width, c.Height)
	}
	if c.DropInterval <= 0 {
		return fmt.Errorf("tetris: drop interval %v is not positive", c.DropInterval)
	}
	if c.DecayFactor <= 0 || c.DecayFactor >= 1 {
		return fmt.Errorf("tetris: decay factor %v is outside (0, 1)", c.DecayFactor)
	}
	if c.ScorePerLine <= 0 {
		return fmt.Errorf("tetris: score per line %d is not positive", c.ScorePerLine)
	}
	if c.LevelThreshold <= 0 {
		return fmt.Errorf("tetris: level threshold %d is not positive", c.LevelThreshold)
	}
	if c.ClearDelay < 0 {
		return fmt.Errorf("tetris: clear delay %v is negative", c.ClearDelay)
	}
	if len(c.Pieces) == 0 {
		return fmt.Errorf("tetris: piece catalog is empty")
	}
	for _, p := range c.Pieces {
		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}
