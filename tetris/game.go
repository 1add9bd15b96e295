package tetris

import (
	"math/rand"
	"time"
)

// State is the session phase.
type State int

const (
	StateNoPiece State = iota
	StateFalling
	StateGameOver
)

// Game holds one session: the board, the falling piece, score, level and the
// fall/clear countdowns. It owns no timers; frontends feed elapsed time into
// Advance. Not safe for concurrent use — commands and Advance must be
// serialized onto one goroutine.
type Game struct {
	cfg Config
	rng *rand.Rand

	board *Board
	state State

	piece Piece
	next  Tetromino

	score        int
	level        int
	dropInterval time.Duration

	fallElapsed time.Duration
	pendingRows []int
	clearIn     time.Duration

	// generation increments on every reset so that effects scheduled by a
	// frontend against an older session can detect they are stale.
	generation uint64
}

// NewGame validates cfg and starts a fresh session. Piece selection draws
// from rng; pass nil for a time-seeded source.
func NewGame(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{cfg: cfg, rng: rng}
	g.start()
	return g, nil
}

func (g *Game) start() {
	g.board = NewBoard(g.cfg.Width, g.cfg.Height)
	g.state = StateNoPiece
	g.score = 0
	g.level = 1
	g.dropInterval = g.cfg.DropInterval
	g.fallElapsed = 0
	g.pendingRows = nil
	g.clearIn = 0
	g.next = g.randomPiece()
	g.spawn()
}

func (g *Game) randomPiece() Tetromino {
	return g.cfg.Pieces[g.rng.Intn(len(g.cfg.Pieces))]
}

// spawn promotes the preview piece to the falling one at the top center. A
// spawn position that already collides ends the session.
func (g *Game) spawn() {
	t := g.next
	g.next = g.randomPiece()
	p := Piece{
		Kind:   t.Kind,
		Blocks: t.Blocks,
		X:      g.cfg.Width/2 - len(t.Blocks[0])/2,
		Y:      0,
	}
	if g.collides(p.X, p.Y, p.Blocks) {
		g.state = StateGameOver
		return
	}
	g.piece = p
	g.state = StateFalling
}

// collides reports whether the shape at origin (x, y) overlaps the walls, the
// floor or locked cells. Cells above the top never collide, so pieces may
// spawn or rotate partially above the visible grid.
func (g *Game) collides(x, y int, blocks [][]int) bool {
	for dy, row := range blocks {
		for dx, v := range row {
			if v != blockMarker {
				continue
			}
			if g.board.IsOccupied(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// MoveLeft shifts the falling piece one column left when the space is free.
func (g *Game) MoveLeft() { g.shift(-1, 0) }

// MoveRight shifts the falling piece one column right when the space is free.
func (g *Game) MoveRight() { g.shift(1, 0) }

func (g *Game) shift(dx, dy int) bool {
	if g.state != StateFalling {
		return false
	}
	if g.collides(g.piece.X+dx, g.piece.Y+dy, g.piece.Blocks) {
		return false
	}
	g.piece.X += dx
	g.piece.Y += dy
	return true
}

// SoftDrop advances the piece one row, locking it when it cannot descend.
func (g *Game) SoftDrop() {
	if g.state != StateFalling {
		return
	}
	if !g.shift(0, 1) {
		g.lockPiece()
	}
}

// Rotate turns the piece clockwise. If the turned shape does not fit in place
// it is nudged one cell left, then right, then up; when none of those fit the
// rotation is rejected and the piece is left exactly as it was.
func (g *Game) Rotate() {
	if g.state != StateFalling {
		return
	}
	blocks := g.piece.Rotated()
	kicks := [4][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}
	for _, k := range kicks {
		x, y := g.piece.X+k[0], g.piece.Y+k[1]
		if !g.collides(x, y, blocks) {
			g.piece.Blocks = blocks
			g.piece.X = x
			g.piece.Y = y
			return
		}
	}
}

// HardDrop sends the piece straight down and locks it. A piece that cannot
// descend at all is left alone; the next fall step locks it.
func (g *Game) HardDrop() {
	if g.state != StateFalling {
		return
	}
	moved := false
	for g.shift(0, 1) {
		moved = true
	}
	if moved {
		g.lockPiece()
	}
}

// Reset discards the session from any state, cancelling a pending row clear,
// and starts over with an empty board, score 0 and level 1.
func (g *Game) Reset() {
	g.generation++
	g.start()
}

// lockPiece writes the piece into the board, queues completed rows for the
// delayed clear and immediately spawns the next piece — the clear animation
// plays out while the new piece is already falling. Cells above the top are
// skipped; the spawn that follows detects the top-out.
func (g *Game) lockPiece() {
	for dy, row := range g.piece.Blocks {
		for dx, v := range row {
			if v != blockMarker {
				continue
			}
			x, y := g.piece.X+dx, g.piece.Y+dy
			if y < 0 || y >= g.cfg.Height {
				continue
			}
			g.board.Write(x, y, g.piece.Kind)
		}
	}
	g.state = StateNoPiece
	// FullRows rescans the whole board, so rows from an earlier, still
	// pending clear are picked up again and removed together.
	if rows := g.board.FullRows(); len(rows) > 0 {
		g.pendingRows = rows
		g.clearIn = g.cfg.ClearDelay
	}
	g.fallElapsed = 0
	g.spawn()
}

// applyClear removes the pending rows and settles score, level and speed.
// When the new score crosses a level threshold the level advances by exactly
// one, however many thresholds the jump covered.
func (g *Game) applyClear() {
	rows := g.pendingRows
	g.pendingRows = nil
	g.clearIn = 0
	g.board.RemoveRows(rows)
	g.score += len(rows) * g.cfg.ScorePerLine * g.level
	if 1+g.score/g.cfg.LevelThreshold > g.level {
		g.level++
		g.dropInterval = time.Duration(float64(g.dropInterval) * g.cfg.DecayFactor)
		if g.dropInterval < time.Millisecond {
			g.dropInterval = time.Millisecond
		}
	}
}

// Advance feeds elapsed time into the session, firing the automatic fall
// cadence and the delayed row clear as their deadlines pass. Frontends call
// it once per frame or tick; a game-over session ignores time entirely.
func (g *Game) Advance(dt time.Duration) {
	if g.state == StateGameOver {
		return
	}
	if len(g.pendingRows) > 0 {
		g.clearIn -= dt
		if g.clearIn <= 0 {
			g.applyClear()
		}
	}
	if g.state != StateFalling {
		return
	}
	g.fallElapsed += dt
	for g.fallElapsed >= g.dropInterval {
		g.fallElapsed -= g.dropInterval
		g.SoftDrop()
		if g.state != StateFalling {
			return
		}
	}
}

func (g *Game) Score() int                  { return g.score }
func (g *Game) Level() int                  { return g.level }
func (g *Game) State() State                { return g.state }
func (g *Game) DropInterval() time.Duration { return g.dropInterval }
