package tetris

import "time"

// Snapshot is the read-only view handed to presentation layers on every
// frame. The grid is copied with the falling piece already overlaid, so
// renderers only draw cells and text; nothing in a snapshot aliases engine
// state.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]Kind // [y][x], falling piece included

	Next Tetromino // preview piece; Blocks is shared catalog data, do not mutate

	Score        int
	Level        int
	State        State
	DropInterval time.Duration

	// PendingRows are the completed rows awaiting removal, for a flash or
	// fade effect.
	PendingRows []int

	// Generation identifies the session; it increments on every reset.
	Generation uint64
}

func (g *Game) Snapshot() Snapshot {
	cells := make([][]Kind, g.cfg.Height)
	for y := range cells {
		cells[y] = make([]Kind, g.cfg.Width)
		copy(cells[y], g.board.cells[y])
	}
	if g.state == StateFalling {
		for dy, row := range g.piece.Blocks {
			for dx, v := range row {
				if v != blockMarker {
					continue
				}
				x, y := g.piece.X+dx, g.piece.Y+dy
				if x >= 0 && x < g.cfg.Width && y >= 0 && y < g.cfg.Height {
					cells[y][x] = g.piece.Kind
				}
			}
		}
	}
	return Snapshot{
		Width:        g.cfg.Width,
		Height:       g.cfg.Height,
		Cells:        cells,
		Next:         g.next,
		Score:        g.score,
		Level:        g.level,
		State:        g.state,
		DropInterval: g.dropInterval,
		PendingRows:  append([]int(nil), g.pendingRows...),
		Generation:   g.generation,
	}
}
