package tetris

// Piece is the currently falling tetromino: a shape (possibly a rotated copy
// of a catalog entry) plus its board-relative origin. At most one exists per
// session.
type Piece struct {
	Kind   Kind
	Blocks [][]int
	X, Y   int
}

// Rotated returns the shape turned 90° clockwise. The square keeps its shape,
// so it is returned as-is.
func (p Piece) Rotated() [][]int {
	if p.Kind == KindO {
		return p.Blocks
	}
	rows := len(p.Blocks)
	cols := len(p.Blocks[0])
	blocks := make([][]int, cols)
	for i := range blocks {
		blocks[i] = make([]int, rows)
	}
	for r := rows - 1; r >= 0; r-- {
		for c, v := range p.Blocks[r] {
			blocks[c][rows-1-r] = v
		}
	}
	return blocks
}
