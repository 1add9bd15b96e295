package tetris

// Kind tags a tetromino variant. It doubles as the color identifier stored in
// board cells; presentation layers decide what each kind looks like.
type Kind string

const (
	KindNone Kind = ""
	KindI    Kind = "I"
	KindJ    Kind = "J"
	KindL    Kind = "L"
	KindO    Kind = "O"
	KindS    Kind = "S"
	KindT    Kind = "T"
	KindZ    Kind = "Z"
)

// Board is the fixed-size play field. Cells hold the kind of the piece that
// locked there, or KindNone. Only placement and row clearing mutate it.
type Board struct {
	width  int
	height int
	cells  [][]Kind // [y][x], y grows downward
}

func NewBoard(width, height int) *Board {
	cells := make([][]Kind, height)
	for y := range cells {
		cells[y] = make([]Kind, width)
	}
	return &Board{width: width, height: height, cells: cells}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// At returns the cell at (x, y). Out-of-range coordinates return KindNone.
func (b *Board) At(x, y int) Kind {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return KindNone
	}
	return b.cells[y][x]
}

// IsOccupied reports whether (x, y) blocks a piece. Coordinates beyond the
// side walls or below the floor count as occupied; rows above the top (y < 0)
// never do, so pieces may protrude above the visible grid while spawning.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.width || y >= b.height {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y][x] != KindNone
}

// Write sets a cell. Callers validate bounds beforehand.
func (b *Board) Write(x, y int, k Kind) {
	b.cells[y][x] = k
}

func (b *Board) RowIsFull(y int) bool {
	for x := 0; x < b.width; x++ {
		if b.cells[y][x] == KindNone {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all completed rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < b.height; y++ {
		if b.RowIsFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// RemoveRows deletes the given rows and prepends that many empty rows at the
// top, preserving total height and the relative order of the remaining rows.
func (b *Board) RemoveRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	drop := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < b.height {
			drop[y] = true
		}
	}
	kept := make([][]Kind, 0, b.height)
	for y, row := range b.cells {
		if !drop[y] {
			kept = append(kept, row)
		}
	}
	cells := make([][]Kind, 0, b.height)
	for i := 0; i < b.height-len(kept); i++ {
		cells = append(cells, make([]Kind, b.width))
	}
	b.cells = append(cells, kept...)
}
