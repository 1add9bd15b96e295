package tetris

import (
	"fmt"
	"math/rand"
)

const blockMarker = 1

// Tetromino is an immutable catalog entry: a kind and its occupancy matrix.
// Shapes are never mutated; rotation works on copies.
type Tetromino struct {
	Kind   Kind
	Blocks [][]int
}

var allPieces = []Tetromino{
	{Kind: KindI, Blocks: [][]int{
		{1, 1, 1, 1},
	}},
	{Kind: KindJ, Blocks: [][]int{
		{1, 0, 0},
		{1, 1, 1},
	}},
	{Kind: KindL, Blocks: [][]int{
		{0, 0, 1},
		{1, 1, 1},
	}},
	{Kind: KindO, Blocks: [][]int{
		{1, 1},
		{1, 1},
	}},
	{Kind: KindS, Blocks: [][]int{
		{0, 1, 1},
		{1, 1, 0},
	}},
	{Kind: KindT, Blocks: [][]int{
		{0, 1, 0},
		{1, 1, 1},
	}},
	{Kind: KindZ, Blocks: [][]int{
		{1, 1, 0},
		{0, 1, 1},
	}},
}

// Pieces returns the standard seven-piece catalog.
func Pieces() []Tetromino {
	return allPieces
}

// RandomPiece selects one of the seven standard pieces with uniform
// probability. No bag, no anti-repetition: a fair 7-sided die on every call.
func RandomPiece(rng *rand.Rand) Tetromino {
	return allPieces[rng.Intn(len(allPieces))]
}

func (t Tetromino) validate() error {
	if t.Kind == KindNone {
		return fmt.Errorf("tetris: piece without a kind")
	}
	if len(t.Blocks) == 0 || len(t.Blocks[0]) == 0 {
		return fmt.Errorf("tetris: piece %q has an empty shape", t.Kind)
	}
	width := len(t.Blocks[0])
	occupied := 0
	for _, row := range t.Blocks {
		if len(row) != width {
			return fmt.Errorf("tetris: piece %q has a ragged shape", t.Kind)
		}
		for _, v := range row {
			if v == blockMarker {
				occupied++
			}
		}
	}
	if occupied == 0 {
		return fmt.Errorf("tetris: piece %q has no occupied cells", t.Kind)
	}
	return nil
}
