package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	pieces := Pieces()
	require.Len(t, pieces, 7)

	seen := map[Kind]bool{}
	for _, p := range pieces {
		assert.NoError(t, p.validate())
		assert.False(t, seen[p.Kind], "duplicate kind %q", p.Kind)
		seen[p.Kind] = true

		occupied := 0
		for _, row := range p.Blocks {
			for _, v := range row {
				if v == blockMarker {
					occupied++
				}
			}
		}
		assert.Equal(t, 4, occupied, "tetromino %q must have four cells", p.Kind)
	}
}

func TestRandomPieceCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	counts := map[Kind]int{}
	const draws = 7000
	for i := 0; i < draws; i++ {
		counts[RandomPiece(rng).Kind]++
	}

	require.Len(t, counts, 7)
	for kind, n := range counts {
		// Uniform choice puts each kind at draws/7 = 1000 in expectation.
		assert.InDelta(t, 1000, n, 200, "kind %q drawn %d times", kind, n)
	}
}

func TestRotatedClockwise(t *testing.T) {
	i := Piece{Kind: KindI, Blocks: [][]int{{1, 1, 1, 1}}}
	assert.Equal(t, [][]int{{1}, {1}, {1}, {1}}, i.Rotated())

	j := Piece{Kind: KindJ, Blocks: [][]int{
		{1, 0, 0},
		{1, 1, 1},
	}}
	assert.Equal(t, [][]int{
		{1, 1},
		{1, 0},
		{1, 0},
	}, j.Rotated())
}

func TestRotatedFourTimesIsIdentity(t *testing.T) {
	for _, tet := range Pieces() {
		p := Piece{Kind: tet.Kind, Blocks: tet.Blocks}
		blocks := p.Blocks
		for i := 0; i < 4; i++ {
			blocks = Piece{Kind: p.Kind, Blocks: blocks}.Rotated()
		}
		assert.Equal(t, tet.Blocks, blocks, "kind %q", tet.Kind)
	}
}

func TestRotatedSquareUnchanged(t *testing.T) {
	o := Piece{Kind: KindO, Blocks: [][]int{
		{1, 1},
		{1, 1},
	}}
	assert.Equal(t, o.Blocks, o.Rotated())
}
