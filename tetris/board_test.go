package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOccupiedBounds(t *testing.T) {
	b := NewBoard(10, 20)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"beyond left wall", -1, 0, true},
		{"beyond right wall", 10, 0, true},
		{"below floor", 0, 20, true},
		{"far below floor", 3, 99, true},
		{"above top", 0, -1, false},
		{"far above top", 9, -4, false},
		{"empty in-bounds cell", 5, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsOccupied(tt.x, tt.y))
		})
	}
}

func TestWriteAndAt(t *testing.T) {
	b := NewBoard(10, 20)

	b.Write(5, 5, KindT)

	assert.True(t, b.IsOccupied(5, 5))
	assert.Equal(t, KindT, b.At(5, 5))
	assert.Equal(t, KindNone, b.At(5, 6))
	assert.Equal(t, KindNone, b.At(-1, 5))
}

func TestRowIsFull(t *testing.T) {
	b := NewBoard(4, 3)

	for x := 0; x < 4; x++ {
		b.Write(x, 2, KindZ)
	}
	b.Write(0, 1, KindZ)

	assert.True(t, b.RowIsFull(2))
	assert.False(t, b.RowIsFull(1))
	assert.False(t, b.RowIsFull(0))
	assert.Equal(t, []int{2}, b.FullRows())
}

func TestRemoveRowsPreservesHeightAndOrder(t *testing.T) {
	// Each row carries a distinct kind so the order of survivors is visible.
	kinds := []Kind{KindI, KindJ, KindL, KindO, KindS, KindT}
	b := NewBoard(3, 6)
	for y, k := range kinds {
		for x := 0; x < 3; x++ {
			b.Write(x, y, k)
		}
	}

	b.RemoveRows([]int{1, 3})

	assert.Equal(t, 6, b.Height())
	// Two fresh empty rows on top, survivors below in their original order.
	for x := 0; x < 3; x++ {
		assert.Equal(t, KindNone, b.At(x, 0))
		assert.Equal(t, KindNone, b.At(x, 1))
	}
	assert.Equal(t, KindI, b.At(0, 2))
	assert.Equal(t, KindL, b.At(0, 3))
	assert.Equal(t, KindS, b.At(0, 4))
	assert.Equal(t, KindT, b.At(0, 5))
}

func TestRemoveRowsEmptyInput(t *testing.T) {
	b := NewBoard(3, 4)
	b.Write(1, 3, KindJ)

	b.RemoveRows(nil)

	assert.Equal(t, KindJ, b.At(1, 3))
}
