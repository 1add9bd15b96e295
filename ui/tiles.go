package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Patrick17-ui/Tetris/tetris"
)

const blockSize = 12

var kindColors = map[tetris.Kind]color.RGBA{
	tetris.KindI: {R: 0, G: 200, B: 230, A: 255},
	tetris.KindJ: {R: 60, G: 80, B: 200, A: 255},
	tetris.KindL: {R: 230, G: 120, B: 30, A: 255},
	tetris.KindO: {R: 240, G: 200, B: 20, A: 255},
	tetris.KindS: {R: 70, G: 190, B: 70, A: 255},
	tetris.KindT: {R: 160, G: 60, B: 200, A: 255},
	tetris.KindZ: {R: 220, G: 50, B: 50, A: 255},
}

// newTile builds a block image: a darker rim around the fill color.
func newTile(fill color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(blockSize, blockSize)
	img.Fill(color.RGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 255})

	inner := ebiten.NewImage(blockSize-2, blockSize-2)
	inner.Fill(fill)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(1, 1)
	img.DrawImage(inner, op)
	return img
}

func newTileSet() map[tetris.Kind]*ebiten.Image {
	tiles := make(map[tetris.Kind]*ebiten.Image, len(kindColors))
	for kind, c := range kindColors {
		tiles[kind] = newTile(c)
	}
	return tiles
}
