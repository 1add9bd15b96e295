//go:build !js

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Patrick17-ui/Tetris/audio"
	"github.com/Patrick17-ui/Tetris/tetris"
	"github.com/Patrick17-ui/Tetris/ui"
)

func main() {
	game, err := ui.NewGame(tetris.DefaultConfig(), audio.LoadConfig())
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(ui.ScreenWidth*2, ui.ScreenHeight*2)
	ebiten.SetWindowTitle("Tetris")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
