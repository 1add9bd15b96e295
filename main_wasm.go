//go:build js && wasm

package main

import (
	"log"
	"syscall/js"

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

	js.Global().Set("getScore", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return js.ValueOf(game.Score())
	}))

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Tetris")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
