// tetris-tui is the terminal frontend. One goroutine owns the engine; the
// fall ticker and key events are serialized onto it through a single select
// loop.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Patrick17-ui/Tetris/tetris"
)

const tickInterval = 16 * time.Millisecond

var kindColors = map[tetris.Kind]tcell.Color{
	tetris.KindI: tcell.ColorAqua,
	tetris.KindJ: tcell.ColorBlue,
	tetris.KindL: tcell.ColorOrange,
	tetris.KindO: tcell.ColorYellow,
	tetris.KindS: tcell.ColorGreen,
	tetris.KindT: tcell.ColorPurple,
	tetris.KindZ: tcell.ColorRed,
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.HideCursor()

	game, err := tetris.NewGame(tetris.DefaultConfig(), nil)
	if err != nil {
		log.Fatal(err)
	}

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(game, ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			game.Advance(now.Sub(last))
			last = now
		}
		draw(screen, game.Snapshot())
	}
}

// handleKey maps a key event to an engine command; false means quit.
func handleKey(game *tetris.Game, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		game.MoveLeft()
	case tcell.KeyRight:
		game.MoveRight()
	case tcell.KeyDown:
		game.SoftDrop()
	case tcell.KeyUp:
		game.Rotate()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			game.HardDrop()
		case 'r':
			game.Reset()
		}
	}
	return true
}

func draw(screen tcell.Screen, snap tetris.Snapshot) {
	screen.Clear()

	const left, top = 2, 1
	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y <= snap.Height; y++ {
		screen.SetContent(left-1, top+y, '|', nil, border)
		screen.SetContent(left+snap.Width*2, top+y, '|', nil, border)
	}
	for x := -1; x <= snap.Width*2; x++ {
		screen.SetContent(left+x, top+snap.Height, '-', nil, border)
	}

	pending := make(map[int]bool, len(snap.PendingRows))
	for _, y := range snap.PendingRows {
		pending[y] = true
	}
	flashOn := time.Now().UnixMilli()/120%2 == 0

	for y, row := range snap.Cells {
		for x, kind := range row {
			if kind == tetris.KindNone {
				continue
			}
			style := tcell.StyleDefault.Foreground(kindColors[kind])
			if pending[y] && flashOn {
				style = style.Reverse(true)
			}
			screen.SetContent(left+x*2, top+y, '[', nil, style)
			screen.SetContent(left+x*2+1, top+y, ']', nil, style)
		}
	}

	textLeft := left + snap.Width*2 + 3
	drawText(screen, textLeft, top, "SCORE %d", snap.Score)
	drawText(screen, textLeft, top+1, "LEVEL %d", snap.Level)
	drawText(screen, textLeft, top+3, "NEXT %s", string(snap.Next.Kind))
	drawText(screen, textLeft, top+5, "arrows move/rotate")
	drawText(screen, textLeft, top+6, "space drop, r reset, q quit")
	if snap.State == tetris.StateGameOver {
		drawText(screen, textLeft, top+8, "GAME OVER - press r")
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, format string, args ...any) {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
