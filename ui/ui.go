// Package ui renders engine snapshots with ebiten and turns keyboard, mouse
// and touch input into engine commands. It never reaches into engine state.
package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Patrick17-ui/Tetris/audio"
	"github.com/Patrick17-ui/Tetris/tetris"
)

const (
	ScreenWidth  = 240
	ScreenHeight = 360
)

const (
	boardLeft = 16
	boardTop  = 16
	panelLeft = boardLeft + 10*blockSize + 14
)

// Game drives one engine session from the ebiten loop: Update feeds elapsed
// time and commands, Draw renders the latest snapshot.
type Game struct {
	session *tetris.Game
	sound   *audio.Player

	attractMode   bool
	input         Input
	inputAttract  Input
	inputKeyboard Input
	touch         *TouchInput

	tiles     map[tetris.Kind]*ebiten.Image
	bgTile    *ebiten.Image
	flashTile *ebiten.Image

	lastUpdate time.Time
}

func NewGame(cfg tetris.Config, audioCfg audio.Config) (*Game, error) {
	session, err := tetris.NewGame(cfg, nil)
	if err != nil {
		return nil, err
	}

	g := &Game{
		session:       session,
		sound:         audio.NewPlayer(audioCfg),
		inputAttract:  NewAttractModeInput(),
		inputKeyboard: &KeyboardInput{},
		touch:         &TouchInput{},
		tiles:         newTileSet(),
		bgTile:        newTile(color.RGBA{R: 40, G: 40, B: 48, A: 255}),
		flashTile:     newTile(color.RGBA{R: 235, G: 235, B: 235, A: 255}),
	}
	g.touch.SetupButtons(ScreenWidth, ScreenHeight)
	g.startAttract()
	return g, nil
}

// Score exposes the current score for the wasm page hook.
func (g *Game) Score() int {
	return g.session.Score()
}

func (g *Game) startAttract() {
	g.attractMode = true
	g.input = g.inputAttract
	g.session.Reset()
	g.sound.Pause()
}

func (g *Game) startPlay() {
	g.attractMode = false
	g.input = g.inputKeyboard
	g.session.Reset()
	g.sound.Play()
}

func (g *Game) Update() error {
	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
	}
	dt := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sound.Toggle()
	}

	if g.session.State() == tetris.StateGameOver {
		g.sound.Pause()
		if g.attractMode {
			// The demo screen just restarts itself.
			g.startAttract()
			return nil
		}
		if g.inputKeyboard.IsSpacePressed() || g.touchKey() == ebiten.KeySpace {
			g.startPlay()
		}
		return nil
	}

	if g.attractMode {
		if g.inputKeyboard.IsSpacePressed() || g.touchKey() == ebiten.KeySpace {
			g.startPlay()
			return nil
		}
	} else {
		if g.inputKeyboard.IsSpacePressed() {
			g.session.HardDrop()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.session.Reset()
		}
	}

	if key := g.input.Read(); key != nil {
		g.apply(*key)
	}
	if key := g.touchKey(); key != 0 {
		g.apply(key)
	}

	g.session.Advance(dt)
	return nil
}

func (g *Game) apply(key ebiten.Key) {
	switch key {
	case ebiten.KeyLeft:
		g.session.MoveLeft()
	case ebiten.KeyRight:
		g.session.MoveRight()
	case ebiten.KeyDown:
		g.session.SoftDrop()
	case ebiten.KeyUp:
		g.session.Rotate()
	case ebiten.KeySpace:
		if !g.attractMode {
			g.session.HardDrop()
		}
	}
}

func (g *Game) touchKey() ebiten.Key {
	if key := g.touch.Read(); key != nil {
		return *key
	}
	return 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	g.drawBoard(screen, snap)
	g.drawNext(screen, snap)
	g.drawText(screen, snap)
	g.touch.Draw(screen)
}

func (g *Game) drawBoard(screen *ebiten.Image, snap tetris.Snapshot) {
	pending := make(map[int]bool, len(snap.PendingRows))
	for _, y := range snap.PendingRows {
		pending[y] = true
	}
	flashOn := time.Now().UnixMilli()/120%2 == 0

	for y, row := range snap.Cells {
		for x, kind := range row {
			tile := g.bgTile
			if kind != tetris.KindNone {
				tile = g.tiles[kind]
				if pending[y] && flashOn {
					tile = g.flashTile
				}
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(
				float64(boardLeft+x*blockSize),
				float64(boardTop+y*blockSize),
			)
			screen.DrawImage(tile, op)
		}
	}
}

func (g *Game) drawNext(screen *ebiten.Image, snap tetris.Snapshot) {
	for dy, row := range snap.Next.Blocks {
		for dx, v := range row {
			if v == 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(
				float64(panelLeft+dx*blockSize),
				float64(96+dy*blockSize),
			)
			screen.DrawImage(g.tiles[snap.Next.Kind], op)
		}
	}
}

func (g *Game) drawText(screen *ebiten.Image, snap tetris.Snapshot) {
	ebitenutil.DebugPrintAt(screen, "SCORE", panelLeft, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%08d", snap.Score), panelLeft, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", snap.Level), panelLeft, 54)
	ebitenutil.DebugPrintAt(screen, "NEXT", panelLeft, 80)

	if snap.State == tetris.StateGameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", panelLeft, 150)
		ebitenutil.DebugPrintAt(screen, "SPACE TO", panelLeft, 164)
		ebitenutil.DebugPrintAt(screen, "RESTART", panelLeft, 178)
	}

	if g.attractMode {
		ebitenutil.DebugPrintAt(screen, "PRESS", panelLeft, 150)
		ebitenutil.DebugPrintAt(screen, "SPACE", panelLeft, 164)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
