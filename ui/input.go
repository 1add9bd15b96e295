package ui

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const keyDown = ebiten.KeyDown

const sleepTouchMilliSec = 100

var inputKeys = []ebiten.Key{keyDown, ebiten.KeyLeft, ebiten.KeyRight, ebiten.KeyUp}

type Input interface {
	Read() *ebiten.Key
	IsSpacePressed() bool
}

type KeyboardInput struct{}

func (*KeyboardInput) IsSpacePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func (*KeyboardInput) Read() *ebiten.Key {
	for _, key := range inputKeys {
		if key == ebiten.KeyUp {
			if inpututil.IsKeyJustPressed(key) {
				return &key
			}
		} else if ebiten.IsKeyPressed(key) {
			return &key
		}
	}

	return nil
}

// AttractModeInput feeds random keys so the demo screen plays itself.
type AttractModeInput struct {
	keyPressed chan ebiten.Key
}

func (input *AttractModeInput) IsSpacePressed() bool {
	// if there's a key available we just say it's space (this is only called to start the game)
	hasKey := input.Read() != nil
	return hasKey
}

func (input *AttractModeInput) Read() *ebiten.Key {
	select {
	case key := <-input.keyPressed:
		return &key
	default:
		return nil
	}
}

func NewAttractModeInput() *AttractModeInput {
	input := &AttractModeInput{
		keyPressed: make(chan ebiten.Key),
	}
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		for range ticker.C {
			key := keyDown
			if rand.Float32() < 0.5 {
				key = inputKeys[rand.Intn(len(inputKeys))]
			}
			input.keyPressed <- key
		}
	}()

	return input
}

type TouchInput struct {
	smallButtons []*Button
	largeButton  *Button
}

func (t *TouchInput) SetupButtons(screenWidth, screenHeight int) {
	// Желтый цвет для кнопок
	yellow := color.RGBA{R: 255, G: 255, B: 0, A: 255}

	smallRadius := float64(screenWidth) * 0.08
	margin := float64(screenWidth) * 0.04 // Отступ от краев экрана

	baseY := float64(screenHeight) - margin*2 - smallRadius*2
	leftX := margin + smallRadius
	rightX := margin*2 + leftX + smallRadius*2
	topX := leftX + smallRadius*1.5
	topY := baseY - smallRadius*1.5
	bottomX := topX
	bottomY := baseY + smallRadius*1.5

	t.smallButtons = []*Button{
		NewButton(leftX, baseY, smallRadius, yellow, ebiten.KeyLeft),
		NewButton(topX, topY, smallRadius, yellow, ebiten.KeyUp),
		NewButton(rightX, baseY, smallRadius, yellow, ebiten.KeyRight),
		NewButton(bottomX, bottomY, smallRadius, yellow, ebiten.KeyDown),
	}

	// Большая кнопка справа
	largeRadius := smallRadius * 1.5
	largeX := float64(screenWidth) - margin - largeRadius
	largeY := float64(screenHeight) - margin - largeRadius

	t.largeButton = NewButton(largeX, largeY, largeRadius, yellow, ebiten.KeySpace)
}

func (t *TouchInput) Read() *ebiten.Key {
	cursorX, cursorY := ebiten.CursorPosition()
	isMousePressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// Проверяем touch input (для мобильных устройств)
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		touchX, touchY := ebiten.TouchPosition(touches[0])
		cursorX, cursorY = touchX, touchY
		isMousePressed = true
	}
	for _, btn := range t.smallButtons {
		btn.Update(cursorX, cursorY, isMousePressed)
	}
	t.largeButton.Update(cursorX, cursorY, isMousePressed)

	for _, btn := range t.smallButtons {
		if btn.Pressed {
			if t.largeButton.PressedAgo() < sleepTouchMilliSec {
				return nil
			}
			t.largeButton.LastPressedTime = time.Now().UnixMilli()
			return &btn.key
		}
	}
	if t.largeButton.Pressed {
		if t.largeButton.PressedAgo() < sleepTouchMilliSec {
			return nil
		}
		t.largeButton.LastPressedTime = time.Now().UnixMilli()
		return &t.largeButton.key
	}
	return nil
}

func (t *TouchInput) IsSpacePressed() bool {
	return t.largeButton.Pressed
}

func (t *TouchInput) Draw(screen *ebiten.Image) {
	for _, btn := range t.smallButtons {
		btn.Draw(screen)
	}
	t.largeButton.Draw(screen)
}
