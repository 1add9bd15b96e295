package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет круглую кнопку
type Button struct {
	X, Y            float64 // Центр кнопки
	Radius          float64 // Радиус
	Color           color.RGBA
	Pressed         bool
	LastPressedTime int64

	key ebiten.Key
}

// NewButton создает новую кнопку
func NewButton(x, y, radius float64, c color.RGBA, key ebiten.Key) *Button {
	return &Button{
		X:      x,
		Y:      y,
		Radius: radius,
		Color:  c,
		key:    key,
	}
}

// Contains проверяет, находится ли точка внутри кнопки
func (b *Button) Contains(x, y int) bool {
	dx := float64(x) - b.X
	dy := float64(y) - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= b.Radius
}

// Update обновляет состояние кнопки
func (b *Button) Update(cursorX, cursorY int, isPressed bool) {
	b.Pressed = b.Contains(cursorX, cursorY) && isPressed
}

func (b *Button) PressedAgo() int64 {
	return time.Now().UnixMilli() - b.LastPressedTime
}

// Draw рисует кнопку
func (b *Button) Draw(screen *ebiten.Image) {
	// Цвет кнопки (темнее при нажатии)
	btnColor := b.Color
	if b.Pressed {
		btnColor = color.RGBA{
			R: uint8(float32(b.Color.R) * 0.7),
			G: uint8(float32(b.Color.G) * 0.7),
			B: uint8(float32(b.Color.B) * 0.7),
			A: b.Color.A,
		}
	}

	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), btnColor, true)
	vector.StrokeCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), 3, color.Black, true)
}
