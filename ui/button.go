package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Button struct {
	text            string
	rect            image.Rectangle
	pressedTouchIDs []ebiten.TouchID // store it here to avoid reallocating it for each Update
}

func NewButton(text string, x, y, width, height int) *Button {
	return &Button{
		text: text,
		rect: image.Rect(x, y, x+width, y+height)}
}

func (b *Button) SetPosition(x, y int) {
	b.rect = image.Rect(x, y, x+b.rect.Dx(), y+b.rect.Dy())
}

func (b *Button) Draw(dst *ebiten.Image) {
	x, y := float32(b.rect.Min.X), float32(b.rect.Min.Y)
	w, h := float32(b.rect.Dx()), float32(b.rect.Dy())
	vector.DrawFilledRect(dst, x, y, w, h, gridLineColor, false)
	vector.StrokeRect(dst, x, y, w, h, 1, selectedColor, false)
	ebitenutil.DebugPrintAt(dst, b.text, b.rect.Min.X+4, b.rect.Min.Y+(b.rect.Dy()-16)/2)
}

// Update reports whether the button was clicked or touched since the last frame.
func (b *Button) Update() bool {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if image.Pt(x, y).In(b.rect) {
			return true
		}
	}
	b.pressedTouchIDs = b.pressedTouchIDs[:0]
	for _, touchID := range inpututil.AppendJustPressedTouchIDs(b.pressedTouchIDs) {
		x, y := ebiten.TouchPosition(touchID)
		if image.Pt(x, y).In(b.rect) {
			return true
		}
	}
	return false
}
