package scene

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/valentine-fireworks/internal/config"
)

const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// button is a labelled rectangle that can be scaled and rotated about its
// centre when drawn. Hit testing ignores the transform.
type button struct {
	elem          config.Element
	X, Y          float64
	Width, Height float64
	Label         string
	Scale         float64
	Rotation      float64 // degrees
	Fill          color.Color

	img *ebiten.Image
}

func newButton(elem config.Element, fill color.Color, viewW, viewH float64) *button {
	b := &button{
		elem:   elem,
		Width:  elem.Width,
		Height: elem.Height,
		Label:  elem.Label,
		Scale:  1,
		Fill:   fill,
	}
	b.layout(viewW, viewH)
	return b
}

func (b *button) layout(viewW, viewH float64) {
	b.X, b.Y = b.elem.Rect(viewW, viewH)
}

func (b *button) contains(px, py float64) bool {
	return px >= b.X && px <= b.X+b.Width && py >= b.Y && py <= b.Y+b.Height
}

func (b *button) draw(screen *ebiten.Image) {
	w, h := int(math.Ceil(b.Width)), int(math.Ceil(b.Height))
	if b.img == nil || b.img.Bounds().Dx() != w || b.img.Bounds().Dy() != h {
		if b.img != nil {
			b.img.Deallocate()
		}
		b.img = ebiten.NewImage(w, h)
	}
	b.img.Clear()

	vector.DrawFilledRect(b.img, 0, 0, float32(b.Width), float32(b.Height), b.Fill, true)
	vector.StrokeRect(b.img, 1, 1, float32(b.Width)-2, float32(b.Height)-2, 2, color.RGBA{R: 255, G: 255, B: 255, A: 200}, true)

	textX := (w - len(b.Label)*debugGlyphWidth) / 2
	textY := (h - debugGlyphHeight) / 2
	ebitenutil.DebugPrintAt(b.img, b.Label, textX, textY)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-b.Width/2, -b.Height/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Rotate(b.Rotation * math.Pi / 180)
	op.GeoM.Translate(b.X+b.Width/2, b.Y+b.Height/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.img, op)
}
