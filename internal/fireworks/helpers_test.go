package fireworks

import (
	"image/color"
	"math/rand"
)

type drawCall struct {
	kind string // "rect", "circle", "heart"
	x, y float64
	size float64
	clr  color.NRGBA
}

// recordingSurface captures draw calls instead of painting.
type recordingSurface struct {
	width, height float64
	calls         []drawCall
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{width: w, height: h}
}

func (s *recordingSurface) Size() (float64, float64) { return s.width, s.height }

func (s *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.calls = append(s.calls, drawCall{kind: "rect", x: x, y: y, size: w, clr: toNRGBA(clr)})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	s.calls = append(s.calls, drawCall{kind: "circle", x: cx, y: cy, size: r, clr: toNRGBA(clr)})
}

func (s *recordingSurface) FillHeart(cx, cy, size float64, clr color.Color) {
	s.calls = append(s.calls, drawCall{kind: "heart", x: cx, y: cy, size: size, clr: toNRGBA(clr)})
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(14))
}
