// Package canvas paints onto ebiten images through the fireworks.Surface
// interface.
package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Surface adapts an *ebiten.Image.
type Surface struct {
	img      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func New(img *ebiten.Image) *Surface {
	return &Surface{img: img}
}

// Image returns the underlying image.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *Surface) FillHeart(cx, cy, size float64, clr color.Color) {
	path := HeartPath(float32(cx), float32(cy), float32(size))

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])

	// vertex colours are straight alpha
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(c.R) / 0xff
		s.vertices[i].ColorG = float32(c.G) / 0xff
		s.vertices[i].ColorB = float32(c.B) / 0xff
		s.vertices[i].ColorA = float32(c.A) / 0xff
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.img.DrawTriangles(s.vertices, s.indices, white(), op)
}

// HeartPath outlines a heart whose bounding box is size wide, centred on
// (cx, cy).
func HeartPath(cx, cy, size float32) *vector.Path {
	half := size / 2
	top := cy - half*0.5

	path := &vector.Path{}
	path.MoveTo(cx, top)
	path.CubicTo(cx, top-half*0.6, cx-half, top-half*0.6, cx-half, top)
	path.CubicTo(cx-half, top+half*0.6, cx, top+half, cx, cy+half)
	path.CubicTo(cx, top+half, cx+half, top+half*0.6, cx+half, top)
	path.CubicTo(cx+half, top-half*0.6, cx, top-half*0.6, cx, top)
	path.Close()
	return path
}
