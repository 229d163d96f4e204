package daub

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDabEngine_SurfaceLifecycle(t *testing.T) {
	assert := assert.New(t)

	e := NewDabEngine()
	assert.Equal(image.Pt(1, 1), e.SurfaceSize())

	e.SetSurfaceSize(image.Pt(20, 10))
	assert.Equal(image.Pt(20, 10), e.SurfaceSize())

	img := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	img.SetNRGBA(3, 3, color.NRGBA{B: 0xff, A: 0xff})
	e.LoadImage(img)
	assert.Equal(image.Pt(6, 6), e.SurfaceSize())
	assert.Equal(color.NRGBA{B: 0xff, A: 0xff}, e.RenderImage().NRGBAAt(3, 3))

	e.ClearSurface()
	assert.Equal(image.Pt(6, 6), e.SurfaceSize())
	assert.Equal(color.NRGBA{}, e.RenderImage().NRGBAAt(3, 3))
}

func TestDabEngine_RenderDoesNotAliasSurface(t *testing.T) {
	assert := assert.New(t)

	e := NewDabEngine()
	e.SetSurfaceSize(image.Pt(4, 4))

	rendered := e.RenderImage()
	rendered.SetNRGBA(0, 0, color.NRGBA{R: 0xff, A: 0xff})
	assert.Equal(color.NRGBA{}, e.RenderImage().NRGBAAt(0, 0))

	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	e.LoadImage(src)
	src.SetNRGBA(1, 1, color.NRGBA{G: 0xff, A: 0xff})
	assert.Equal(color.NRGBA{}, e.RenderImage().NRGBAAt(1, 1))
}

func TestDabEngine_StampsDabAtStrokeStart(t *testing.T) {
	assert := assert.New(t)

	e := NewDabEngine()
	e.SetSurfaceSize(image.Pt(16, 16))
	e.SetBrushColor(color.NRGBA{R: 0xff, A: 0xff})

	e.StartStroke()
	e.StrokeTo(8, 8, 0)
	e.EndStroke()

	got := e.RenderImage().NRGBAAt(8, 8)
	assert.Equal(color.NRGBA{R: 0xff, A: 0xff}, got)
	// A dab is local, pixels far from it stay untouched.
	assert.Equal(color.NRGBA{}, e.RenderImage().NRGBAAt(0, 15))
}

func TestDabEngine_StrokePaintsAlongSegment(t *testing.T) {
	assert := assert.New(t)

	e := NewDabEngine()
	e.SetSurfaceSize(image.Pt(32, 8))
	e.SetBrushColor(color.NRGBA{A: 0xff})
	e.SetBrushRadius(2)

	e.StartStroke()
	e.StrokeTo(2, 4, 0)
	e.StrokeTo(29, 4, 0)
	e.EndStroke()

	img := e.RenderImage()
	for x := 2; x <= 29; x++ {
		assert.NotZero(img.NRGBAAt(x, 4).A, "no paint at x=%d", x)
	}
}

func TestDabEngine_PressureScalesDab(t *testing.T) {
	assert := assert.New(t)

	light := NewDabEngine()
	light.SetSurfaceSize(image.Pt(32, 32))
	light.SetBrushRadius(6)
	light.StartStroke()
	light.StrokeTo(16, 16, 0.2)
	light.EndStroke()

	full := NewDabEngine()
	full.SetSurfaceSize(image.Pt(32, 32))
	full.SetBrushRadius(6)
	full.StartStroke()
	full.StrokeTo(16, 16, 0)
	full.EndStroke()

	countPainted := func(img *image.NRGBA) int {
		var n int
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] > 0 {
				n++
			}
		}
		return n
	}
	assert.Less(countPainted(light.RenderImage()), countPainted(full.RenderImage()))
}

func TestDabEngine_StrokeToWithoutStartImplicitlyStarts(t *testing.T) {
	assert := assert.New(t)

	e := NewDabEngine()
	e.SetSurfaceSize(image.Pt(8, 8))
	e.StrokeTo(4, 4, 0)

	assert.NotZero(e.RenderImage().NRGBAAt(4, 4).A)
}
