package daub

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esimov/daub/utils"
)

func TestViewport_Placement(t *testing.T) {
	assert := assert.New(t)

	v := NewViewport(image.Pt(1024, 1024))
	v.Recompute(image.Pt(500, 700), 2)

	// scale = min(496/1024, 696/1024), the placement is horizontally flush
	// with the margin and vertically centered.
	p := v.Placement()
	assert.Equal(496, p.Dx())
	assert.Equal(496, p.Dy())
	assert.Equal(2, p.Min.X)
	assert.Equal(102, p.Min.Y)
}

func TestViewport_PlacementInsideContainer(t *testing.T) {
	assert := assert.New(t)

	containers := []image.Point{
		{X: 500, Y: 700},
		{X: 700, Y: 500},
		{X: 40, Y: 900},
		{X: 3, Y: 3},
	}
	v := NewViewport(image.Pt(640, 480))
	for _, c := range containers {
		v.Resize(c)
		p := v.Placement()
		assert.True(p.In(image.Rectangle{Max: c}), "placement %v escapes container %v", p, c)
	}
}

func TestViewport_ZeroAreaContent(t *testing.T) {
	assert := assert.New(t)

	v := NewViewport(image.Point{})
	assert.NotPanics(func() {
		v.Resize(image.Pt(300, 300))
	})
	assert.True(v.Placement().In(image.Rectangle{Max: image.Pt(300, 300)}))
}

func TestViewport_DefaultBorder(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(13, BorderSize(image.Pt(500, 700)))
	assert.Equal(1, BorderSize(image.Pt(10, 10)))

	v := NewViewport(image.Pt(100, 100))
	v.Resize(image.Pt(500, 700))
	assert.Equal(13, v.Border())
}

func TestViewport_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	v := NewViewport(image.Pt(1024, 1024))
	v.Recompute(image.Pt(500, 700), 2)

	points := []image.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 100, Y: 200},
		{X: 511, Y: 512},
		{X: 1023, Y: 1023},
	}
	for _, p := range points {
		rt := v.ToContent(v.ToContainer(p))
		assert.LessOrEqual(utils.Abs(rt.X-p.X), 1, "x drift for %v", p)
		assert.LessOrEqual(utils.Abs(rt.Y-p.Y), 1, "y drift for %v", p)
	}
}

func TestViewport_MappingScalesAndOffsets(t *testing.T) {
	assert := assert.New(t)

	v := NewViewport(image.Pt(100, 100))
	v.Recompute(image.Pt(220, 220), 10)

	// 200x200 placement at (10, 10), so content coordinates are doubled.
	assert.Equal(image.Pt(10, 10), v.ToContainer(image.Pt(0, 0)))
	assert.Equal(image.Pt(110, 110), v.ToContainer(image.Pt(50, 50)))
	assert.Equal(image.Pt(50, 50), v.ToContent(image.Pt(110, 110)))
}

func TestViewport_SetContentSizeIdempotence(t *testing.T) {
	assert := assert.New(t)

	v := NewViewport(image.Pt(256, 256))
	v.Resize(image.Pt(500, 500))
	before := v.Placement()

	v.SetContentSize(image.Pt(256, 256))
	assert.Equal(before, v.Placement())

	v.SetContentSize(image.Pt(512, 256))
	assert.Equal(image.Pt(512, 256), v.ContentSize())
	assert.NotEqual(before, v.Placement())
}

func TestViewport_MappingBeforePlacementPanics(t *testing.T) {
	assert := assert.New(t)

	v := NewViewport(image.Pt(64, 64))
	assert.Panics(func() { v.ToContent(image.Pt(1, 1)) })
	assert.Panics(func() { v.ToContainer(image.Pt(1, 1)) })
}
