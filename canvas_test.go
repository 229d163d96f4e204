package daub

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	canvasWidth  = 32
	canvasHeight = 32
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func newTestCanvas() *BrushCanvas {
	return NewBrushCanvas(NewDabEngine(), image.Pt(canvasWidth, canvasHeight))
}

func TestBrushCanvas_StrokeSavesUndoStateOnce(t *testing.T) {
	assert := assert.New(t)

	c := newTestCanvas()
	c.SetBrushSize(4)

	c.StartStroke()
	c.DrawPoint(image.Pt(4, 4), red, 0, 0)
	c.DrawLine(image.Pt(4, 4), image.Pt(20, 20), red, 0, 0)
	c.DrawLine(image.Pt(20, 20), image.Pt(28, 8), red, 0, 0)
	c.EndStroke()

	// A whole stroke is one logical edit, not one per draw event.
	assert.Equal(1, c.History().UndoCount())
	assert.True(c.HasSketch())
}

func TestBrushCanvas_UndoRestoresPreStrokeContent(t *testing.T) {
	assert := assert.New(t)

	c := newTestCanvas()
	c.SetBrushSize(6)
	before := c.Image()

	c.StartStroke()
	c.DrawLine(image.Pt(2, 2), image.Pt(30, 30), red, 0, 0)
	c.EndStroke()
	assert.NotEqual(before.Pix, c.Image().Pix)

	c.Undo()
	assert.Equal(before.Pix, c.Image().Pix)

	c.Redo()
	assert.NotEqual(before.Pix, c.Image().Pix)
}

func TestBrushCanvas_FillAndClear(t *testing.T) {
	assert := assert.New(t)

	c := newTestCanvas()
	c.Fill(red)
	assert.Equal(1, c.History().UndoCount())
	assert.Equal(red, c.ColorAt(image.Pt(16, 16)))
	assert.True(c.HasSketch())

	c.Clear()
	assert.Equal(2, c.History().UndoCount())
	assert.Equal(color.NRGBA{}, c.ColorAt(image.Pt(16, 16)))
	assert.False(c.HasSketch())

	c.Undo()
	assert.Equal(red, c.ColorAt(image.Pt(16, 16)))
}

func TestBrushCanvas_SizeOverrideIsRestored(t *testing.T) {
	assert := assert.New(t)

	c := newTestCanvas()
	c.SetBrushSize(10)

	c.DrawPoint(image.Pt(16, 16), red, 0, 1)
	c.EndStroke()

	assert.Equal(10, c.BrushSize())
}

func TestBrushCanvas_ColorAtOutsideBounds(t *testing.T) {
	assert := assert.New(t)

	c := newTestCanvas()
	c.Fill(red)

	assert.Equal(color.NRGBA{}, c.ColorAt(image.Pt(-1, 4)))
	assert.Equal(color.NRGBA{}, c.ColorAt(image.Pt(canvasWidth, 0)))
	assert.Equal(red, c.ColorAt(image.Pt(0, 0)))
}

func TestBrushCanvas_ResizeScalesContent(t *testing.T) {
	assert := assert.New(t)

	c := newTestCanvas()
	c.Fill(red)
	c.Resize(image.Pt(canvasWidth*2, canvasHeight/2))

	assert.Equal(image.Pt(canvasWidth*2, canvasHeight/2), c.Size())
	assert.Equal(red, c.ColorAt(image.Pt(canvasWidth, canvasHeight/4)))
}

func TestBrushCanvas_HiddenCanvasIgnoresEdits(t *testing.T) {
	assert := assert.New(t)

	c := newTestCanvas()
	c.Fill(red)
	c.SetVisible(false)

	assert.Equal(color.NRGBA{}, c.ColorAt(image.Pt(4, 4)))
	c.Fill(color.NRGBA{G: 0xff, A: 0xff})
	c.StartStroke()
	c.DrawPoint(image.Pt(8, 8), red, 0, 0)
	c.EndStroke()
	assert.Equal(1, c.History().UndoCount())

	c.SetVisible(true)
	assert.Equal(red, c.ColorAt(image.Pt(4, 4)))
}

func TestBrushCanvas_RedoNoOpKeepsContent(t *testing.T) {
	assert := assert.New(t)

	c := newTestCanvas()
	c.Fill(red)
	before := c.Image()

	c.Redo()
	assert.Equal(before.Pix, c.Image().Pix)
	assert.Equal(1, c.History().UndoCount())
	assert.Equal(0, c.History().RedoCount())
}
