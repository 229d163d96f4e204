package daub

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is the capability interface for drawable raster surfaces. It pairs
// the content accessor/mutator used by the undo history with the drawing
// operations the input layer invokes.
//
// Pressure carries the tablet pen pressure where available; a value of zero
// or below means no pressure information. A sizeOverride above zero replaces
// the configured brush size for that operation only.
type Canvas interface {
	ContentStore
	Resize(size image.Point)
	StartStroke()
	EndStroke()
	DrawPoint(p image.Point, c color.NRGBA, pressure float64, sizeOverride int)
	DrawLine(from, to image.Point, c color.NRGBA, pressure float64, sizeOverride int)
	Fill(c color.NRGBA)
	Clear()
	SetBrushSize(size int)
	BrushSize() int
	Undo()
	Redo()
}

// BrushCanvas is a Canvas painting through a BrushEngine, with bounded
// undo/redo history over the engine surface. All operations run on the
// single event thread, the canvas performs no locking.
type BrushCanvas struct {
	engine  BrushEngine
	history *History

	size      image.Point
	brushSize int
	drawing   bool
	hasSketch bool
	visible   bool

	savedBrushSize int
	savedImage     *image.NRGBA
}

var _ Canvas = (*BrushCanvas)(nil)

// NewBrushCanvas creates a canvas of the given pixel size drawing through
// the supplied engine. The engine surface is resized to match.
func NewBrushCanvas(engine BrushEngine, size image.Point) *BrushCanvas {
	c := &BrushCanvas{
		engine:    engine,
		size:      size,
		brushSize: 1,
		visible:   true,
	}
	engine.SetSurfaceSize(size)
	c.history = NewHistory(c, MaxUndo)
	return c
}

// History exposes the undo/redo stacks, for depth and timestamp queries.
func (c *BrushCanvas) History() *History {
	return c.history
}

// Image returns the canvas content rendered by the engine,
// scaled to the canvas size if the surface diverged from it.
func (c *BrushCanvas) Image() *image.NRGBA {
	return scaleNRGBA(c.engine.RenderImage(), c.size)
}

// SetImage loads new content into the engine, overwriting the current one.
// The engine surface is resized to the image when the sizes differ.
func (c *BrushCanvas) SetImage(img *image.NRGBA) {
	c.engine.ClearSurface()
	if !c.engine.SurfaceSize().Eq(img.Bounds().Size()) {
		c.engine.SetSurfaceSize(img.Bounds().Size())
	}
	c.size = img.Bounds().Size()
	c.engine.LoadImage(img)
}

// Size returns the canvas dimensions in pixels.
func (c *BrushCanvas) Size() image.Point {
	return c.size
}

// Resize updates the canvas size, scaling any content to match.
func (c *BrushCanvas) Resize(size image.Point) {
	if size.Eq(c.size) {
		return
	}
	img := scaleNRGBA(c.Image(), size)
	c.SetImage(img)
}

// HasSketch returns whether the canvas holds non-empty drawn content.
func (c *BrushCanvas) HasSketch() bool {
	return c.hasSketch
}

// SetBrushSize sets the base brush blot diameter in pixels.
func (c *BrushCanvas) SetBrushSize(size int) {
	c.brushSize = size
	c.engine.SetBrushRadius(float64(size) / 2)
}

// BrushSize returns the base brush blot diameter in pixels.
func (c *BrushCanvas) BrushSize() int {
	return c.brushSize
}

// StartStroke signals the start of a brush stroke. It saves the undo state
// once for the whole stroke, so it has to be called once whenever user
// input starts or resumes, never per incremental draw event.
func (c *BrushCanvas) StartStroke() {
	if !c.visible {
		return
	}
	c.history.Save(true)
	c.engine.StartStroke()
	c.drawing = true
}

// EndStroke signals the end of a brush stroke, to be called once whenever
// user input stops or pauses.
func (c *BrushCanvas) EndStroke() {
	if !c.visible {
		return
	}
	c.engine.EndStroke()
	c.drawing = false
	if c.savedBrushSize > 0 {
		c.SetBrushSize(c.savedBrushSize)
		c.savedBrushSize = 0
	}
}

// DrawPoint draws a single brush blot centered at a point in content coordinates.
func (c *BrushCanvas) DrawPoint(p image.Point, col color.NRGBA, pressure float64, sizeOverride int) {
	if !c.visible {
		return
	}
	c.applyOverride(sizeOverride)
	c.hasSketch = true
	c.engine.SetBrushColor(col)
	if !c.drawing {
		c.StartStroke()
	}
	c.engine.StrokeTo(float64(p.X), float64(p.Y), pressure)
}

// DrawLine draws a brush stroke segment between two points in content coordinates.
func (c *BrushCanvas) DrawLine(from, to image.Point, col color.NRGBA, pressure float64, sizeOverride int) {
	if !c.visible {
		return
	}
	c.applyOverride(sizeOverride)
	c.hasSketch = true
	c.engine.SetBrushColor(col)
	if !c.drawing {
		c.StartStroke()
		c.engine.StrokeTo(float64(from.X), float64(from.Y), pressure)
	}
	c.engine.StrokeTo(float64(to.X), float64(to.Y), pressure)
}

// Fill saves the undo state and floods the canvas with a single color.
func (c *BrushCanvas) Fill(col color.NRGBA) {
	if !c.visible {
		return
	}
	c.history.Save(true)
	c.hasSketch = true

	img := image.NewNRGBA(image.Rectangle{Max: c.size})
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	c.SetImage(img)
}

// Clear saves the undo state and replaces the canvas content with transparency.
func (c *BrushCanvas) Clear() {
	if !c.visible {
		return
	}
	c.history.Save(true)
	c.hasSketch = false
	c.engine.ClearSurface()
}

// Undo reverses the last change applied to the canvas content.
func (c *BrushCanvas) Undo() {
	c.history.Undo()
}

// Redo restores a change previously reversed through Undo.
func (c *BrushCanvas) Redo() {
	c.history.Redo()
}

// ColorAt returns the canvas color at a content-space point, or a completely
// transparent color when the point lies outside the canvas bounds.
func (c *BrushCanvas) ColorAt(p image.Point) color.NRGBA {
	img := c.Image()
	if !p.In(img.Bounds()) {
		return color.NRGBA{}
	}
	return img.NRGBAAt(p.X, p.Y)
}

// SetVisible shows or hides the canvas. Hiding stashes the current content
// and clears the surface, showing it again restores the stashed content.
// Drawing operations on a hidden canvas are ignored.
func (c *BrushCanvas) SetVisible(visible bool) {
	if visible == c.visible {
		return
	}
	if visible {
		c.visible = true
		if c.savedImage != nil {
			c.SetImage(c.savedImage)
			c.savedImage = nil
		}
	} else {
		c.savedImage = c.Image()
		c.engine.ClearSurface()
		c.visible = false
	}
}

// Visible returns whether the canvas content is currently shown.
func (c *BrushCanvas) Visible() bool {
	return c.visible
}

// applyOverride swaps in a temporary brush size, remembering the configured
// one so that EndStroke can restore it.
func (c *BrushCanvas) applyOverride(sizeOverride int) {
	if sizeOverride > 0 {
		if c.savedBrushSize == 0 {
			c.savedBrushSize = c.brushSize
		}
		c.SetBrushSize(sizeOverride)
	}
}
