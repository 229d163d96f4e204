package daub

import (
	"image"
	"image/color"
	"math"

	"github.com/esimov/daub/utils"
)

// BrushEngine is the capability interface over the native brush library.
// The canvas treats the engine as an opaque surface owner: it loads brushes
// and images into it, feeds it stroke coordinates in content space and reads
// the rendered result back. A binding to the real MyPaint engine implements
// the same interface through a foreign-function adapter.
type BrushEngine interface {
	LoadBrush(b *Brush)
	SetBrushColor(c color.NRGBA)
	SetBrushRadius(radius float64)
	SetSurfaceSize(size image.Point)
	SurfaceSize() image.Point
	LoadImage(img *image.NRGBA)
	RenderImage() *image.NRGBA
	ClearSurface()
	StartStroke()
	StrokeTo(x, y, pressure float64)
	EndStroke()
}

// dab spacing along a stroke segment, as a fraction of the brush radius.
const dabSpacing = 0.35

// DabEngine is the built-in software brush engine. It stamps round,
// hardness-faded dabs interpolated along the stroke path onto an NRGBA
// surface. It trades the expressiveness of the native engine for having
// no foreign dependencies, which is all the demo needs.
type DabEngine struct {
	surface *image.NRGBA
	brush   *Brush

	stroking bool
	hasLast  bool
	lastX    float64
	lastY    float64
	leftover float64
}

var _ BrushEngine = (*DabEngine)(nil)

// NewDabEngine creates a software brush engine with an empty 1x1 surface
// and the default round brush loaded.
func NewDabEngine() *DabEngine {
	return &DabEngine{
		surface: image.NewNRGBA(image.Rect(0, 0, 1, 1)),
		brush:   NewBrush(),
	}
}

// LoadBrush replaces the active brush settings.
func (e *DabEngine) LoadBrush(b *Brush) {
	e.brush = b
}

// SetBrushColor overrides the active brush color.
func (e *DabEngine) SetBrushColor(c color.NRGBA) {
	e.brush.Color = c
}

// SetBrushRadius overrides the active brush radius in pixels.
func (e *DabEngine) SetBrushRadius(radius float64) {
	e.brush.Radius = math.Max(radius, 0.5)
}

// SetSurfaceSize resizes the drawing surface, discarding its content.
func (e *DabEngine) SetSurfaceSize(size image.Point) {
	e.surface = image.NewNRGBA(image.Rect(0, 0, utils.Max(size.X, 1), utils.Max(size.Y, 1)))
}

// SurfaceSize returns the surface dimensions in pixels.
func (e *DabEngine) SurfaceSize() image.Point {
	return e.surface.Bounds().Size()
}

// LoadImage replaces the surface content, resizing the surface to the image.
func (e *DabEngine) LoadImage(img *image.NRGBA) {
	e.surface = cloneNRGBA(img)
}

// RenderImage returns a copy of the current surface content.
func (e *DabEngine) RenderImage() *image.NRGBA {
	return cloneNRGBA(e.surface)
}

// ClearSurface replaces the surface content with transparency.
func (e *DabEngine) ClearSurface() {
	e.surface = image.NewNRGBA(e.surface.Bounds())
}

// StartStroke begins a new stroke. The first StrokeTo call after it places
// a single dab instead of drawing a segment.
func (e *DabEngine) StartStroke() {
	e.stroking = true
	e.hasLast = false
	e.leftover = 0
}

// StrokeTo extends the active stroke to a point in surface coordinates.
// Pressure scales the dab size and opacity; a value of zero or below means
// no pressure information and paints with the base settings.
func (e *DabEngine) StrokeTo(x, y, pressure float64) {
	if !e.stroking {
		e.StartStroke()
	}
	if !e.hasLast {
		e.stamp(x, y, pressure)
		e.lastX, e.lastY = x, y
		e.hasLast = true
		return
	}

	dx, dy := x-e.lastX, y-e.lastY
	dist := math.Hypot(dx, dy)
	step := math.Max(e.radius(pressure)*dabSpacing, 1)

	// Walk the segment in dab spaced steps, carrying the remainder
	// over so that fast pointer movement keeps an even dab density.
	pos := step - e.leftover
	for pos <= dist {
		t := pos / dist
		e.stamp(e.lastX+dx*t, e.lastY+dy*t, pressure)
		pos += step
	}
	e.leftover = dist - (pos - step)
	e.lastX, e.lastY = x, y
}

// EndStroke finishes the active stroke.
func (e *DabEngine) EndStroke() {
	e.stroking = false
	e.hasLast = false
}

// radius returns the effective dab radius under the given pressure.
func (e *DabEngine) radius(pressure float64) float64 {
	r := e.brush.Radius
	if pressure > 0 {
		r *= utils.Clamp(pressure, 0.1, 2)
	}
	return math.Max(r, 0.5)
}

// stamp composits one round dab centered at (cx, cy) onto the surface.
func (e *DabEngine) stamp(cx, cy, pressure float64) {
	radius := e.radius(pressure)
	opacity := e.brush.Opacity
	if pressure > 0 {
		opacity *= utils.Clamp(pressure, 0, 1)
	}

	bounds := e.surface.Bounds()
	minX := utils.Max(int(math.Floor(cx-radius)), bounds.Min.X)
	minY := utils.Max(int(math.Floor(cy-radius)), bounds.Min.Y)
	maxX := utils.Min(int(math.Ceil(cx+radius)), bounds.Max.X-1)
	maxY := utils.Min(int(math.Ceil(cy+radius)), bounds.Max.Y-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dist := math.Hypot(float64(x)-cx, float64(y)-cy)
			alpha := opacity * e.falloff(dist/radius)
			if alpha <= 0 {
				continue
			}
			src := e.brush.Color
			src.A = uint8(alpha*float64(e.brush.Color.A) + 0.5)
			e.surface.SetNRGBA(x, y, blendOver(src, e.surface.NRGBAAt(x, y)))
		}
	}
}

// falloff computes the dab coverage at a normalized distance from its center.
// Inside the hardness core the dab is opaque, outside it fades linearly to the rim.
func (e *DabEngine) falloff(d float64) float64 {
	if d >= 1 {
		return 0
	}
	if d <= e.brush.Hardness {
		return 1
	}
	if e.brush.Hardness >= 1 {
		return 1
	}
	return 1 - (d-e.brush.Hardness)/(1-e.brush.Hardness)
}
