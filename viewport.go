package daub

import (
	"image"
	"math"

	"github.com/esimov/daub/utils"
)

// Viewport maps between a resizable container (the window) and a fixed-aspect
// logical content area (the canvas). The content is placed as the largest
// rectangle matching its aspect ratio, centered inside the container and inset
// by a uniform border.
//
// The content size must be established before the first coordinate mapping;
// ToContent and ToContainer panic otherwise.
type Viewport struct {
	content   image.Point
	container image.Point
	placement image.Rectangle
	border    int
	valid     bool
}

// NewViewport creates a viewport for content of the given logical size.
func NewViewport(content image.Point) *Viewport {
	return &Viewport{content: content}
}

// SetContentSize updates the logical content dimensions and recomputes the
// placement with the last known container geometry. Setting the current size
// again is a no-op.
func (v *Viewport) SetContentSize(size image.Point) {
	if size.Eq(v.content) {
		return
	}
	v.content = size
	if v.container != (image.Point{}) {
		v.Resize(v.container)
	}
}

// ContentSize returns the logical (unscaled) content dimensions.
func (v *Viewport) ContentSize() image.Point {
	return v.content
}

// Resize recomputes the placement for a new container geometry,
// using the default border width for that geometry.
func (v *Viewport) Resize(container image.Point) {
	v.Recompute(container, BorderSize(container))
}

// BorderSize returns the default border width of a container geometry.
func BorderSize(container image.Point) int {
	return utils.Min(container.X, container.Y)/40 + 1
}

// Recompute calculates the placement of the content inside the container,
// preserving the content aspect ratio and keeping a uniform margin of
// borderWidth pixels around the placed rectangle.
func (v *Viewport) Recompute(container image.Point, borderWidth int) {
	v.container = container
	v.border = borderWidth

	cw := container.X - 2*borderWidth
	ch := container.Y - 2*borderWidth
	scale := math.Min(
		float64(cw)/float64(utils.Max(v.content.X, 1)),
		float64(ch)/float64(utils.Max(v.content.Y, 1)),
	)
	if scale < 0 {
		scale = 0
	}

	w := float64(v.content.X) * scale
	h := float64(v.content.Y) * scale
	x := float64(borderWidth)
	y := float64(borderWidth)
	if w < float64(cw) {
		x += (float64(cw) - w) / 2
	}
	if h < float64(ch) {
		y += (float64(ch) - h) / 2
	}
	v.placement = image.Rect(int(x), int(y), int(x)+int(w), int(y)+int(h))
	v.valid = true
}

// Placement returns the rectangle where the content is drawn,
// in container coordinates.
func (v *Viewport) Placement() image.Rectangle {
	return v.placement
}

// Border returns the border width used by the current placement.
func (v *Viewport) Border() int {
	return v.border
}

// Scale returns the horizontal and vertical factors scaling content
// coordinates to container coordinates.
func (v *Viewport) Scale() (float64, float64) {
	v.check()
	sx := float64(v.placement.Dx()) / float64(utils.Max(v.content.X, 1))
	sy := float64(v.placement.Dy()) / float64(utils.Max(v.content.Y, 1))
	return sx, sy
}

// ToContent maps a point in container coordinates to content coordinates,
// converting pointer input into drawing coordinates.
func (v *Viewport) ToContent(p image.Point) image.Point {
	sx, sy := v.Scale()
	if sx == 0 || sy == 0 {
		return image.Point{}
	}
	return image.Pt(
		int(math.Round(float64(p.X-v.placement.Min.X)/sx)),
		int(math.Round(float64(p.Y-v.placement.Min.Y)/sy)),
	)
}

// ToContainer maps a content-space point to container coordinates,
// used for cursor and overlay placement.
func (v *Viewport) ToContainer(p image.Point) image.Point {
	sx, sy := v.Scale()
	return image.Pt(
		v.placement.Min.X+int(math.Round(float64(p.X)*sx)),
		v.placement.Min.Y+int(math.Round(float64(p.Y)*sy)),
	)
}

func (v *Viewport) check() {
	if !v.valid {
		panic("daub: viewport placement not computed, set the content size and container geometry first")
	}
}
