package daub

import (
	"image"
	"image/color"
	"math"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

const (
	maxScreenX = 1366
	maxScreenY = 768
)

var (
	windowBkgColor    = color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	borderStrokeWidth = float32(4)
)

// Gui is the basic struct containing all of the information needed for the UI operation.
// It routes the window pointer and key events into the canvas through the viewport mapping.
type Gui struct {
	cfg struct {
		window struct {
			w     float64
			h     float64
			title string
		}
	}
	canvas     *BrushCanvas
	view       *Viewport
	background *image.NRGBA
	brushColor color.NRGBA

	drawing   bool
	lastPoint image.Point

	pointerTag struct{}
	keyTag     struct{}
}

// NewGUI initializes the Gio interface for a canvas.
func NewGUI(canvas *BrushCanvas, brushColor color.NRGBA) *Gui {
	gui := &Gui{
		canvas:     canvas,
		view:       NewViewport(canvas.Size()),
		brushColor: brushColor,
	}
	gui.initWindow()

	return gui
}

// SetBackground places an image behind the painted content.
// The image is rescaled to the canvas content size.
func (g *Gui) SetBackground(img *image.NRGBA) {
	g.background = scaleNRGBA(img, g.canvas.Size())
}

// initWindow initializes the GUI window options.
func (g *Gui) initWindow() {
	g.cfg.window.w, g.cfg.window.h = g.getWindowSize()
	g.cfg.window.title = "Daub — MyPaint style brush canvas"
}

// getWindowSize returns the initial window dimensions, matching the canvas
// aspect ratio and capped to the predefined screen size.
func (g *Gui) getWindowSize() (float64, float64) {
	size := g.canvas.Size()
	w, h := float64(size.X), float64(size.Y)

	// Scale down the window but retain the canvas aspect ratio in case
	// the canvas exceeds the predefined screen dimensions.
	if w > maxScreenX || h > maxScreenY {
		r := math.Min(maxScreenX/w, maxScreenY/h)
		w *= r
		h *= r
	}
	return w, h
}

// Run is the core method of the Gio GUI application. It processes the window
// events until the window is closed and blocks the calling goroutine.
func (g *Gui) Run() error {
	w := app.NewWindow(app.Title(g.cfg.window.title), app.Size(
		unit.Dp(g.cfg.window.w),
		unit.Dp(g.cfg.window.h),
	))

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			g.frame(w, gtx, e)
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

// frame recomputes the viewport placement for the current window geometry,
// processes the queued input events and draws the canvas.
func (g *Gui) frame(w *app.Window, gtx layout.Context, e system.FrameEvent) {
	g.view.Resize(e.Size)

	g.processPointer(gtx)
	g.processKeys(w, gtx)

	paint.Fill(gtx.Ops, windowBkgColor)
	g.drawContent(gtx)
	g.drawBorder(gtx)

	// Input handlers for the next frame.
	pr := clip.Rect(image.Rectangle{Max: e.Size}).Push(gtx.Ops)
	pointer.InputOp{
		Tag:   &g.pointerTag,
		Grab:  g.drawing,
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(gtx.Ops)
	pr.Pop()

	key.InputOp{
		Tag:  &g.keyTag,
		Keys: key.Set("Short-Z|Short-Shift-Z|F|C|" + key.NameEscape),
	}.Add(gtx.Ops)
	key.FocusOp{Tag: &g.keyTag}.Add(gtx.Ops)
}

// processPointer feeds press, drag and release events into the canvas as
// brush strokes, mapping window coordinates to content coordinates.
// A secondary button stroke paints with a single pixel brush, a primary
// press with the shortcut modifier held picks up the color under the cursor.
func (g *Gui) processPointer(gtx layout.Context) {
	for _, ev := range gtx.Events(&g.pointerTag) {
		ev, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		pos := image.Pt(int(ev.Position.X+0.5), int(ev.Position.Y+0.5))
		sizeOverride := 0
		if ev.Buttons.Contain(pointer.ButtonSecondary) {
			sizeOverride = 1
		}

		switch ev.Type {
		case pointer.Press:
			if ev.Modifiers.Contain(key.ModShortcut) {
				g.pickColor(g.view.ToContent(pos))
				continue
			}
			g.drawing = true
			g.lastPoint = g.view.ToContent(pos)
			g.canvas.StartStroke()
			g.canvas.DrawPoint(g.lastPoint, g.brushColor, 0, sizeOverride)
		case pointer.Drag:
			if !g.drawing {
				continue
			}
			pt := g.view.ToContent(pos)
			g.canvas.DrawLine(g.lastPoint, pt, g.brushColor, 0, sizeOverride)
			g.lastPoint = pt
		case pointer.Release:
			if g.drawing {
				g.drawing = false
				g.canvas.EndStroke()
			}
		}
	}
}

// processKeys handles the keyboard shortcuts: undo, redo, fill, clear and quit.
func (g *Gui) processKeys(w *app.Window, gtx layout.Context) {
	for _, ev := range gtx.Events(&g.keyTag) {
		ev, ok := ev.(key.Event)
		if !ok || ev.State != key.Press {
			continue
		}
		switch ev.Name {
		case "Z":
			if ev.Modifiers.Contain(key.ModShift) {
				g.canvas.Redo()
			} else {
				g.canvas.Undo()
			}
		case "F":
			g.canvas.Fill(g.brushColor)
		case "C":
			g.canvas.Clear()
		case key.NameEscape:
			w.Perform(system.ActionClose)
		}
	}
}

// pickColor samples the composited color under a content-space point
// and makes it the active brush color.
func (g *Gui) pickColor(p image.Point) {
	sketch := g.canvas.ColorAt(p)
	bkg := color.NRGBA{}
	if g.background != nil && p.In(g.background.Bounds()) {
		bkg = g.background.NRGBAAt(p.X, p.Y)
	}
	if picked := blendOver(sketch, bkg); picked.A > 0 {
		g.brushColor = picked
	}
}

// drawContent paints the background image and the canvas content
// scaled into the viewport placement.
func (g *Gui) drawContent(gtx layout.Context) {
	placement := g.view.Placement()
	sx, sy := g.view.Scale()

	tr := f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(float32(sx), float32(sy))).
		Offset(layout.FPt(placement.Min))
	ts := op.Affine(tr).Push(gtx.Ops)
	defer ts.Pop()

	content := image.Rectangle{Max: g.view.ContentSize()}
	cl := clip.Rect(content).Push(gtx.Ops)
	defer cl.Pop()

	if g.background != nil {
		paint.NewImageOp(g.background).Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
	}
	paint.NewImageOp(g.canvas.Image()).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// drawBorder strokes a frame around the placement in a color
// contrasting the window background.
func (g *Gui) drawBorder(gtx layout.Context) {
	placement := g.view.Placement()
	frame := image.Rectangle{
		Min: placement.Min.Sub(image.Pt(2, 2)),
		Max: placement.Max.Add(image.Pt(2, 2)),
	}
	paint.FillShape(gtx.Ops, contrastColor(windowBkgColor), clip.Stroke{
		Path:  clip.Rect(frame).Path(),
		Width: borderStrokeWidth,
	}.Op())
}
