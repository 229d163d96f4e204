package daub

import (
	"image/color"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/esimov/daub/utils"
)

// Default brush settings, matching a plain round MyPaint brush.
const (
	defaultBrushRadius   = 2.0
	defaultBrushOpacity  = 1.0
	defaultBrushHardness = 0.8
)

// Brush holds the subset of MyPaint brush settings the built-in engine
// understands. The zero value is not usable, construct one with NewBrush
// or load it from a .myb file.
type Brush struct {
	Name string
	// Radius is the base dab radius in pixels.
	Radius float64
	// Opacity is the dab opacity in the [0, 1] interval.
	Opacity float64
	// Hardness controls the dab edge falloff in the [0, 1] interval,
	// 1 being a crisp circle.
	Hardness float64
	Color    color.NRGBA
}

// NewBrush returns a plain round brush with the default settings.
func NewBrush() *Brush {
	return &Brush{
		Name:     "round",
		Radius:   defaultBrushRadius,
		Opacity:  defaultBrushOpacity,
		Hardness: defaultBrushHardness,
		Color:    DefaultBrushColor,
	}
}

// LoadBrush reads a MyPaint .myb brush file.
func LoadBrush(path string) (*Brush, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open the brush file %q", path)
	}
	b, err := ParseBrush(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse the brush file %q", path)
	}
	return b, nil
}

// ParseBrush decodes MyPaint v3 brush settings from their JSON representation.
// Settings the engine does not understand are ignored, missing ones keep
// their defaults. The brush color is stored as HSV base values.
func ParseBrush(data []byte) (*Brush, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid brush JSON")
	}
	b := NewBrush()

	if name := gjson.GetBytes(data, "comment"); name.Exists() {
		b.Name = name.String()
	}
	// radius_logarithmic stores the natural log of the radius in pixels
	if v := gjson.GetBytes(data, "settings.radius_logarithmic.base_value"); v.Exists() {
		b.Radius = math.Exp(v.Float())
	}
	if v := gjson.GetBytes(data, "settings.opaque.base_value"); v.Exists() {
		b.Opacity = utils.Clamp(v.Float(), 0, 1)
	}
	if v := gjson.GetBytes(data, "settings.hardness.base_value"); v.Exists() {
		b.Hardness = utils.Clamp(v.Float(), 0, 1)
	}

	h := gjson.GetBytes(data, "settings.color_h.base_value")
	s := gjson.GetBytes(data, "settings.color_s.base_value")
	v := gjson.GetBytes(data, "settings.color_v.base_value")
	if h.Exists() || s.Exists() || v.Exists() {
		col := colorful.Hsv(utils.Clamp(h.Float(), 0, 1)*360, utils.Clamp(s.Float(), 0, 1), utils.Clamp(v.Float(), 0, 1)).Clamped()
		r, g, bl := col.RGB255()
		b.Color = color.NRGBA{R: r, G: g, B: bl, A: 0xff}
	}
	return b, nil
}
