package daub

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// DefaultBrushColor is the brush color used when no brush file is loaded.
var DefaultBrushColor = color.NRGBA{A: 0xff}

// LoadImage decodes an image file into NRGBA format.
func LoadImage(src string) (*image.NRGBA, error) {
	file, err := os.Open(src)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open the image file %q", src)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode the image file %q", src)
	}
	return toNRGBA(img), nil
}

// SaveImage encodes an image into a destination file,
// choosing the encoder by the file extension.
func SaveImage(dst string, img *image.NRGBA) error {
	file, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "could not create the output file %q", dst)
	}
	defer file.Close()

	switch filepath.Ext(dst) {
	case ".png":
		err = png.Encode(file, img)
	case ".bmp":
		err = bmp.Encode(file, img)
	case "", ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: 100})
	default:
		return errors.Errorf("unsupported image format %q", filepath.Ext(dst))
	}
	return errors.Wrapf(err, "could not encode the image to %q", dst)
}

// toNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok {
		b := src.Bounds()
		if b.Min.X == 0 && b.Min.Y == 0 {
			return src
		}
	}
	return imaging.Clone(img)
}

// cloneNRGBA returns a deep copy of the source image sharing no pixel data with it.
func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// scaleNRGBA resizes an image to the given size, retaining its content.
func scaleNRGBA(src *image.NRGBA, size image.Point) *image.NRGBA {
	if src.Bounds().Size().Eq(size) {
		return src
	}
	return imaging.Resize(src, size.X, size.Y, imaging.Linear)
}

// blendOver composits the foreground color over the background
// using the source-over alpha rule.
func blendOver(fg, bg color.NRGBA) color.NRGBA {
	fa := float64(fg.A) / 255
	ba := float64(bg.A) / 255
	outA := fa + ba*(1-fa)
	if outA == 0 {
		return color.NRGBA{}
	}
	blend := func(f, b uint8) uint8 {
		c := (float64(f)*fa + float64(b)*ba*(1-fa)) / outA
		return uint8(c + 0.5)
	}
	return color.NRGBA{
		R: blend(fg.R, bg.R),
		G: blend(fg.G, bg.G),
		B: blend(fg.B, bg.B),
		A: uint8(outA*255 + 0.5),
	}
}

// contrastColor returns black or white, whichever reads better against the
// given color. The relative luminance is computed over the linearized
// channels following the W3C accessibility guidelines.
func contrastColor(c color.NRGBA) color.NRGBA {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	r, g, b := col.LinearRgb()
	luminance := 0.2126*r + 0.7152*g + 0.0722*b
	if luminance > 0.179 {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
