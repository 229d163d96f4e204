package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"gioui.org/app"

	"github.com/esimov/daub"
	"github.com/esimov/daub/utils"
)

const HelpBanner = `
┌┬┐┌─┐┬ ┬┌┐
 ││├─┤│ │├┴┐
─┴┘┴ ┴└─┘└─┘

MyPaint style brush canvas demo.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	width      = flag.Int("width", 1024, "Canvas width in pixels")
	height     = flag.Int("height", 1024, "Canvas height in pixels")
	brushFile  = flag.String("brush", "", "MyPaint brush file (.myb)")
	brushSize  = flag.Int("bsize", 3, "Base brush size in pixels")
	brushColor = flag.String("color", "", "Brush color as #rrggbb hex value")
	bkgFile    = flag.String("bg", "", "Background image placed behind the canvas")
	output     = flag.String("out", "", "Save the canvas content to this file on exit")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(HelpBanner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatal(utils.DecorateText("The canvas width and height must be positive!", utils.ErrorMessage))
	}

	brush := daub.NewBrush()
	if *brushFile != "" {
		var err error
		brush, err = daub.LoadBrush(*brushFile)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the brush file: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}
	if *brushColor != "" {
		col, err := parseHexColor(*brushColor)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Invalid brush color: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		brush.Color = col
	}

	engine := daub.NewDabEngine()
	engine.LoadBrush(brush)

	canvas := daub.NewBrushCanvas(engine, image.Pt(*width, *height))
	canvas.SetBrushSize(*brushSize)

	gui := daub.NewGUI(canvas, brush.Color)
	if *bkgFile != "" {
		bkg, err := daub.LoadImage(*bkgFile)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the background image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		gui.SetBackground(bkg)
	}

	now := time.Now()
	go func() {
		defer os.Exit(0)

		if err := gui.Run(); err != nil {
			log.Fatalf(
				utils.DecorateText("Error running the window: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		if *output != "" {
			if err := daub.SaveImage(*output, canvas.Image()); err != nil {
				log.Fatalf(
					utils.DecorateText("Failed to save the canvas: %v", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
			log.Println(fmt.Sprintf("%s %s",
				utils.DecorateText("⚡ DAUB", utils.StatusMessage),
				utils.DecorateText(
					fmt.Sprintf("⇢ canvas saved to %s, session lasted %s ✔", *output, utils.FormatTime(time.Since(now))),
					utils.SuccessMessage),
			))
		}
	}()
	app.Main()
}

// parseHexColor decodes a #rrggbb formatted color value.
func parseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("%q is not a #rrggbb value", s)
	}
	_, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil {
		return c, fmt.Errorf("%q is not a #rrggbb value", s)
	}
	return c, nil
}
