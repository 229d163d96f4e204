/*
Package daub implements a MyPaint-style brush canvas: a mutable raster surface
painted through a pluggable brush engine, with bounded undo/redo history and
fixed-aspect placement math for displaying the canvas inside a resizable window.

The package provides a small demo application which opens the canvas in a desktop window.
To check the supported flags type:

	$ daub --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"image"

		"github.com/esimov/daub"
	)

	func main() {
		engine := daub.NewDabEngine()
		canvas := daub.NewBrushCanvas(engine, image.Pt(1024, 1024))

		canvas.StartStroke()
		canvas.DrawLine(image.Pt(10, 10), image.Pt(200, 150), daub.DefaultBrushColor, 1.0, 0)
		canvas.EndStroke()

		canvas.Undo()
	}
*/
package daub
