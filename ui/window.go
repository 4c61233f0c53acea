// Package ui draws the scanner and generator windows with gocv's highgui.
package ui

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/k399z/qr-detection/capture"
	"github.com/k399z/qr-detection/domain/scan"
)

var (
	overlayGreen = color.RGBA{G: 255, A: 255}
	textOffset   = image.Pt(-20, -10)
	statusOrigin = image.Pt(10, 30)
)

// Window presents annotated scanner frames and reports key events.
type Window struct {
	win *gocv.Window
}

// NewWindow opens the scanner display window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Present draws the annotation onto the frame, shows it and returns the
// most recent key event (minimal one-millisecond wait; <0 when none).
func (w *Window) Present(frame scan.Frame, ann scan.Annotation) int {
	mf, ok := frame.(*capture.MatFrame)
	if !ok {
		return -1
	}
	mat := mf.Mat()

	if ann.Found {
		pts := gocv.NewPointsVectorFromPoints([][]image.Point{ann.Detection.Points})
		gocv.Polylines(mat, pts, true, overlayGreen, 3)
		pts.Close()
		gocv.PutText(mat, ann.Detection.Text, ann.Center.Add(textOffset),
			gocv.FontHersheySimplex, 0.6, overlayGreen, 2)
	}
	gocv.PutText(mat, ann.Status, statusOrigin, gocv.FontHersheySimplex, 0.8, overlayGreen, 2)

	w.win.IMShow(*mat)
	return w.win.WaitKey(1)
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}
