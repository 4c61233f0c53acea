package ui

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/k399z/qr-detection/domain/generate"
)

// Canvas layout around the rendered code.
const (
	canvasHeadroom = 120 // extra height below the code for the overlay
	canvasMinWidth = 640
	savedHeadroom  = 60 // smaller banner canvas after a save
	savedMinWidth  = 480
	qrTop          = 10
)

var (
	shadowBlack = color.RGBA{A: 255}
	titleWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bannerAmber = color.RGBA{R: 255, G: 128, A: 255}
)

// GeneratorWindow is the generator's display surface.
type GeneratorWindow struct {
	win *gocv.Window
}

// NewGeneratorWindow opens the generator window.
func NewGeneratorWindow(title string) *GeneratorWindow {
	return &GeneratorWindow{win: gocv.NewWindow(title)}
}

// Show composes the rendered code onto a white canvas, adds the help
// overlay or the save banner and displays it.
func (w *GeneratorWindow) Show(img *image.Gray, st generate.State, savedPath string) {
	qrGray, err := gocv.ImageGrayToMatGray(img)
	if err != nil {
		return
	}
	defer qrGray.Close()

	qr := gocv.NewMat()
	defer qr.Close()
	gocv.CvtColor(qrGray, &qr, gocv.ColorGrayToBGR)

	headroom, minWidth := canvasHeadroom, canvasMinWidth
	if savedPath != "" {
		headroom, minWidth = savedHeadroom, savedMinWidth
	}
	cols := qr.Cols()
	if cols < minWidth {
		cols = minWidth
	}
	rows := qr.Rows() + headroom

	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), rows, cols, gocv.MatTypeCV8UC3)
	defer canvas.Close()

	x := (cols - qr.Cols()) / 2
	roi := canvas.Region(image.Rect(x, qrTop, x+qr.Cols(), qrTop+qr.Rows()))
	qr.CopyTo(&roi)
	roi.Close()

	if savedPath != "" {
		shadowText(&canvas, "Saved: "+savedPath, image.Pt(10, rows-15), bannerAmber, 2)
	} else if st.ShowHelp {
		drawInfoLines(&canvas, st.InfoLines())
	}

	w.win.IMShow(canvas)
}

// NextKey polls the window for a key press; negative means none pending.
// Polling instead of blocking keeps the session responsive to signals.
func (w *GeneratorWindow) NextKey() int {
	return w.win.WaitKey(100)
}

// Close destroys the window.
func (w *GeneratorWindow) Close() error {
	return w.win.Close()
}

func drawInfoLines(canvas *gocv.Mat, lines []string) {
	y := 20
	for i, line := range lines {
		if line == "" {
			y += 8
			continue
		}
		col := overlayGreen
		if i == 0 {
			col = titleWhite
		}
		shadowText(canvas, line, image.Pt(10, y), col, 1)
		y += 22
	}
}

// shadowText draws a thick black backing stroke under the colored text so
// the overlay stays readable on both dark and light modules.
func shadowText(canvas *gocv.Mat, text string, org image.Point, col color.RGBA, thickness int) {
	gocv.PutText(canvas, text, org, gocv.FontHersheySimplex, 0.6, shadowBlack, thickness+1)
	gocv.PutText(canvas, text, org, gocv.FontHersheySimplex, 0.6, col, thickness)
}
