// Package detect wraps gocv's QR detector behind the scan.Detector
// capability so the loop never touches the imaging library directly.
package detect

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/k399z/qr-detection/capture"
	"github.com/k399z/qr-detection/domain/scan"
)

// QRCode detects and decodes at most one QR code per frame.
type QRCode struct {
	detector gocv.QRCodeDetector
}

// NewQRCode returns a ready detector. Close must be called when done.
func NewQRCode() *QRCode {
	return &QRCode{detector: gocv.NewQRCodeDetector()}
}

// Detect runs detection and decoding on one frame. A frame of an
// unexpected concrete type, or one without a decodable code, yields an
// empty Detection; neither is an error.
func (d *QRCode) Detect(frame scan.Frame) scan.Detection {
	mf, ok := frame.(*capture.MatFrame)
	if !ok {
		return scan.Detection{}
	}

	points := gocv.NewMat()
	defer points.Close()
	straight := gocv.NewMat()
	defer straight.Close()

	text := d.detector.DetectAndDecode(*mf.Mat(), &points, &straight)
	det := scan.Detection{Text: text}
	if points.Empty() {
		return det
	}

	// The corner Mat is 1xN with two float32 channels per point.
	det.Points = make([]image.Point, 0, points.Cols())
	for i := 0; i < points.Cols(); i++ {
		x := points.GetFloatAt(0, i*2)
		y := points.GetFloatAt(0, i*2+1)
		det.Points = append(det.Points, image.Pt(int(x), int(y)))
	}
	return det
}

// Close releases the native detector.
func (d *QRCode) Close() error {
	return d.detector.Close()
}
