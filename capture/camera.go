// Package capture opens V4L2 cameras through gocv and exposes them as
// frame sources for the scan loop.
package capture

import (
	"errors"
	"fmt"
	"log/slog"

	"gocv.io/x/gocv"

	"github.com/k399z/qr-detection/domain/scan"
)

// MatFrame is the concrete frame handle exchanged between the camera, the
// detector and the window. It wraps the Mat owned by the camera; the Mat
// is valid only until the next Read.
type MatFrame struct {
	mat *gocv.Mat
}

// Mat returns the underlying pixel buffer.
func (f *MatFrame) Mat() *gocv.Mat { return f.mat }

// Camera is a scan.Source backed by a gocv video capture device.
type Camera struct {
	cap    *gocv.VideoCapture
	mat    gocv.Mat
	index  int
	logger *slog.Logger
}

// OpenCamera opens one camera index and applies the requested frame size.
func OpenCamera(index, width, height int, logger *slog.Logger) (*Camera, error) {
	vc, err := gocv.VideoCaptureDevice(index)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", index, err)
	}
	vc.Set(gocv.VideoCaptureFrameWidth, float64(width))
	vc.Set(gocv.VideoCaptureFrameHeight, float64(height))
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("camera %d: device did not open", index)
	}
	if logger != nil {
		logger.Info("camera opened", slog.Int("index", index), slog.Int("width", width), slog.Int("height", height))
	}
	return &Camera{cap: vc, mat: gocv.NewMat(), index: index, logger: logger}, nil
}

// OpenFirst opens the first index in indices that yields a working device.
func OpenFirst(indices []int, width, height int, logger *slog.Logger) (*Camera, error) {
	var errs []error
	for _, idx := range indices {
		cam, err := OpenCamera(idx, width, height, logger)
		if err == nil {
			return cam, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// Index returns the device index the camera was opened with.
func (c *Camera) Index() int { return c.index }

// Read pulls the next frame. It reports false on end-of-stream or device
// failure; the scan loop treats that as a normal stop condition.
func (c *Camera) Read() (scan.Frame, bool) {
	if !c.cap.Read(&c.mat) || c.mat.Empty() {
		return nil, false
	}
	return &MatFrame{mat: &c.mat}, true
}

// Close releases the device and the frame buffer.
func (c *Camera) Close() error {
	c.mat.Close()
	return c.cap.Close()
}

// ProbeResult describes one probed camera index.
type ProbeResult struct {
	Index     int
	Available bool
	Width     int
	Height    int
}

// Probe checks camera indices below limit and reports which open, along
// with their default frame size. Used by the --list flag.
func Probe(limit int) []ProbeResult {
	results := make([]ProbeResult, 0, limit)
	for i := 0; i < limit; i++ {
		r := ProbeResult{Index: i}
		vc, err := gocv.VideoCaptureDevice(i)
		if err == nil && vc.IsOpened() {
			r.Available = true
			r.Width = int(vc.Get(gocv.VideoCaptureFrameWidth))
			r.Height = int(vc.Get(gocv.VideoCaptureFrameHeight))
		}
		if vc != nil {
			vc.Close()
		}
		results = append(results, r)
	}
	return results
}
