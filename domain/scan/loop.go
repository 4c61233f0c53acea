package scan

import (
	"fmt"
	"image"
	"log/slog"
	"time"
)

// Loop drives the per-frame pipeline: capture, detect, annotate, present,
// check exit. It is synchronous and single-threaded; each stage completes
// before the next begins. The loop does not own its collaborators'
// lifetimes: the caller releases the source and surface after Run returns.
type Loop struct {
	source   Source
	detector Detector
	surface  Surface
	monitor  *Monitor
	stats    *FrameStats
	logger   *slog.Logger
	now      func() time.Time
}

// NewLoop wires a frame loop from its collaborators.
func NewLoop(source Source, detector Detector, surface Surface, monitor *Monitor, stats *FrameStats, logger *slog.Logger) *Loop {
	return &Loop{
		source:   source,
		detector: detector,
		surface:  surface,
		monitor:  monitor,
		stats:    stats,
		logger:   logger,
		now:      time.Now,
	}
}

// Run processes frames until the source ends or an exit is requested and
// returns the number of frames processed. A capture failure is a normal
// stop condition, not an error: it models camera disconnect/end-of-stream.
func (l *Loop) Run() int {
	frames := 0
	for {
		start := l.now()

		frame, ok := l.source.Read()
		if !ok {
			break
		}

		det := l.detector.Detect(frame)
		ann := Annotation{Detection: det}
		detected := 0
		if det.Text != "" && len(det.Points) >= 4 {
			ann.Found = true
			ann.Center = Centroid(det.Points)
			detected = 1
		}

		// Elapsed covers the capture->detect->annotate span only; the
		// presentation wait must not skew the latency average.
		elapsed := float64(l.now().Sub(start)) / float64(time.Millisecond)
		avgMs := l.stats.RecordFrame(elapsed)
		avgFps := l.stats.Tick(l.now())
		ann.Status = fmt.Sprintf("avg %.2f ms  fps %.1f  QR %d", avgMs, avgFps, detected)

		key := l.surface.Present(frame, ann)
		frames++

		if l.monitor.ShouldExit(key) {
			if l.logger != nil {
				l.logger.Info("exit requested", slog.Int("key", key), slog.Int("frames", frames))
			}
			break
		}
	}
	return frames
}

// Centroid returns the integer-truncated arithmetic mean of the points.
func Centroid(pts []image.Point) image.Point {
	if len(pts) == 0 {
		return image.Point{}
	}
	var c image.Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= len(pts)
	c.Y /= len(pts)
	return c
}
