package scan

import "time"

// Weights are the shares applied per EMA update. History and Sample are
// carried as separate values rather than deriving one from the other:
// 1-0.98 is not the float64 literal 0.02, and the overlay recurrence must
// multiply by the configured literals exactly.
type Weights struct {
	History float64
	Sample  float64
}

// Default smoothing weights for the overlay statistics.
var (
	DefaultLatencyWeights = Weights{History: 0.98, Sample: 0.02}
	DefaultFpsWeights     = Weights{History: 0.7, Sample: 0.3}
)

func (w Weights) valid() bool {
	return w.History > 0 && w.History < 1 && w.Sample > 0 && w.Sample < 1
}

const fpsWindow = time.Second

// FrameStats keeps exponentially smoothed frame latency and fps figures
// for the on-screen overlay. Latency is folded on every frame; fps is
// folded at most once per one-second window. Purely numeric; callers
// supply the clock.
type FrameStats struct {
	latency Weights
	fps     Weights

	avgMs          float64
	avgFps         float64
	framesInWindow float64
	windowStart    time.Time
}

// NewFrameStats returns a tracker using the given smoothing weights.
// Weight pairs with a component outside (0,1) fall back to the defaults.
func NewFrameStats(latency, fps Weights) *FrameStats {
	if !latency.valid() {
		latency = DefaultLatencyWeights
	}
	if !fps.valid() {
		fps = DefaultFpsWeights
	}
	return &FrameStats{latency: latency, fps: fps}
}

// RecordFrame folds one frame duration (milliseconds) into the rolling
// average latency and returns the new value.
func (s *FrameStats) RecordFrame(durationMs float64) float64 {
	s.avgMs = s.latency.History*s.avgMs + s.latency.Sample*durationMs
	return s.avgMs
}

// Tick counts one frame toward the current one-second window. When the
// window has elapsed the count is folded into the average fps and the
// window restarts. Between rollovers the previous average is returned
// unchanged; if Tick is never called within a window the count simply
// accumulates until the next rollover.
func (s *FrameStats) Tick(now time.Time) float64 {
	if s.windowStart.IsZero() {
		s.windowStart = now
	}
	if now.Sub(s.windowStart) > fpsWindow {
		s.windowStart = now
		s.avgFps = s.fps.History*s.avgFps + s.fps.Sample*s.framesInWindow
		s.framesInWindow = 0
	}
	s.framesInWindow++
	return s.avgFps
}

// AvgLatencyMs returns the current smoothed frame latency.
func (s *FrameStats) AvgLatencyMs() float64 { return s.avgMs }

// AvgFps returns the current smoothed frames-per-second figure.
func (s *FrameStats) AvgFps() float64 { return s.avgFps }
