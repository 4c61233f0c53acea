package scan

import (
	"math"
	"testing"
	"time"
)

func newDefaultStats() *FrameStats {
	return NewFrameStats(DefaultLatencyWeights, DefaultFpsWeights)
}

func TestFrameStats_LatencyRecurrence(t *testing.T) {
	s := newDefaultStats()
	want := 0.0
	for _, d := range []float64{10, 25.5, 0, 100, 3.25, 42} {
		want = 0.98*want + 0.02*d
		got := s.RecordFrame(d)
		if got != want {
			t.Fatalf("RecordFrame(%v) = %v, want exact %v", d, got, want)
		}
		if got < 0 {
			t.Fatalf("average latency went negative: %v", got)
		}
	}
	if s.AvgLatencyMs() != want {
		t.Fatalf("AvgLatencyMs() = %v, want %v", s.AvgLatencyMs(), want)
	}
}

func TestFrameStats_SampleWeightIsExactLiteral(t *testing.T) {
	// The sample share must be the literal 0.02, not a derived 1-0.98,
	// which is a different float64 one ULP away.
	s := newDefaultStats()
	ten := 10.0
	if got, want := s.RecordFrame(ten), 0.02*ten; got != want {
		t.Fatalf("RecordFrame(10) from zero = %v, want exact %v", got, want)
	}
	// Premise of this regression: deriving the weight at runtime lands on
	// a different float64 than the literal.
	one, hist := 1.0, 0.98
	if (one-hist)*ten == 0.02*ten {
		t.Fatal("derived and literal sample weights coincide; premise broken")
	}
}

func TestFrameStats_FpsFoldsOncePerWindow(t *testing.T) {
	s := newDefaultStats()
	base := time.Unix(0, 0)

	// 30 ticks inside the first second: no fold may happen.
	for i := 0; i < 30; i++ {
		if fps := s.Tick(base.Add(time.Duration(i) * 33 * time.Millisecond)); fps != 0 {
			t.Fatalf("fps updated inside first window: got %v", fps)
		}
	}

	// First tick past the window folds the 30 accumulated frames.
	fps := s.Tick(base.Add(1100 * time.Millisecond))
	want := 0.7*0 + 0.3*30
	if fps != want {
		t.Fatalf("first fold: got %v want exact %v", fps, want)
	}

	// Subsequent ticks inside the new window return the same value.
	for i := 0; i < 5; i++ {
		if got := s.Tick(base.Add(1200 * time.Millisecond)); got != fps {
			t.Fatalf("fps changed between rollovers: got %v want %v", got, fps)
		}
	}

	// Next rollover folds the 6 frames counted since the last one
	// (the folding tick itself plus the five above).
	fps2 := s.Tick(base.Add(2300 * time.Millisecond))
	want2 := 0.7*want + 0.3*6
	if math.Abs(fps2-want2) > 1e-12 {
		t.Fatalf("second fold: got %v want %v", fps2, want2)
	}
}

func TestFrameStats_IdleWindowAccumulates(t *testing.T) {
	s := newDefaultStats()
	base := time.Unix(100, 0)
	s.Tick(base)
	// Nothing ticked for three seconds; the single pending frame is
	// folded at the next call, not lost.
	fps := s.Tick(base.Add(3 * time.Second))
	if want := 0.3 * 1.0; fps != want {
		t.Fatalf("after idle window: got %v want %v", fps, want)
	}
}

func TestNewFrameStats_RejectsBadWeights(t *testing.T) {
	s := NewFrameStats(Weights{History: 1.5, Sample: 0.02}, Weights{History: 0.7, Sample: -2})
	if s.latency != DefaultLatencyWeights || s.fps != DefaultFpsWeights {
		t.Fatalf("bad weights not replaced by defaults: %+v %+v", s.latency, s.fps)
	}
}
