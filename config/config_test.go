package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FrameWidth != 640 || cfg.FrameHeight != 480 {
		t.Fatalf("default frame size %dx%d, want 640x480", cfg.FrameWidth, cfg.FrameHeight)
	}
	if cfg.LatencySmoothing != 0.98 || cfg.FpsSmoothing != 0.7 {
		t.Fatalf("default smoothing %v/%v, want 0.98/0.7", cfg.LatencySmoothing, cfg.FpsSmoothing)
	}
	if cfg.LatencySampleGain != 0.02 || cfg.FpsSampleGain != 0.3 {
		t.Fatalf("default sample gains %v/%v, want 0.02/0.3", cfg.LatencySampleGain, cfg.FpsSampleGain)
	}
	if cfg.ProbeLimit != 2 {
		t.Fatalf("default probe limit %d, want 2", cfg.ProbeLimit)
	}
}

func TestValidate_ClampsBadValues(t *testing.T) {
	cfg := &Config{
		FrameWidth:       -1,
		FrameHeight:      0,
		ProbeLimit:       99,
		LatencySmoothing: 1.5,
		FpsSmoothing:     0,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.FrameWidth != 640 || cfg.FrameHeight != 480 {
		t.Fatalf("frame size not normalized: %dx%d", cfg.FrameWidth, cfg.FrameHeight)
	}
	if cfg.ProbeLimit != 10 {
		t.Fatalf("probe limit not clamped: %d", cfg.ProbeLimit)
	}
	if cfg.LatencySmoothing != 0.98 || cfg.FpsSmoothing != 0.7 {
		t.Fatalf("smoothing not normalized: %v/%v", cfg.LatencySmoothing, cfg.FpsSmoothing)
	}
	if cfg.WindowTitle == "" {
		t.Fatal("window title not defaulted")
	}
}
