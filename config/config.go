package config

// Config holds runtime configuration for the scanner loop and camera setup.
// Values are defaults overridable by the mains; there is no config file.
type Config struct {
	Debug bool

	// Camera parameters
	FrameWidth  int
	FrameHeight int
	ProbeLimit  int // number of camera indices probed by --list

	// Smoothing weights for the rolling frame statistics: share of history
	// kept and share of the new sample per update. History and sample are
	// configured as separate literals (1-history differs from the sample
	// literal in the last ULP). Tunable, not load-bearing.
	LatencySmoothing  float64
	LatencySampleGain float64
	FpsSmoothing      float64
	FpsSampleGain     float64

	WindowTitle string
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		FrameWidth:        640,
		FrameHeight:       480,
		ProbeLimit:        2,
		LatencySmoothing:  0.98,
		LatencySampleGain: 0.02,
		FpsSmoothing:      0.7,
		FpsSampleGain:     0.3,
		WindowTitle:       "QR Detect",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.FrameWidth <= 0 {
		c.FrameWidth = 640
	}
	if c.FrameHeight <= 0 {
		c.FrameHeight = 480
	}
	if c.ProbeLimit <= 0 {
		c.ProbeLimit = 2
	}
	if c.ProbeLimit > 10 {
		c.ProbeLimit = 10
	}
	if c.LatencySmoothing <= 0 || c.LatencySmoothing >= 1 {
		c.LatencySmoothing = 0.98
	}
	if c.LatencySampleGain <= 0 || c.LatencySampleGain >= 1 {
		c.LatencySampleGain = 0.02
	}
	if c.FpsSmoothing <= 0 || c.FpsSmoothing >= 1 {
		c.FpsSmoothing = 0.7
	}
	if c.FpsSampleGain <= 0 || c.FpsSampleGain >= 1 {
		c.FpsSampleGain = 0.3
	}
	if c.WindowTitle == "" {
		c.WindowTitle = "QR Detect"
	}
	return nil
}
