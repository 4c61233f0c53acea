package scan

import "image"

// Frame is an opaque handle to one captured image. Concrete sources,
// detectors and surfaces agree on the underlying type; the loop never
// inspects it. A frame is valid only until the next Source.Read.
type Frame any

// Detection is the per-frame result of the QR detector: a decoded payload
// (empty when nothing was found) and the code's boundary polygon. No
// identity persists across frames.
type Detection struct {
	Text   string
	Points []image.Point
}

// Annotation carries everything the surface needs to draw over a frame.
type Annotation struct {
	Detection Detection
	Found     bool
	Center    image.Point // polygon centroid, valid when Found
	Status    string      // fixed-format stats line
}

// Source produces a sequence of frames on demand. Read reports false on
// end-of-stream or capture failure; both are normal stop conditions.
type Source interface {
	Read() (Frame, bool)
	Close() error
}

// Detector decodes at most one QR code from a frame. Absence of a code is
// not an error; it yields a Detection with empty Text.
type Detector interface {
	Detect(Frame) Detection
}

// Surface presents an annotated frame and returns the most recent key
// event captured from the display (non-blocking; <0 means no key).
type Surface interface {
	Present(Frame, Annotation) int
	Close() error
}
