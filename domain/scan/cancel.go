package scan

import "sync/atomic"

// ExitPoller is one independent source of exit intent. Implementations
// must never block: they report whatever is pending right now.
type ExitPoller interface {
	PollExitIntent() bool
}

// PollerFunc adapts a plain function to the ExitPoller interface.
type PollerFunc func() bool

func (f PollerFunc) PollExitIntent() bool { return f() }

// KeyPoller wraps a non-blocking key source (such as a raw terminal read)
// so that a pending exit key counts as exit intent. next returns the key
// and whether one was available.
func KeyPoller(next func() (int, bool)) ExitPoller {
	return PollerFunc(func() bool {
		k, ok := next()
		return ok && IsExitKey(k)
	})
}

// SignalFlag is the termination flag set by asynchronous signal delivery.
// It has exactly one writer (the signal goroutine) and one reader (the
// frame loop), so an atomic load/store is all the coordination needed.
// Once set it stays set; the process is terminating regardless.
type SignalFlag struct {
	requested atomic.Bool
}

// Set marks termination as requested.
func (f *SignalFlag) Set() { f.requested.Store(true) }

func (f *SignalFlag) PollExitIntent() bool { return f.requested.Load() }

// Monitor merges the display-surface key with any number of exit-intent
// pollers into a single per-iteration stop decision.
type Monitor struct {
	pollers []ExitPoller
}

// NewMonitor builds a monitor consulting the given pollers in order.
func NewMonitor(pollers ...ExitPoller) *Monitor {
	return &Monitor{pollers: pollers}
}

// ShouldExit reports whether any cancellation source requests a stop:
// the key captured from the display surface this iteration, or any of
// the registered pollers. Never blocks.
func (m *Monitor) ShouldExit(displayKey int) bool {
	if IsExitKey(displayKey) {
		return true
	}
	for _, p := range m.pollers {
		if p.PollExitIntent() {
			return true
		}
	}
	return false
}
