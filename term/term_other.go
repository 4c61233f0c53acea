//go:build !linux

package term

import "errors"

// Session is a no-op placeholder on platforms without termios support.
type Session struct{}

// ErrUnsupported is returned by Open where raw terminal mode is not
// implemented; the scanner then relies on window keys and signals alone.
var ErrUnsupported = errors.New("term: raw terminal mode not supported on this platform")

// Open always fails on this platform.
func Open(int) (*Session, error) { return nil, ErrUnsupported }

// PollKey reports that no key is pending.
func (*Session) PollKey() (int, bool) { return -1, false }

// Restore is a no-op.
func (*Session) Restore() error { return nil }
