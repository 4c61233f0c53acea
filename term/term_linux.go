//go:build linux

package term

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Session holds the terminal state captured at Open so Restore can
// reinstate it exactly.
type Session struct {
	fd       int
	orig     unix.Termios
	restored bool
}

// Open captures the terminal's current termios, disables canonical mode
// and echo, and switches the descriptor to non-blocking reads.
func Open(fd int) (*Session, error) {
	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}

	raw := *orig
	raw.Lflag &^= unix.ICANON | unix.ECHO
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, fmt.Errorf("set raw termios: %w", err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		_ = unix.IoctlSetTermios(fd, unix.TCSETS, orig)
		return nil, fmt.Errorf("set non-blocking: %w", err)
	}

	return &Session{fd: fd, orig: *orig}, nil
}

// PollKey reads at most one pending byte without blocking. It reports
// false immediately when nothing is buffered.
func (s *Session) PollKey() (int, bool) {
	var buf [1]byte
	n, err := unix.Read(s.fd, buf[:])
	if err != nil || n != 1 {
		return -1, false
	}
	return int(buf[0]), true
}

// Restore reinstates the original termios and blocking mode. It is
// idempotent so deferred and explicit calls can coexist.
func (s *Session) Restore() error {
	if s.restored {
		return nil
	}
	s.restored = true
	err := unix.IoctlSetTermios(s.fd, unix.TCSETS, &s.orig)
	if e := unix.SetNonblock(s.fd, false); err == nil {
		err = e
	}
	return err
}
