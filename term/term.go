// Package term owns the controlling terminal's raw-mode configuration as
// a scoped resource: Open switches the terminal into non-blocking,
// non-canonical mode and Restore puts it back on every exit path.
//
// Raw mode lets the scanner react to a single key press in the launching
// terminal in addition to keys captured by the display window.
package term
