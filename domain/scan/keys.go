package scan

// Control codes accepted as exit requests alongside ESC and the letter keys.
const (
	keyCtrlC = 3  // ETX
	keyCtrlD = 4  // EOT
	keyCtrlQ = 17 // DC1
	keyCtrlX = 24 // CAN
	keyEsc   = 27
)

// IsExitKey reports whether k is one of the recognised exit keys.
// Only the ASCII range qualifies: extended window key codes (arrow keys
// such as 0xFF51) must not be masked down to 8 bits, or they would alias
// letters like 'Q'. Negative codes mean "no key pressed".
func IsExitKey(k int) bool {
	if k < 0 || k > 255 {
		return false
	}
	switch k {
	case keyEsc,
		'q', 'Q',
		'x', 'X',
		'c', 'C',
		keyCtrlC, keyCtrlD, keyCtrlQ, keyCtrlX:
		return true
	}
	return false
}
