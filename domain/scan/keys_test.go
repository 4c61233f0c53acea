package scan

import "testing"

func TestIsExitKey(t *testing.T) {
	cases := []struct {
		key  int
		want bool
	}{
		{27, true}, // ESC
		{'q', true},
		{'Q', true},
		{'x', true},
		{'X', true},
		{'c', true},
		{'C', true},
		{3, true},       // Ctrl+C
		{4, true},       // Ctrl+D
		{17, true},      // Ctrl+Q
		{24, true},      // Ctrl+X
		{-1, false},     // no key pressed
		{0xFF51, false}, // left arrow; must not alias 'Q' via truncation
		{0xFF71, false},
		{256, false},
		{1024 + 'q', false},
		{'a', false},
		{' ', false},
		{0, false},
	}
	for _, c := range cases {
		if got := IsExitKey(c.key); got != c.want {
			t.Errorf("IsExitKey(%#x) = %v, want %v", c.key, got, c.want)
		}
	}
}
