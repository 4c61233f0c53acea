package generate

import (
	"fmt"
	"math/rand"
)

// Parameter bounds for the interactive controls.
const (
	MinScale   = 1
	MaxScale   = 64
	MinQuiet   = 0
	MaxQuiet   = 16
	MinVersion = 0 // 0 = auto
	MaxVersion = 40
)

var eclNames = [4]string{"L", "M", "Q", "H"}

// ECLevelName returns the error-correction level name for an index,
// clamping out-of-range indices.
func ECLevelName(idx int) string { return eclNames[clamp(idx, 0, 3)] }

// Action is the outcome of one handled key press.
type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionSave
	ActionQuit
)

// State is the generator's keyboard-driven encoding state.
type State struct {
	Text       string
	Version    int // 0 = auto
	ECIndex    int // 0=L 1=M 2=Q 3=H
	Scale      int // pixels per module
	QuietZone  int // modules
	ShowHelp   bool
	OutputPath string // optional fixed save path
}

// NewState returns the generator's startup state.
func NewState() State {
	return State{
		Text:      "Hello, QR!",
		Version:   0,
		ECIndex:   1,
		Scale:     15,
		QuietZone: 7,
	}
}

// ECName returns the current error-correction level name.
func (s *State) ECName() string { return ECLevelName(s.ECIndex) }

// FileName returns the configured output path, or an auto-generated name
// encoding the current parameters.
func (s *State) FileName() string {
	if s.OutputPath != "" {
		return s.OutputPath
	}
	return fmt.Sprintf("qrcode_v%d_ecl%s_sc%d_qz%d.png", s.Version, s.ECName(), s.Scale, s.QuietZone)
}

// HandleKey mutates the state for one key press and reports the resulting
// action. Key codes are masked to 8 bits first so shifted keys from the
// window toolkit dispatch like their plain ASCII forms.
func (s *State) HandleKey(key int) Action {
	if key < 0 {
		return ActionNone
	}
	ch := key & 0xFF

	switch {
	case ch == 27 || ch == 'q' || ch == 'Q':
		return ActionQuit
	case ch == 'h' || ch == 'H':
		s.ShowHelp = !s.ShowHelp
		return ActionRedraw
	case ch == 'r' || ch == 'R':
		s.Text = RandomText()
		return ActionRedraw
	case ch == 'c' || ch == 'C':
		s.Text = ""
		return ActionRedraw
	case ch == '+' || ch == '=':
		s.Scale = clamp(s.Scale+1, MinScale, MaxScale)
		return ActionRedraw
	case ch == '-' || ch == '_':
		s.Scale = clamp(s.Scale-1, MinScale, MaxScale)
		return ActionRedraw
	case ch == '[' || ch == '{':
		s.QuietZone = clamp(s.QuietZone-1, MinQuiet, MaxQuiet)
		return ActionRedraw
	case ch == ']' || ch == '}':
		s.QuietZone = clamp(s.QuietZone+1, MinQuiet, MaxQuiet)
		return ActionRedraw
	case ch == 'e':
		s.ECIndex = clamp(s.ECIndex-1, 0, 3)
		return ActionRedraw
	case ch == 'E':
		s.ECIndex = clamp(s.ECIndex+1, 0, 3)
		return ActionRedraw
	case ch == 'v':
		s.Version = clamp(s.Version-1, MinVersion, MaxVersion)
		return ActionRedraw
	case ch == 'V':
		s.Version = clamp(s.Version+1, MinVersion, MaxVersion)
		return ActionRedraw
	case ch == 's' || ch == 'S':
		return ActionSave
	case ch >= 32 && ch <= 126:
		s.Text += string(rune(ch))
		return ActionRedraw
	case ch == 8 || ch == 127: // Backspace / Delete
		if s.Text != "" {
			s.Text = s.Text[:len(s.Text)-1]
			return ActionRedraw
		}
		return ActionNone
	}
	return ActionNone
}

// InfoLines returns the informational overlay text. An empty line marks a
// paragraph break for the renderer.
func (s *State) InfoLines() []string {
	text := s.Text
	if text == "" {
		text = "<empty>"
	}
	save := "Save: s -> auto name"
	if s.OutputPath != "" {
		save = "Save: s -> " + s.OutputPath
	}
	return []string{
		"QR Code Generator (GUI)",
		"Text: " + text,
		fmt.Sprintf("Version: %d (v/V)  ECL: %s (e/E)", s.Version, s.ECName()),
		fmt.Sprintf("Scale: %d (+/- or =/_)  QuietZone: %d ([/ ] or {/})", s.Scale, s.QuietZone),
		save,
		"",
		"Keys:",
		"  Type to append, Backspace to delete",
		"  v/V version, e/E error correction",
		"  +/- or =/_ scale, [/ ] or {/} quiet zone",
		"  r random, c clear, s save, h help, q/ESC quit",
	}
}

const alnum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	randomTextMinLen  = 12
	randomTextLenSpan = 13 // lengths 12..24
)

// RandomText returns a random alphanumeric payload of 12 to 24 characters.
func RandomText() string {
	n := randomTextMinLen + rand.Intn(randomTextLenSpan)
	b := make([]byte, n)
	for i := range b {
		b[i] = alnum[rand.Intn(len(alnum))]
	}
	return string(b)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
