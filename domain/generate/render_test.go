package generate

import (
	"errors"
	"testing"
)

// gridEncoder returns a fixed checkerboard grid of the given size.
type gridEncoder struct {
	size int
	err  error
}

func (e *gridEncoder) Encode(string, int, int) (*ModuleGrid, error) {
	if e.err != nil {
		return nil, e.err
	}
	g := NewModuleGrid(e.size)
	for y := 0; y < e.size; y++ {
		for x := 0; x < e.size; x++ {
			if (x+y)%2 == 0 {
				g.SetDark(x, y)
			}
		}
	}
	return g, nil
}

func TestRender_EmptyTextIsWhitePlaceholder(t *testing.T) {
	s := NewState()
	s.Text = ""
	img := Render(s, &gridEncoder{size: 21})
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 240 {
		t.Fatalf("placeholder bounds = %v, want 240x240", b)
	}
	for _, p := range img.Pix {
		if p != 255 {
			t.Fatal("placeholder contains non-white pixels")
		}
	}
}

func TestRender_EncodeErrorIsGrayPlaceholder(t *testing.T) {
	s := NewState()
	img := Render(s, &gridEncoder{err: errors.New("too long")})
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 240 {
		t.Fatalf("placeholder bounds = %v, want 240x240", b)
	}
	if img.GrayAt(0, 0).Y != 200 {
		t.Fatalf("error placeholder level = %d, want 200", img.GrayAt(0, 0).Y)
	}
}

func TestRender_GeometryAndModules(t *testing.T) {
	s := NewState()
	s.Scale = 3
	s.QuietZone = 2
	img := Render(s, &gridEncoder{size: 5})

	wantSide := (5 + 2*2) * 3
	if b := img.Bounds(); b.Dx() != wantSide || b.Dy() != wantSide {
		t.Fatalf("bounds = %v, want %dx%d", b, wantSide, wantSide)
	}

	// Quiet zone stays white.
	for y := 0; y < 2*3; y++ {
		for x := 0; x < wantSide; x++ {
			if img.GrayAt(x, y).Y != 255 {
				t.Fatalf("quiet zone pixel (%d,%d) not white", x, y)
			}
		}
	}

	// Module (0,0) is dark: its whole scale x scale block is black.
	for y := 6; y < 9; y++ {
		for x := 6; x < 9; x++ {
			if img.GrayAt(x, y).Y != 0 {
				t.Fatalf("dark module pixel (%d,%d) = %d", x, y, img.GrayAt(x, y).Y)
			}
		}
	}
	// Module (1,0) is light.
	if img.GrayAt(9, 6).Y != 255 {
		t.Fatal("light module rendered dark")
	}
}

func TestModuleGrid_Bounds(t *testing.T) {
	g := NewModuleGrid(3)
	g.SetDark(-1, 0)
	g.SetDark(0, 3)
	if g.Dark(-1, 0) || g.Dark(0, 3) {
		t.Fatal("out-of-range access not ignored")
	}
	g.SetDark(2, 2)
	if !g.Dark(2, 2) {
		t.Fatal("in-range module not set")
	}
	if NewModuleGrid(0).Size() != 1 {
		t.Fatal("degenerate grid size not clamped")
	}
}
