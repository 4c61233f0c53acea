package generate

import "image"

// Placeholder canvases shown when there is nothing to encode or the
// encoder rejected the payload.
const (
	placeholderSide = 240
	errorGrayLevel  = 200
)

// ModuleGrid is a square bitmap of QR modules; true means a dark module.
type ModuleGrid struct {
	size int
	dark []bool
}

// NewModuleGrid returns an all-light grid of the given side length.
func NewModuleGrid(size int) *ModuleGrid {
	if size < 1 {
		size = 1
	}
	return &ModuleGrid{size: size, dark: make([]bool, size*size)}
}

// Size returns the grid's side length in modules.
func (g *ModuleGrid) Size() int { return g.size }

// SetDark marks the module at (x, y) dark. Out-of-range is ignored.
func (g *ModuleGrid) SetDark(x, y int) {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return
	}
	g.dark[y*g.size+x] = true
}

// Dark reports whether the module at (x, y) is dark.
func (g *ModuleGrid) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return false
	}
	return g.dark[y*g.size+x]
}

// Encoder produces the module grid for a payload. version 0 means the
// smallest version that fits; ecIndex selects L/M/Q/H by 0..3.
type Encoder interface {
	Encode(text string, version, ecIndex int) (*ModuleGrid, error)
}

// Render draws the state's payload as a grayscale image: a quiet zone of
// State.QuietZone modules around the code and State.Scale pixels per
// module. An empty payload renders a white placeholder, an encoding
// failure a gray one.
func Render(s State, enc Encoder) *image.Gray {
	if s.Text == "" {
		return uniformGray(placeholderSide, 255)
	}
	grid, err := enc.Encode(s.Text, s.Version, s.ECIndex)
	if err != nil || grid == nil {
		return uniformGray(placeholderSide, errorGrayLevel)
	}

	qz := s.QuietZone
	if qz < MinQuiet {
		qz = MinQuiet
	}
	sc := s.Scale
	if sc < MinScale {
		sc = MinScale
	}

	side := (grid.Size() + 2*qz) * sc
	img := uniformGray(side, 255)
	for y := 0; y < grid.Size(); y++ {
		for x := 0; x < grid.Size(); x++ {
			if !grid.Dark(x, y) {
				continue
			}
			fillBlock(img, (qz+x)*sc, (qz+y)*sc, sc)
		}
	}
	return img
}

func uniformGray(side int, level uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, side, side))
	for i := range img.Pix {
		img.Pix[i] = level
	}
	return img
}

func fillBlock(img *image.Gray, x0, y0, side int) {
	for y := y0; y < y0+side; y++ {
		row := img.Pix[y*img.Stride+x0 : y*img.Stride+x0+side]
		for i := range row {
			row[i] = 0
		}
	}
}
