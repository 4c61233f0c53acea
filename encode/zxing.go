// Package encode adapts the gozxing QR writer to the generator's Encoder
// capability and offers decode-back verification of rendered images.
package encode

import (
	"fmt"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/k399z/qr-detection/domain/generate"
)

// ZXing encodes payloads into module grids with the gozxing QR writer.
type ZXing struct {
	writer *qrcode.QRCodeWriter
}

// NewZXing returns a ready-to-use encoder.
func NewZXing() *ZXing {
	return &ZXing{writer: qrcode.NewQRCodeWriter()}
}

// Encode produces the module grid for text. version 0 lets the writer pick
// the smallest version that fits; ecIndex maps 0..3 to L/M/Q/H. The margin
// hint is pinned to zero because the renderer applies its own quiet zone.
func (e *ZXing) Encode(text string, version, ecIndex int) (*generate.ModuleGrid, error) {
	hints := map[gozxing.EncodeHintType]interface{}{
		gozxing.EncodeHintType_ERROR_CORRECTION: generate.ECLevelName(ecIndex),
		gozxing.EncodeHintType_MARGIN:           0,
	}
	if version > 0 {
		hints[gozxing.EncodeHintType_QR_VERSION] = version
	}

	// Requesting a 1x1 output yields the bare module matrix: the writer
	// never scales below the code's natural size.
	matrix, err := e.writer.Encode(text, gozxing.BarcodeFormat_QR_CODE, 1, 1, hints)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	grid := generate.NewModuleGrid(matrix.GetWidth())
	for y := 0; y < matrix.GetHeight(); y++ {
		for x := 0; x < matrix.GetWidth(); x++ {
			if matrix.Get(x, y) {
				grid.SetDark(x, y)
			}
		}
	}
	return grid, nil
}
