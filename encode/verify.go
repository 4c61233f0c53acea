package encode

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	qrmulti "github.com/makiuchi-d/gozxing/multi/qrcode"
)

// DecodePayloads decodes every QR code found in img. It is used to verify
// saved renders and in round-trip tests.
func DecodePayloads(img image.Image) ([]string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("binarize image: %w", err)
	}
	reader := qrmulti.NewQRCodeMultiReader()
	results, err := reader.DecodeMultiple(bmp, nil)
	if err != nil {
		return nil, fmt.Errorf("decode qr: %w", err)
	}
	payloads := make([]string, 0, len(results))
	for _, r := range results {
		payloads = append(payloads, r.GetText())
	}
	return payloads, nil
}
