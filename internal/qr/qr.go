// Package qr renders entry URLs into QR-code PNG images.
package qr

import qrcode "github.com/skip2/go-qrcode"

// Image size and error-correction level are fixed: 300px squares with high
// redundancy scan reliably from printed bingo cards.
const pngSize = 300

// Generator renders a URL into a raster QR image.
type Generator interface {
	Render(url string) ([]byte, error)
}

// PNGGenerator implements Generator with skip2/go-qrcode.
type PNGGenerator struct{}

func NewPNGGenerator() PNGGenerator { return PNGGenerator{} }

// Render encodes the URL as a 300x300 PNG with high error correction.
func (PNGGenerator) Render(url string) ([]byte, error) {
	return qrcode.Encode(url, qrcode.High, pngSize)
}
