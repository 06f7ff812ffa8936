// Package qr renders serial codes as QR images for printing on labels.
package qr

import (
	"errors"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MaxSize     = 1024
)

// ErrEmptyCode is returned when there is nothing to encode.
var ErrEmptyCode = errors.New("qr: empty code")

// Encode returns a PNG QR code for the normalized serial. Sizes outside
// (0, MaxSize] fall back to DefaultSize.
func Encode(code string, size int) ([]byte, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrEmptyCode
	}
	if size <= 0 || size > MaxSize {
		size = DefaultSize
	}
	return qrcode.Encode(normalized, qrcode.Medium, size)
}
