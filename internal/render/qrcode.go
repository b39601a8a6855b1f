package render

import (
	"bytes"
	"errors"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

var ErrEmptyPayload = errors.New("empty qr payload")

// QRCodePNG returns a PNG QR code for payload, sizePx on a side.
func QRCodePNG(payload string, sizePx int) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	return qrcode.Encode(payload, qrcode.Medium, sizePx)
}

// IsPNG reports whether data starts with the PNG signature.
func IsPNG(data []byte) bool {
	return bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n"))
}
