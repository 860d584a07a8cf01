package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MaxImageBytes caps decoded image payloads at 20 MiB.
const MaxImageBytes = 20 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

var ErrInvalidImage = errors.New("invalid image")

// DecodeImage decodes a base64 image payload, with or without a
// data-URI prefix, and validates size and sniffed content type.
func DecodeImage(encoded string) ([]byte, string, error) {
	if encoded == "" {
		return nil, "", fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	if strings.HasPrefix(encoded, "data:") {
		idx := strings.Index(encoded, "base64,")
		if idx < 0 {
			return nil, "", fmt.Errorf("%w: malformed data URI", ErrInvalidImage)
		}
		encoded = encoded[idx+len("base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) > MaxImageBytes {
		return nil, "", fmt.Errorf("%w: payload exceeds 20 MiB", ErrInvalidImage)
	}

	mimeType := http.DetectContentType(data)
	if !allowedImageTypes[mimeType] {
		return nil, "", fmt.Errorf("%w: unsupported content type %s", ErrInvalidImage, mimeType)
	}
	return data, mimeType, nil
}
