package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
}

func jpegBytes() []byte {
	return append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 16)...)
}

func TestDecodeImage(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngBytes())

	data, mimeType, err := DecodeImage(encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, pngBytes(), data)
}

func TestDecodeImageDataURI(t *testing.T) {
	encoded := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegBytes())

	_, mimeType, err := DecodeImage(encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
}

func TestDecodeImageRejectsBadInput(t *testing.T) {
	_, _, err := DecodeImage("")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, _, err = DecodeImage("not base64!!!")
	assert.ErrorIs(t, err, ErrInvalidImage)

	// Valid base64, but not an allowed image type.
	text := base64.StdEncoding.EncodeToString([]byte("just some text, long enough to sniff"))
	_, _, err = DecodeImage(text)
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, _, err = DecodeImage("data:image/png;basesixtyfour,abcd")
	assert.ErrorIs(t, err, ErrInvalidImage)
}
