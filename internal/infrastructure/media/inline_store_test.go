package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkota/pkg/errors"
)

func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestStoreImageProducesDataURI(t *testing.T) {
	store := NewInlineStore()

	payload, err := store.StoreImage(context.Background(), "c-1", 0, jpegBytes(t, 100, 80))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payload, "data:image/jpeg;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, "data:image/jpeg;base64,"))
	require.NoError(t, err)

	decoded, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
}

func TestStoreImageResizesWideImages(t *testing.T) {
	store := NewInlineStore()

	payload, err := store.StoreImage(context.Background(), "c-1", 0, jpegBytes(t, 1600, 900))

	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, "data:image/jpeg;base64,"))
	require.NoError(t, err)

	decoded, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 800, decoded.Bounds().Dx())
	// Aspect ratio preserved.
	assert.Equal(t, 450, decoded.Bounds().Dy())
}

func TestStoreImageEmptyPayload(t *testing.T) {
	store := NewInlineStore()

	_, err := store.StoreImage(context.Background(), "c-1", 0, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "MEDIA_ENCODING_ERROR"))
}

func TestStoreImageRejectsNonImageBytes(t *testing.T) {
	store := NewInlineStore()

	_, err := store.StoreImage(context.Background(), "c-1", 0, []byte("definitely not an image"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, "MEDIA_ENCODING_ERROR"))
}

func TestStoreVideoProducesDataURI(t *testing.T) {
	store := NewInlineStore()

	payload, err := store.StoreVideo(context.Background(), "c-1", []byte{0x00, 0x01, 0x02, 0x03})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payload, "data:"))
	assert.Contains(t, payload, ";base64,")
}

func TestStoreVideoEmptyPayload(t *testing.T) {
	store := NewInlineStore()

	_, err := store.StoreVideo(context.Background(), "c-1", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "MEDIA_ENCODING_ERROR"))
}
