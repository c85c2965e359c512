package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/disintegration/imaging"

	"laporkota/pkg/errors"
	"laporkota/pkg/logger"
)

const (
	// Images wider than this are scaled down before inline-encoding so the
	// payload stays under the document-size ceiling.
	maxImageWidth = 800
	jpegQuality   = 70
)

// InlineStore embeds media directly in the complaint document as data URIs.
// Simple and size-limited; the GCS store is the scalable alternative behind
// the same interface.
type InlineStore struct{}

func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

func (s *InlineStore) StoreImage(ctx context.Context, complaintID string, index int, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.MediaEncoding("Image payload is empty", nil)
	}

	encoded, err := normalizeImage(data)
	if err != nil {
		// Resize failed: fall back to the original bytes if they at least
		// look like an image.
		contentType := http.DetectContentType(data)
		if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/gif" && contentType != "image/webp" {
			return "", errors.MediaEncoding("Unsupported image format", err)
		}
		logger.Warn("Image resize failed for complaint %s (index %d), encoding original bytes: %v", complaintID, index, err)
		return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
	}

	return encoded, nil
}

func (s *InlineStore) StoreVideo(ctx context.Context, complaintID string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.MediaEncoding("Video payload is empty", nil)
	}

	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" {
		contentType = "video/mp4"
	}

	// Videos are inline-encoded without resizing.
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}

func normalizeImage(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", err
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", err
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
