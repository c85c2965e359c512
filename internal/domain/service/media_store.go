package service

import (
	"context"
)

// MediaStore converts raw media bytes into a payload string that can live in
// a complaint document: either an inline data URI or an object-storage URL,
// depending on the implementation. The submission pipeline depends on this
// interface, never on the concrete choice.
type MediaStore interface {
	StoreImage(ctx context.Context, complaintID string, index int, data []byte) (string, error)
	StoreVideo(ctx context.Context, complaintID string, data []byte) (string, error)
}
