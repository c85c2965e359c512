package repository

import (
	"context"

	"laporkota/internal/domain/entity"
)

type ComplaintRepository interface {
	// Create assigns the document id and server-side timestamps, and fills
	// them back into the entity.
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id string) (*entity.Complaint, error)
	// List returns complaints matching the equality filter, newest first by
	// default. limit <= 0 means no limit.
	List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Complaint, int64, error)
	// UpdateFields patches the given fields and refreshes updatedAt with the
	// store's clock.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	// SetMedia attaches the encoded media payloads created during the second
	// phase of submission. It deliberately leaves updatedAt alone: media
	// attachment is part of creation, not a user-visible mutation.
	SetMedia(ctx context.Context, id string, images []string, video string) error
	Delete(ctx context.Context, id string) error
	// Watch streams the full visible document set on every change. userID
	// empty watches the whole collection (admin scope). The channel closes
	// when ctx is done.
	Watch(ctx context.Context, userID string) (<-chan []*entity.Complaint, error)
}
