package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"laporkota/internal/domain/entity"
	"laporkota/internal/domain/repository"
	"laporkota/pkg/errors"
	"laporkota/pkg/logger"
)

const complaintsCollection = "complaints"

type firestoreComplaintRepository struct {
	client *firestore.Client
}

func NewFirestoreComplaintRepository(client *firestore.Client) repository.ComplaintRepository {
	return &firestoreComplaintRepository{
		client: client,
	}
}

func (r *firestoreComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	doc := r.client.Collection(complaintsCollection).NewDoc()
	complaint.ID = doc.ID

	// Zero timestamps let the serverTimestamp sentinel assign both from the
	// same write, so createdAt == updatedAt on creation.
	complaint.CreatedAt = time.Time{}
	complaint.UpdatedAt = time.Time{}
	if _, err := doc.Set(ctx, complaint); err != nil {
		return errors.Internal("Failed to create complaint", err)
	}

	// Read back to pick up the server-assigned timestamps.
	snap, err := doc.Get(ctx)
	if err != nil {
		logger.Warn("Created complaint %s but could not read back timestamps: %v", complaint.ID, err)
		return nil
	}
	if err := snap.DataTo(complaint); err != nil {
		return errors.Internal("Failed to parse created complaint", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	doc, err := r.client.Collection(complaintsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Complaint", err)
		}
		return nil, errors.Internal("Failed to get complaint", err)
	}

	var complaint entity.Complaint
	if err := doc.DataTo(&complaint); err != nil {
		return nil, errors.Internal("Failed to parse complaint data", err)
	}

	return &complaint, nil
}

func (r *firestoreComplaintRepository) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Complaint, int64, error) {
	query := r.client.Collection(complaintsCollection).Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	if sort != "" {
		parts := strings.Split(sort, "_")
		field := parts[0]
		order := firestore.Asc
		if len(parts) > 1 && parts[1] == "desc" {
			order = firestore.Desc
		}
		query = query.OrderBy(field, order)
	} else {
		query = query.OrderBy("createdAt", firestore.Desc)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count complaints", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var complaints []*entity.Complaint

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate complaints", err)
		}

		var complaint entity.Complaint
		if err := doc.DataTo(&complaint); err != nil {
			return nil, 0, errors.Internal("Failed to parse complaint data", err)
		}
		complaints = append(complaints, &complaint)
	}

	return complaints, total, nil
}

func (r *firestoreComplaintRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for key, value := range fields {
		updates = append(updates, firestore.Update{Path: key, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	_, err := r.client.Collection(complaintsCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Complaint", err)
		}
		return errors.Internal("Failed to update complaint", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) SetMedia(ctx context.Context, id string, images []string, video string) error {
	updates := []firestore.Update{
		{Path: "images", Value: images},
	}
	if video != "" {
		updates = append(updates, firestore.Update{Path: "video", Value: video})
	}

	_, err := r.client.Collection(complaintsCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Complaint", err)
		}
		return errors.Internal("Failed to attach complaint media", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(complaintsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete complaint", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) Watch(ctx context.Context, userID string) (<-chan []*entity.Complaint, error) {
	query := r.client.Collection(complaintsCollection).Query
	if userID != "" {
		query = query.Where("userId", "==", userID)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	snapshots := query.Snapshots(ctx)
	out := make(chan []*entity.Complaint)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Complaint watch stopped: %v", err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("Failed to read complaint snapshot: %v", err)
				continue
			}

			complaints := make([]*entity.Complaint, 0, len(docs))
			for _, doc := range docs {
				var complaint entity.Complaint
				if err := doc.DataTo(&complaint); err != nil {
					logger.Warn("Skipping malformed complaint document %s: %v", doc.Ref.ID, err)
					continue
				}
				complaints = append(complaints, &complaint)
			}

			select {
			case out <- complaints:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
