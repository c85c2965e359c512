package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"laporkota/internal/domain/entity"
	"laporkota/internal/domain/repository"
	"laporkota/pkg/errors"
)

const usersCollection = "users"

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user record", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	updateData := map[string]interface{}{
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"photoURL":  user.PhotoURL,
		"updatedAt": firestore.ServerTimestamp,
	}

	// Skip empty strings so a partial update never wipes existing fields.
	cleanUpdateData := make(map[string]interface{})
	for key, value := range updateData {
		if strVal, ok := value.(string); ok && strVal == "" {
			continue
		}
		cleanUpdateData[key] = value
	}

	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, cleanUpdateData, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}

	return nil
}

func (r *firestoreUserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(usersCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete user", err)
	}
	return nil
}

func (r *firestoreUserRepository) List(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	query := r.client.Collection(usersCollection).Query
	if role != "" {
		query = query.Where("role", "==", role)
	}

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count users", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var users []*entity.User

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate users", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, 0, errors.Internal("Failed to parse user data", err)
		}
		users = append(users, &user)
	}

	return users, total, nil
}
