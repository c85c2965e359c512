package usecase

import (
	"context"
	"time"

	"laporkota/internal/domain/entity"
	"laporkota/internal/domain/repository"
	"laporkota/internal/domain/service"
	"laporkota/pkg/errors"
	"laporkota/pkg/logger"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	mediaStore   service.MediaStore
}

func NewUserUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient, mediaStore service.MediaStore) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		mediaStore:   mediaStore,
	}
}

type UpdateProfileInput struct {
	Name  string
	Photo []byte
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}

	if len(input.Photo) > 0 {
		payload, err := uc.mediaStore.StoreImage(ctx, "profile-"+userID, 0, input.Photo)
		if err != nil {
			return nil, err
		}
		user.PhotoURL = payload
	}

	if err := uc.firebaseAuth.UpdateUserProfile(ctx, userID, user.Name, user.PhotoURL); err != nil {
		return nil, errors.Internal("Failed to update auth profile", err)
	}

	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateEmail requires re-authentication with the current password. A failed
// re-auth blocks only this change; nothing else is touched.
func (uc *UserUseCase) UpdateEmail(ctx context.Context, userID, currentPassword, newEmail string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, _, err := uc.firebaseAuth.SignInWithEmailPassword(user.Email, currentPassword); err != nil {
		return nil, errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.firebaseAuth.UpdateUserEmail(ctx, userID, newEmail); err != nil {
		return nil, errors.Internal("Failed to update email", err)
	}

	user.Email = newEmail
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdatePassword requires re-authentication with the current password.
func (uc *UserUseCase) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if _, _, err := uc.firebaseAuth.SignInWithEmailPassword(user.Email, currentPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.firebaseAuth.UpdateUserPassword(ctx, userID, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}

	return nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, role, limit, offset)
}

// SetRole is the only path that changes an account's role; it is reachable
// through the admin surface alone.
func (uc *UserUseCase) SetRole(ctx context.Context, userID, role string) (*entity.User, error) {
	if !entity.IsValidRole(role) {
		return nil, errors.Validation("role must be one of: user, admin", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := uc.firebaseAuth.DeleteUser(ctx, userID); err != nil {
		// The auth account may already be gone; the document is still
		// removed so the two stores converge.
		logger.Warn("Failed to delete auth account for %s: %v", userID, err)
	}

	return uc.userRepo.Delete(ctx, userID)
}
