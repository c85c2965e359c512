package usecase

import (
	"context"
	"time"

	"laporkota/internal/domain/entity"
	"laporkota/internal/domain/repository"
	"laporkota/pkg/errors"
	"laporkota/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	User         *entity.User
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	// Every authenticated identity gets exactly one users/{uid} document,
	// registered with the least-privileged role.
	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Name:      input.Name,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			// Account exists in the auth provider but has no profile
			// document; treat as a regular user rather than failing login.
			user = &entity.User{ID: uid, Email: email, Role: entity.RoleUser}
		} else {
			return nil, err
		}
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// ResolveRole decides which dashboard the signed-in identity is routed to.
// A missing document or an unknown role value resolves to the regular-user
// role; only a real lookup failure propagates, so the caller can fall back
// to the sign-in screen instead of guessing.
func (uc *AuthUseCase) ResolveRole(ctx context.Context, uid string) (string, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return entity.RoleUser, nil
		}
		return "", err
	}

	if !entity.IsValidRole(user.Role) {
		return entity.RoleUser, nil
	}

	return user.Role, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	token, newRefreshToken, err := uc.firebaseAuth.RefreshIdToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify refreshed token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: newRefreshToken,
	}, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	// Sessions are bearer ID tokens; logout is handled client-side by
	// discarding them.
	return nil
}
