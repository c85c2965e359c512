package usecase

import "context"

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, string, error)
	RefreshIdToken(refreshToken string) (string, string, error)
	UpdateUserEmail(ctx context.Context, uid, newEmail string) error
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	UpdateUserProfile(ctx context.Context, uid, displayName, photoURL string) error
	DeleteUser(ctx context.Context, uid string) error
}
