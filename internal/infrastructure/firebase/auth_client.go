package firebase

import (
	"context"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
)

type FirebaseAuthClient struct {
	client     *auth.Client
	apiKey     string
	httpClient *http.Client
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) UpdateUserEmail(ctx context.Context, uid, newEmail string) error {
	params := (&auth.UserToUpdate{}).
		Email(newEmail)

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

func (f *FirebaseAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).
		Password(newPassword)

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

func (f *FirebaseAuthClient) UpdateUserProfile(ctx context.Context, uid, displayName, photoURL string) error {
	params := &auth.UserToUpdate{}
	if displayName != "" {
		params = params.DisplayName(displayName)
	}
	if photoURL != "" {
		params = params.PhotoURL(photoURL)
	}

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

func (f *FirebaseAuthClient) DeleteUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}
