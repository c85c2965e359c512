package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkota/internal/domain/entity"
	"laporkota/pkg/errors"
)

func seededUserRepo() *fakeUserRepo {
	repo := newFakeUserRepo()
	repo.users["uid-1"] = &entity.User{
		ID:    "uid-1",
		Email: "budi@example.com",
		Name:  "Budi",
		Role:  entity.RoleUser,
	}
	return repo
}

func TestUpdateProfileChangesNameAndPhoto(t *testing.T) {
	repo := seededUserRepo()
	auth := &fakeAuthClient{uid: "uid-1"}
	uc := NewUserUseCase(repo, auth, &fakeMediaStore{})

	user, err := uc.UpdateProfile(context.Background(), "uid-1", UpdateProfileInput{
		Name:  "Budi Santoso",
		Photo: []byte("photo-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", user.Name)
	assert.True(t, strings.HasPrefix(user.PhotoURL, "data:image/jpeg;base64,"))
	assert.Equal(t, []string{"Budi Santoso"}, auth.profileUpdates)
	assert.Equal(t, "Budi Santoso", repo.users["uid-1"].Name)
}

func TestUpdateProfileFailedPhotoEncodingBlocksUpdate(t *testing.T) {
	repo := seededUserRepo()
	auth := &fakeAuthClient{uid: "uid-1"}
	uc := NewUserUseCase(repo, auth, &fakeMediaStore{failOn: map[int]bool{0: true}})

	_, err := uc.UpdateProfile(context.Background(), "uid-1", UpdateProfileInput{
		Name:  "Budi Santoso",
		Photo: []byte("corrupt"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "MEDIA_ENCODING_ERROR"))
	assert.Empty(t, auth.profileUpdates)
	assert.Equal(t, "Budi", repo.users["uid-1"].Name)
}

func TestUpdateEmailRequiresReauthentication(t *testing.T) {
	repo := seededUserRepo()
	auth := &fakeAuthClient{uid: "uid-1", signInErr: assert.AnError}
	uc := NewUserUseCase(repo, auth, &fakeMediaStore{})

	_, err := uc.UpdateEmail(context.Background(), "uid-1", "wrong-password", "new@example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Empty(t, auth.emailUpdates, "a failed re-auth must block the email change")
	assert.Equal(t, "budi@example.com", repo.users["uid-1"].Email)
}

func TestUpdateEmailWithCorrectPassword(t *testing.T) {
	repo := seededUserRepo()
	auth := &fakeAuthClient{uid: "uid-1"}
	uc := NewUserUseCase(repo, auth, &fakeMediaStore{})

	user, err := uc.UpdateEmail(context.Background(), "uid-1", "secret123", "new@example.com")

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, []string{"new@example.com"}, auth.emailUpdates)
	assert.Equal(t, "new@example.com", repo.users["uid-1"].Email)
}

func TestUpdatePasswordRequiresReauthentication(t *testing.T) {
	repo := seededUserRepo()
	auth := &fakeAuthClient{uid: "uid-1", signInErr: assert.AnError}
	uc := NewUserUseCase(repo, auth, &fakeMediaStore{})

	err := uc.UpdatePassword(context.Background(), "uid-1", "wrong-password", "brand-new-pass")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Empty(t, auth.passwordUpdates, "a failed re-auth must block the password change")
}

func TestUpdatePasswordWithCorrectPassword(t *testing.T) {
	repo := seededUserRepo()
	auth := &fakeAuthClient{uid: "uid-1"}
	uc := NewUserUseCase(repo, auth, &fakeMediaStore{})

	err := uc.UpdatePassword(context.Background(), "uid-1", "secret123", "brand-new-pass")

	require.NoError(t, err)
	assert.Equal(t, []string{"brand-new-pass"}, auth.passwordUpdates)
}

func TestSetRoleRejectsUnknownRole(t *testing.T) {
	repo := seededUserRepo()
	uc := NewUserUseCase(repo, &fakeAuthClient{uid: "uid-1"}, &fakeMediaStore{})

	_, err := uc.SetRole(context.Background(), "uid-1", "superadmin")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.Equal(t, entity.RoleUser, repo.users["uid-1"].Role, "stored role must be untouched")
}

func TestSetRolePromotesToAdmin(t *testing.T) {
	repo := seededUserRepo()
	uc := NewUserUseCase(repo, &fakeAuthClient{uid: "uid-1"}, &fakeMediaStore{})

	user, err := uc.SetRole(context.Background(), "uid-1", entity.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, entity.RoleAdmin, repo.users["uid-1"].Role)
}

func TestSetRoleMissingUser(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), &fakeAuthClient{}, &fakeMediaStore{})

	_, err := uc.SetRole(context.Background(), "uid-unknown", entity.RoleAdmin)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListUsersFiltersByRole(t *testing.T) {
	repo := seededUserRepo()
	repo.users["uid-2"] = &entity.User{ID: "uid-2", Role: entity.RoleAdmin}
	uc := NewUserUseCase(repo, &fakeAuthClient{}, &fakeMediaStore{})

	users, total, err := uc.ListUsers(context.Background(), entity.RoleAdmin, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "uid-2", users[0].ID)
}

func TestDeleteUserRemovesDocument(t *testing.T) {
	repo := seededUserRepo()
	auth := &fakeAuthClient{uid: "uid-1"}
	uc := NewUserUseCase(repo, auth, &fakeMediaStore{})

	require.NoError(t, uc.DeleteUser(context.Background(), "uid-1"))

	assert.Equal(t, []string{"uid-1"}, auth.deletedUIDs)
	assert.Empty(t, repo.users)
}

func TestDeleteUserSurvivesMissingAuthAccount(t *testing.T) {
	repo := seededUserRepo()
	auth := &fakeAuthClient{uid: "uid-1", deleteErr: assert.AnError}
	uc := NewUserUseCase(repo, auth, &fakeMediaStore{})

	// The auth account may already be gone; the document is still removed.
	require.NoError(t, uc.DeleteUser(context.Background(), "uid-1"))
	assert.Empty(t, repo.users)
}

func TestDeleteUserMissingDocument(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), &fakeAuthClient{}, &fakeMediaStore{})

	err := uc.DeleteUser(context.Background(), "uid-unknown")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
