package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkota/internal/domain/entity"
	"laporkota/pkg/errors"
)

type fakeUserRepo struct {
	users   map[string]*entity.User
	lookupE error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.lookupE != nil {
		return nil, r.lookupE
	}
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, u := range r.users {
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

type fakeAuthClient struct {
	uid       string
	signInErr error
	deleteErr error

	emailUpdates    []string
	passwordUpdates []string
	profileUpdates  []string
	deletedUIDs     []string
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return f.uid, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return f.uid, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	if f.signInErr != nil {
		return "", "", f.signInErr
	}
	return "id-token", "refresh-token", nil
}

func (f *fakeAuthClient) RefreshIdToken(refreshToken string) (string, string, error) {
	return "id-token-2", "refresh-token-2", nil
}

func (f *fakeAuthClient) UpdateUserEmail(ctx context.Context, uid, newEmail string) error {
	f.emailUpdates = append(f.emailUpdates, newEmail)
	return nil
}

func (f *fakeAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	f.passwordUpdates = append(f.passwordUpdates, newPassword)
	return nil
}

func (f *fakeAuthClient) UpdateUserProfile(ctx context.Context, uid, displayName, photoURL string) error {
	f.profileUpdates = append(f.profileUpdates, displayName)
	return nil
}

func (f *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	f.deletedUIDs = append(f.deletedUIDs, uid)
	return f.deleteErr
}

func TestRegisterCreatesUserDocumentWithUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, &fakeAuthClient{uid: "uid-1"})

	result, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "id-token", result.Token)
	assert.Equal(t, entity.RoleUser, result.User.Role)

	stored := repo.users["uid-1"]
	require.NotNil(t, stored)
	assert.Equal(t, entity.RoleUser, stored.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, &fakeAuthClient{uid: "uid-1", signInErr: assert.AnError})

	_, err := uc.Login(context.Background(), "budi@example.com", "wrong")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginToleratesMissingProfileDocument(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, &fakeAuthClient{uid: "uid-1"})

	result, err := uc.Login(context.Background(), "budi@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", result.User.ID)
	assert.Equal(t, entity.RoleUser, result.User.Role)
}

func TestResolveRoleAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["uid-1"] = &entity.User{ID: "uid-1", Role: entity.RoleAdmin}
	uc := NewAuthUseCase(repo, &fakeAuthClient{uid: "uid-1"})

	role, err := uc.ResolveRole(context.Background(), "uid-1")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestResolveRoleMissingDocumentDefaultsToUser(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), &fakeAuthClient{uid: "uid-1"})

	role, err := uc.ResolveRole(context.Background(), "uid-unknown")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestResolveRoleUnknownValueDefaultsToUser(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["uid-1"] = &entity.User{ID: "uid-1", Role: "superadmin"}
	uc := NewAuthUseCase(repo, &fakeAuthClient{uid: "uid-1"})

	role, err := uc.ResolveRole(context.Background(), "uid-1")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestResolveRolePropagatesLookupFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.lookupE = errors.Internal("store unavailable", assert.AnError)
	uc := NewAuthUseCase(repo, &fakeAuthClient{uid: "uid-1"})

	role, err := uc.ResolveRole(context.Background(), "uid-1")

	require.Error(t, err)
	assert.Empty(t, role)
}
