package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	authpkg "github.com/Ophelia-lia/customer-system/auth"
	"github.com/Ophelia-lia/customer-system/entity"
)

// Compile-time check to ensure fakeAuthRepo implements auth.Repository.
var _ authpkg.Repository = (*fakeAuthRepo)(nil)

// fakeAuthRepo is an in-memory auth.Repository keyed by username.
type fakeAuthRepo struct {
	users map[string]*entity.User
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: make(map[string]*entity.User)}
}

func (f *fakeAuthRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeAuthRepo) SaveUser(ctx context.Context, u *entity.User) error {
	copied := *u
	f.users[u.Username] = &copied
	return nil
}

func seedOne(t *testing.T, repo authpkg.Repository, username, password, role string) {
	t.Helper()
	svc := NewAuthService(repo, "test-secret")
	err := svc.Seed(context.Background(), []authpkg.SeedAccount{{Username: username, Password: password, Role: role}})
	assert.NoError(t, err)
}

func TestSeedCreatesHashedAccounts(t *testing.T) {
	repo := newFakeAuthRepo()
	seedOne(t, repo, "admin", "hunter2", entity.RoleAdmin)

	u := repo.users["admin"]
	assert.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.NotEqual(t, "hunter2", u.PasswordHash, "passwords are never stored in the clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2")))
	assert.NotEqual(t, u.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestSeedSkipsEmptyAccounts(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, "test-secret")
	err := svc.Seed(context.Background(), []authpkg.SeedAccount{
		{Username: "admin", Password: "", Role: entity.RoleAdmin},
		{Username: "", Password: "x", Role: entity.RoleReader},
	})
	assert.NoError(t, err)
	assert.Empty(t, repo.users)
}

func TestSeedUpdatesExistingAccount(t *testing.T) {
	repo := newFakeAuthRepo()
	seedOne(t, repo, "guest", "old-pass", entity.RoleReader)
	oldID := repo.users["guest"].ID

	seedOne(t, repo, "guest", "new-pass", entity.RoleReader)
	assert.Equal(t, oldID, repo.users["guest"].ID, "reseeding keeps the account identity")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["guest"].PasswordHash), []byte("new-pass")))
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeAuthRepo()
	seedOne(t, repo, "admin", "hunter2", entity.RoleAdmin)
	svc := NewAuthService(repo, "test-secret")

	p, err := svc.Login(context.Background(), authpkg.LoginRequest{Username: "admin", Password: "hunter2"})
	assert.NoError(t, err)
	assert.Equal(t, "admin", p.Username)
	assert.Equal(t, entity.RoleAdmin, p.Role)
	assert.NotEmpty(t, p.Token)

	claims, err := authpkg.ParseAndValidate("test-secret", p.Token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAuthRepo()
	seedOne(t, repo, "admin", "hunter2", entity.RoleAdmin)
	svc := NewAuthService(repo, "test-secret")

	_, err := svc.Login(context.Background(), authpkg.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, authpkg.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), "test-secret")

	_, err := svc.Login(context.Background(), authpkg.LoginRequest{Username: "nobody", Password: "x"})
	assert.ErrorIs(t, err, authpkg.ErrInvalidCredentials)
}
