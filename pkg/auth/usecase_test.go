package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	byEmail map[string]User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]User)}
}

func (m *memUserRepo) Create(_ context.Context, user User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, _ User) (string, error) {
	return "token-123", nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), staticTokens{})

	res, err := svc.Register(context.Background(), "  Jane@Example.COM ", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", res.User.Email)
	assert.Equal(t, "token-123", res.Token)
	assert.NotEqual(t, "hunter2hunter2", res.User.PasswordHash)

	login, err := svc.Login(context.Background(), "jane@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), staticTokens{})
	_, err := svc.Register(context.Background(), "jane@example.com", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterEmptyCredentials(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), staticTokens{})
	_, err := svc.Register(context.Background(), "", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "jane@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), staticTokens{})
	_, err := svc.Register(context.Background(), "jane@example.com", "hunter2hunter2")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "JANE@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), staticTokens{})
	_, err := svc.Register(context.Background(), "jane@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
