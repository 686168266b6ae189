package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowgate/internal/auth"
)

func newAuthService() AuthService {
	return NewAuthService(newFakeUserRepo(), auth.NewManager("test-secret", time.Hour))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService()

	user, token, err := svc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password123", user.PasswordHash)

	same, token, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, same.ID)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "alice", "other-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.Login(context.Background(), "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
