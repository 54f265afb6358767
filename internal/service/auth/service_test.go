package auth

import (
	"context"
	"testing"

	"github.com/meridianhr/payroll-backend-go/internal/domain/auth"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users []auth.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (auth.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (auth.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}

func newTestService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: []auth.User{
		{
			ID:           "user-1",
			Email:        "hr@example.com",
			PasswordHash: string(hash),
			FullName:     "HR Admin",
			IsAdmin:      true,
		},
	}}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthService(repo, jwtService), jwtService
}

func TestLoginSuccess(t *testing.T) {
	s, _ := newTestService(t)

	resp, err := s.Login(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "hr@example.com", resp.Email)
	assert.True(t, resp.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Login(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	s, _ := newTestService(t)

	login, err := s.Login(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	refreshed, err := s.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The first refresh token is dead after the exchange.
	_, err = s.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	s, _ := newTestService(t)

	login, err := s.Login(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = s.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	s, jwtService := newTestService(t)

	login, err := s.Login(context.Background(), auth.LoginRequest{
		Email:    "hr@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background(), login.RefreshToken))
	assert.True(t, jwtService.IsTokenRevoked(login.RefreshToken))
}
