package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-property-listing/internal/model"
	"go-property-listing/internal/session"
	"go-property-listing/internal/token"
)

type stubUserFinder struct {
	user            model.User
	err             error
	lastLoginCalls  int
	updateLoginErr  error
	lastLoginUserID int64
}

func (s *stubUserFinder) FindByEmail(_ context.Context, _ string) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	return s.user, nil
}

func (s *stubUserFinder) UpdateLastLogin(_ context.Context, userID int64) error {
	s.lastLoginCalls++
	s.lastLoginUserID = userID
	return s.updateLoginErr
}

type failingSessionStore struct{}

func (failingSessionStore) Put(context.Context, string, string, string, time.Duration) error {
	return model.ErrBackendUnavailable
}

func (failingSessionStore) Get(context.Context, string, string) (string, error) {
	return "", model.ErrBackendUnavailable
}

func (failingSessionStore) Revoke(context.Context, string, string) error {
	return model.ErrBackendUnavailable
}

func newAuthFixture(t *testing.T) (*AuthService, *stubUserFinder) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	codec, err := token.NewCodec("auth-service-test-secret", 15*time.Minute, time.Hour)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3r$ecret"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUserFinder{user: model.User{
		ID:           42,
		Email:        "agent@example.com",
		Username:     "agent42",
		PasswordHash: string(hash),
		UserType:     model.UserTypeAgent,
		Role:         model.RoleUser,
	}}

	return NewAuthService(codec, users, session.NewStore(rdb)), users
}

func TestAuthServiceLogin(t *testing.T) {
	t.Parallel()

	t.Run("issues a token pair and session", func(t *testing.T) {
		svc, users := newAuthFixture(t)

		result, err := svc.Login(context.Background(), "agent@example.com", "Sup3r$ecret")
		require.NoError(t, err)
		require.NotEmpty(t, result.AccessToken)
		require.NotEmpty(t, result.RefreshToken)
		require.NotEmpty(t, result.SessionID)
		require.Equal(t, "Bearer", result.TokenType)
		require.Equal(t, int64(900), result.ExpiresIn)
		require.Equal(t, int64(42), result.User.ID)
		require.Equal(t, 1, users.lastLoginCalls)
		require.Equal(t, int64(42), users.lastLoginUserID)
	})

	t.Run("unknown user surfaces as not found", func(t *testing.T) {
		svc, users := newAuthFixture(t)
		users.err = model.ErrUserNotFound

		_, err := svc.Login(context.Background(), "nobody@example.com", "Sup3r$ecret")
		require.ErrorIs(t, err, model.ErrUserNotFound)
	})

	t.Run("wrong password fails with invalid credentials", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, err := svc.Login(context.Background(), "agent@example.com", "wrong-password")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("over-length password fails before bcrypt", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		long := make([]byte, 100)
		for i := range long {
			long[i] = 'x'
		}

		_, err := svc.Login(context.Background(), "agent@example.com", string(long))
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("failed session write returns no tokens", func(t *testing.T) {
		_, users := newAuthFixture(t)

		codec, err := token.NewCodec("auth-service-test-secret", 15*time.Minute, time.Hour)
		require.NoError(t, err)
		svc := NewAuthService(codec, users, failingSessionStore{})

		result, err := svc.Login(context.Background(), "agent@example.com", "Sup3r$ecret")
		require.ErrorIs(t, err, model.ErrBackendUnavailable)
		require.Empty(t, result.AccessToken)
		require.Empty(t, result.RefreshToken)
		require.Empty(t, result.SessionID)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		svc, users := newAuthFixture(t)
		users.updateLoginErr = errors.New("write timeout")

		result, err := svc.Login(context.Background(), "agent@example.com", "Sup3r$ecret")
		require.NoError(t, err)
		require.NotEmpty(t, result.AccessToken)
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	t.Parallel()

	t.Run("rotates the refresh token", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		ctx := context.Background()

		login, err := svc.Login(ctx, "agent@example.com", "Sup3r$ecret")
		require.NoError(t, err)

		// Signed tokens embed second-resolution timestamps; without this
		// the rotated token can be byte-identical to the original.
		time.Sleep(1100 * time.Millisecond)

		rotated, err := svc.Refresh(ctx, login.SessionID, login.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, rotated.AccessToken)
		require.NotEqual(t, login.RefreshToken, rotated.RefreshToken)
	})

	t.Run("a rotated-out token cannot be reused", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		ctx := context.Background()

		login, err := svc.Login(ctx, "agent@example.com", "Sup3r$ecret")
		require.NoError(t, err)

		time.Sleep(1100 * time.Millisecond)

		_, err = svc.Refresh(ctx, login.SessionID, login.RefreshToken)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, login.SessionID, login.RefreshToken)
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("access token is not accepted as a refresh token", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		ctx := context.Background()

		login, err := svc.Login(ctx, "agent@example.com", "Sup3r$ecret")
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, login.SessionID, login.AccessToken)
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown session fails", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		ctx := context.Background()

		login, err := svc.Login(ctx, "agent@example.com", "Sup3r$ecret")
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, "some-other-session", login.RefreshToken)
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("garbage token fails", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, err := svc.Refresh(context.Background(), "sess", "not-a-token")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, "agent@example.com", "Sup3r$ecret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "42", login.SessionID))

	_, err = svc.Refresh(ctx, login.SessionID, login.RefreshToken)
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	// Logout is idempotent.
	require.NoError(t, svc.Logout(ctx, "42", login.SessionID))
}

func TestAuthServiceValidateAccessToken(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthFixture(t)

	login, err := svc.Login(context.Background(), "agent@example.com", "Sup3r$ecret")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(login.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "42", claims.UserID)

	_, err = svc.ValidateAccessToken(login.RefreshToken)
	require.Error(t, err)
}
