package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"go-property-listing/internal/model"
	"go-property-listing/internal/session"
	"go-property-listing/internal/token"
)

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

type sessionStore interface {
	Put(ctx context.Context, userID string, sessionID string, refreshToken string, ttl time.Duration) error
	Get(ctx context.Context, userID string, sessionID string) (string, error)
	Revoke(ctx context.Context, userID string, sessionID string) error
}

// AuthService drives the session lifecycle: login issues an access/refresh
// pair and stores the refresh token under a fresh session id; refresh
// rotates the pair; logout revokes the session.
type AuthService struct {
	codec    *token.Codec
	users    userFinder
	sessions sessionStore
}

func NewAuthService(codec *token.Codec, users userFinder, sessions sessionStore) *AuthService {
	return &AuthService{codec: codec, users: users, sessions: sessions}
}

// Login verifies credentials and opens a new session.
//
// "user not found" and "wrong password" stay distinguishable at the
// boundary, matching current product behavior. This leaks account
// existence; unifying the two awaits a product decision.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return model.LoginResult{}, err
	}

	if len(password) > maxPasswordBytes {
		return model.LoginResult{}, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.LoginResult{}, model.ErrInvalidCredentials
	}

	subject := strconv.FormatInt(user.ID, 10)
	accessToken, err := s.codec.IssueAccess(subject, user.Role, user.UserType)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, err := s.codec.IssueRefresh(subject, user.Role, user.UserType)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("issue refresh token: %w", err)
	}

	// A failed store write means no session exists; the issued tokens
	// must not leave this function.
	sessionID := session.NewSessionID()
	if err := s.sessions.Put(ctx, subject, sessionID, refreshToken, s.codec.RefreshTTL()); err != nil {
		return model.LoginResult{}, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		slog.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}

	return model.LoginResult{
		TokenPair: model.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    int64(s.codec.AccessTTL().Seconds()),
		},
		SessionID: sessionID,
		User:      user,
	}, nil
}

// Refresh exchanges a refresh token for a new pair, rotating the stored
// token so each refresh token is single-use. A stale token (expired,
// revoked, or superseded by a prior rotation) uniformly fails the
// equality check.
func (s *AuthService) Refresh(ctx context.Context, sessionID string, refreshToken string) (model.TokenPair, error) {
	claims, err := s.codec.Decode(refreshToken, token.KindRefresh)
	if err != nil {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	stored, err := s.sessions.Get(ctx, claims.UserID, sessionID)
	if errors.Is(err, model.ErrSessionNotFound) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.TokenPair{}, err
	}
	if stored != refreshToken {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	newAccess, err := s.codec.IssueAccess(claims.UserID, claims.Role, claims.UserType)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}
	newRefresh, err := s.codec.IssueRefresh(claims.UserID, claims.Role, claims.UserType)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh token: %w", err)
	}

	// Rotation overwrites the same session key. Two concurrent refreshes
	// race on this write; one token wins and the other fails its next
	// equality check. Accepted, not silently corrected.
	if err := s.sessions.Put(ctx, claims.UserID, sessionID, newRefresh, s.codec.RefreshTTL()); err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken:  newAccess,
		RefreshToken: newRefresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.codec.AccessTTL().Seconds()),
	}, nil
}

// Logout revokes the session unconditionally. Revoking an already-absent
// session succeeds.
func (s *AuthService) Logout(ctx context.Context, userID string, sessionID string) error {
	return s.sessions.Revoke(ctx, userID, sessionID)
}

// ValidateAccessToken decodes an access token for the auth middleware.
func (s *AuthService) ValidateAccessToken(tokenString string) (*token.Claims, error) {
	return s.codec.Decode(tokenString, token.KindAccess)
}
