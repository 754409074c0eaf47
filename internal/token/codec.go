package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-property-listing/internal/model"
)

type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims is the decoded, verified payload of a bearer token. Role and
// UserType are carried as named fields rather than an open map so shape
// drift is caught at compile time.
type Claims struct {
	UserID    string
	Role      string
	UserType  string
	Kind      Kind
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec signs and verifies bearer tokens with a single process-wide
// HS256 secret. It is stateless and safe for concurrent use.
type Codec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCodec(secret string, accessTTL time.Duration, refreshTTL time.Duration) (*Codec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token: signing secret is required")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("token: TTLs must be positive")
	}

	return &Codec{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

func (c *Codec) AccessTTL() time.Duration {
	return c.accessTTL
}

func (c *Codec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

func (c *Codec) IssueAccess(userID string, role string, userType string) (string, error) {
	return c.issue(userID, role, userType, KindAccess, c.accessTTL)
}

func (c *Codec) IssueRefresh(userID string, role string, userType string) (string, error) {
	return c.issue(userID, role, userType, KindRefresh, c.refreshTTL)
}

func (c *Codec) issue(userID string, role string, userType string, kind Kind, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       userID,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
		"typ":       string(kind),
		"role":      role,
		"user_type": userType,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}

	return signed, nil
}

// Decode verifies signature, expiry and kind. Failures collapse into two
// sentinel errors: model.ErrTokenExpired for a well-formed but expired
// token, model.ErrTokenMalformed for everything else (bad signature,
// wrong algorithm, wrong kind, missing subject). Callers treat both as
// unauthenticated.
func (c *Codec) Decode(tokenString string, expected Kind) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrTokenExpired
		}
		return nil, model.ErrTokenMalformed
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, model.ErrTokenMalformed
	}

	kind, _ := claimsMap["typ"].(string)
	if Kind(kind) != expected {
		return nil, model.ErrTokenMalformed
	}

	subject, _ := claimsMap["sub"].(string)
	if subject == "" {
		return nil, model.ErrTokenMalformed
	}

	claims := &Claims{UserID: subject, Kind: Kind(kind)}
	claims.Role, _ = claimsMap["role"].(string)
	claims.UserType, _ = claimsMap["user_type"].(string)

	if iat, err := claimsMap.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := claimsMap.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
