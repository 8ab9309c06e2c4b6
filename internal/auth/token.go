package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/shopping-service/internal/domain"
)

const (
	defaultAccessTTL  = 5 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
)

// TokenType discriminates access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the signed payload shared by both token kinds.
// ExpiresAt is in milliseconds since the Unix epoch.
type Claims struct {
	TokenType   TokenType `json:"token_type"`
	ExpiresAt   int64     `json:"exp"`
	UserID      int32     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	IsAdmin     bool      `json:"is_admin"`
}

var _ jwt.Claims = (*Claims)(nil)

func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return &jwt.NumericDate{Time: time.UnixMilli(c.ExpiresAt)}, nil
}

func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c *Claims) GetIssuer() (string, error)              { return "", nil }
func (c *Claims) GetSubject() (string, error)             { return "", nil }
func (c *Claims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }

// AccessClaims are the verified claims of an access token.
type AccessClaims struct {
	Claims
}

// RefreshClaims are the verified claims of a refresh token.
type RefreshClaims struct {
	Claims
}

// TokenOption customizes a TokenManager.
type TokenOption func(*TokenManager)

// WithClock replaces the wall clock used for issuance and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(tm *TokenManager) {
		tm.now = now
	}
}

// TokenManager issues and verifies HS256 signed access and refresh tokens.
// It is immutable after construction and safe for concurrent use.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenManager builds a new manager. Non-positive TTLs fall back to defaults.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration, opts ...TokenOption) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	tm := &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(tm)
	}
	return tm
}

// AccessTTL returns the lifetime of issued access tokens.
func (tm *TokenManager) AccessTTL() time.Duration { return tm.accessTTL }

// RefreshTTL returns the lifetime of issued refresh tokens.
func (tm *TokenManager) RefreshTTL() time.Duration { return tm.refreshTTL }

// IssueAccess signs a short lived access token for user.
// It returns an empty string if signing fails; empty tokens never verify.
func (tm *TokenManager) IssueAccess(user *domain.User) string {
	return tm.issue(user, TokenTypeAccess, tm.accessTTL)
}

// IssueRefresh signs a long lived refresh token for user.
func (tm *TokenManager) IssueRefresh(user *domain.User) string {
	return tm.issue(user, TokenTypeRefresh, tm.refreshTTL)
}

// VerifyAccess returns the claims of a valid, unexpired access token.
func (tm *TokenManager) VerifyAccess(token string) (*AccessClaims, bool) {
	claims, ok := tm.verify(token, TokenTypeAccess)
	if !ok {
		return nil, false
	}
	return &AccessClaims{Claims: *claims}, true
}

// VerifyRefresh returns the claims of a valid, unexpired refresh token.
func (tm *TokenManager) VerifyRefresh(token string) (*RefreshClaims, bool) {
	claims, ok := tm.verify(token, TokenTypeRefresh)
	if !ok {
		return nil, false
	}
	return &RefreshClaims{Claims: *claims}, true
}

func (tm *TokenManager) issue(user *domain.User, tokenType TokenType, ttl time.Duration) string {
	if user == nil {
		return ""
	}
	claims := &Claims{
		TokenType:   tokenType,
		ExpiresAt:   tm.now().Add(ttl).UnixMilli(),
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		IsAdmin:     user.IsAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return ""
	}
	return signed
}

// verify checks signature, then type, then expiry. Every failure is reported the same way.
func (tm *TokenManager) verify(tokenStr string, want TokenType) (*Claims, bool) {
	if tokenStr == "" {
		return nil, false
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}

	if claims.TokenType != want {
		return nil, false
	}
	if claims.ExpiresAt <= tm.now().UnixMilli() {
		return nil, false
	}
	return claims, true
}
