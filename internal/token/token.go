package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the typ claim so access tokens can never be replayed
// as refresh tokens and vice versa.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalidToken  = errors.New("token is invalid or expired")
	ErrWrongType     = errors.New("unexpected token type")
	ErrTokenRevoked  = errors.New("token has been revoked")
	ErrMissingSecret = errors.New("signing secret is empty")
)

// Claims defines the JWT claims used by the API.
type Claims struct {
	UserID    uint64 `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Pair is an access/refresh token pair issued at login or registration.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Manager issues and validates JWTs.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	blacklist  Blacklist
}

// NewManager creates a Manager. A nil blacklist disables revocation checks.
func NewManager(secret string, accessTTL, refreshTTL time.Duration, blacklist Blacklist) (*Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if blacklist == nil {
		blacklist = NewMemoryBlacklist()
	}
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		blacklist:  blacklist,
	}, nil
}

// IssuePair issues a new access/refresh pair for the given user.
func (m *Manager) IssuePair(userID uint64) (Pair, error) {
	access, err := m.issue(userID, TypeAccess, m.accessTTL)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := m.issue(userID, TypeRefresh, m.refreshTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

func (m *Manager) issue(userID uint64, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a token of any type and returns its claims. Revoked tokens
// are rejected.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if m.blacklist.IsRevoked(claims.ID) {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// ParseType validates a token and additionally checks its type.
func (m *Manager) ParseType(tokenStr, tokenType string) (*Claims, error) {
	claims, err := m.Parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, ErrWrongType
	}
	return claims, nil
}

// Refresh issues a fresh access token from a live refresh token.
func (m *Manager) Refresh(refreshToken string) (string, error) {
	claims, err := m.ParseType(refreshToken, TypeRefresh)
	if err != nil {
		return "", err
	}
	return m.issue(claims.UserID, TypeAccess, m.accessTTL)
}

// Revoke blacklists a refresh token until its natural expiration.
func (m *Manager) Revoke(refreshToken string) error {
	claims, err := m.ParseType(refreshToken, TypeRefresh)
	if err != nil {
		return err
	}

	until := time.Now().Add(m.refreshTTL)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	m.blacklist.Revoke(claims.ID, until)
	return nil
}
