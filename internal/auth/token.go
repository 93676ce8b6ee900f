package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the absolute lifetime of an issued bearer token.
const TokenTTL = 24 * time.Hour

// Token verification errors.
var (
	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenManager issues and verifies HS256-signed bearer tokens.
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a TokenManager with the given signing secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue produces a signed token encoding the user ID with an absolute
// expiry TokenTTL from now.
func (m *TokenManager) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the encoded user ID.
// Returns ErrTokenExpired for tokens past their expiry and
// ErrTokenInvalid for anything else that fails validation.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", ErrTokenInvalid
	}

	return userID, nil
}
