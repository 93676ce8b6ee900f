package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret")

	token, err := m.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if userID != "user-123" {
		t.Errorf("expected user-123, got %s", userID)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret")

	// Sign a token that expired an hour ago with the same secret
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	_, err = m.Verify(tokenString)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenManager("secret-a").Issue("user-123")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = NewTokenManager("secret-b").Verify(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q): expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestTokenManager_MissingUserID(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret")

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := noUser.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := m.Verify(tokenString); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
