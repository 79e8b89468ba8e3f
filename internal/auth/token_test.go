package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager([]byte("test-secret"), 15*time.Minute)
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}
	return m
}

func TestTokenManager_IssueResolve(t *testing.T) {
	m := newTestManager(t)

	token, err := m.Issue("customer-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	customerID, err := m.Resolve(token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if customerID != "customer-1" {
		t.Fatalf("expected customer-1, got %s", customerID)
	}
}

func TestTokenManager_ResolveMalformed(t *testing.T) {
	m := newTestManager(t)

	for _, token := range []string{"", "invalidToken", "a.b.c"} {
		if _, err := m.Resolve(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", token, err)
		}
	}
}

func TestTokenManager_ResolveWrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, err := NewTokenManager([]byte("other-secret"), 15*time.Minute)
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}

	token, err := other.Issue("customer-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := m.Resolve(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_ResolveExpired(t *testing.T) {
	m := newTestManager(t)

	issuedAt := time.Now().UTC()
	m.now = func() time.Time { return issuedAt }

	token, err := m.Issue("customer-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Сдвигаем часы за горизонт действия токена.
	m.now = func() time.Time { return issuedAt.Add(16 * time.Minute) }

	if _, err := m.Resolve(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if !CheckPassword(hash, "password123") {
		t.Fatal("expected password to match")
	}
	if CheckPassword(hash, "password124") {
		t.Fatal("expected mismatch for wrong password")
	}

	if _, err := HashPassword("short"); err == nil {
		t.Fatal("expected error for short password")
	}
}
