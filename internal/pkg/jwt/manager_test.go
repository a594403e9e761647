// internal/pkg/jwt/manager_test.go
package jwt

import (
	"testing"
	"time"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	m, err := NewManager(Config{Secret: "test-secret", Issuer: "test", TTL: ttl})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager(Config{}); err == nil {
		t.Error("expected an error for an empty secret")
	}
}

func TestGenerateAndVerify(t *testing.T) {
	m := newTestManager(t, time.Hour)

	token, expiresAt, err := m.Generate(42, "admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if until := time.Until(expiresAt); until < 55*time.Minute || until > time.Hour {
		t.Errorf("unexpected expiry %v from now", until)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.AdminID != 42 {
		t.Errorf("AdminID = %d, want 42", claims.AdminID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a token ID")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	// NewManager refuses non-positive TTLs, so build the expired issuer by hand.
	m := &Manager{secret: []byte("test-secret"), issuer: "test", ttl: -time.Minute}

	token, _, err := m.Generate(42, "admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Error("expected an error for an expired token")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	m := newTestManager(t, time.Hour)
	token, _, err := m.Generate(42, "admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	other, err := NewManager(Config{Secret: "different-secret"})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Error("expected an error for a token signed with another secret")
	}
}

func TestVerifyGarbage(t *testing.T) {
	m := newTestManager(t, time.Hour)
	if _, err := m.Verify("not.a.token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
