package security

import (
	"testing"
	"time"
)

func newTestProvider(ttl time.Duration) *SessionProvider {
	return NewSessionProvider([]byte("0123456789abcdef0123456789abcdef"), "console", "console-admin", ttl)
}

func TestIssueAndValidate(t *testing.T) {
	p := newTestProvider(time.Hour)

	token, sessionID, csrfToken, expiresAt, err := p.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" || sessionID == "" || csrfToken == "" {
		t.Fatal("Issue returned empty token, session id, or csrf token")
	}
	if time.Until(expiresAt) > time.Hour || time.Until(expiresAt) < 59*time.Minute {
		t.Errorf("expiresAt = %v, want ~1h from now", expiresAt)
	}

	userID, gotSession, gotCSRF, err := p.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("userID = %q, want %q", userID, "user-1")
	}
	if gotSession != sessionID {
		t.Errorf("sessionID = %q, want %q", gotSession, sessionID)
	}
	if gotCSRF != csrfToken {
		t.Errorf("csrfToken = %q, want %q", gotCSRF, csrfToken)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	p := newTestProvider(time.Hour)
	token, _, _, _, err := p.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewSessionProvider([]byte("ffffffffffffffffffffffffffffffff"), "console", "console-admin", time.Hour)
	if _, _, _, err := other.Validate(token); err == nil {
		t.Error("Validate should reject token signed with a different secret")
	}
}

func TestValidate_Expired(t *testing.T) {
	p := newTestProvider(-time.Minute)
	token, _, _, _, err := p.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, _, _, err := p.Validate(token); err == nil {
		t.Error("Validate should reject expired token")
	}
}

func TestValidate_WrongIssuer(t *testing.T) {
	p := newTestProvider(time.Hour)
	token, _, _, _, err := p.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewSessionProvider([]byte("0123456789abcdef0123456789abcdef"), "someone-else", "console-admin", time.Hour)
	if _, _, _, err := other.Validate(token); err == nil {
		t.Error("Validate should reject token with wrong issuer")
	}
}

func TestValidate_Garbage(t *testing.T) {
	p := newTestProvider(time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, _, _, err := p.Validate(tok); err == nil {
			t.Errorf("Validate(%q) should fail", tok)
		}
	}
}

func TestHasher_HashAndCompare(t *testing.T) {
	h := NewHasher(4) // min cost keeps the test fast
	hash, err := h.Hash([]byte("swordfish"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := h.Compare(hash, []byte("swordfish")); err != nil {
		t.Errorf("Compare with correct password: %v", err)
	}
	if err := h.Compare(hash, []byte("wrong")); err == nil {
		t.Error("Compare should fail for wrong password")
	}
}

func TestNewHasher_ClampsCost(t *testing.T) {
	if h := NewHasher(0); h.Cost <= 0 {
		t.Errorf("Cost = %d, want positive default", h.Cost)
	}
	if h := NewHasher(100); h.Cost > 31 {
		t.Errorf("Cost = %d, want clamped to max", h.Cost)
	}
}
