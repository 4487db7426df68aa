package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a session token is malformed, expired, or
// signed with the wrong key.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims holds JWT claims for the session cookie.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id"`
	CSRFToken string `json:"csrf_token"`
}

// SessionProvider issues and validates session tokens signed with HS256.
// The console both issues and verifies its own cookies, so a shared secret is
// enough; no cross-service verification takes place.
type SessionProvider struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewSessionProvider returns a SessionProvider signing with secret.
// issuer and audience are set on claims and validated on every request.
func NewSessionProvider(secret []byte, issuer, audience string, ttl time.Duration) *SessionProvider {
	return &SessionProvider{secret: secret, issuer: issuer, audience: audience, ttl: ttl}
}

// Issue creates a session token for userID. Returns the signed token, the
// session id, the per-session CSRF token, and the expiry time.
func (p *SessionProvider) Issue(userID string) (token, sessionID, csrfToken string, expiresAt time.Time, err error) {
	sessionID, err = randomHex()
	if err != nil {
		return "", "", "", time.Time{}, err
	}
	csrfToken, err = randomHex()
	if err != nil {
		return "", "", "", time.Time{}, err
	}
	now := time.Now().UTC()
	expiresAt = now.Add(p.ttl)
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   userID,
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SessionID: sessionID,
		CSRFToken: csrfToken,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString(p.secret)
	return token, sessionID, csrfToken, expiresAt, err
}

// Validate parses and validates a session token (signature, exp, iss, aud).
// Returns userID, sessionID, and the CSRF token bound to the session.
func (p *SessionProvider) Validate(tokenString string) (userID, sessionID, csrfToken string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	}, jwt.WithIssuer(p.issuer), jwt.WithAudience(p.audience))
	if err != nil {
		return "", "", "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", "", "", ErrInvalidToken
	}
	return claims.Subject, claims.SessionID, claims.CSRFToken, nil
}

// TTL returns the configured session lifetime.
func (p *SessionProvider) TTL() time.Duration {
	return p.ttl
}

func randomHex() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
