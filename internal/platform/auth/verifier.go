package auth

import (
	"context"
	"errors"
	"strings"
)

// User represents an authenticated session.
type User struct {
	Email   string
	IsAdmin bool
}

// Error types for authentication failures.
var (
	// ErrNoToken indicates missing Authorization header.
	ErrNoToken = errors.New("missing authorization header")

	// ErrInvalidToken indicates an unknown or malformed session token.
	ErrInvalidToken = errors.New("invalid token")
)

// Verifier validates tokens and returns user information.
type Verifier interface {
	Verify(ctx context.Context, token string) (*User, error)
}

// SessionVerifier implements Verifier against the in-process session
// registry. Super-admin status is resolved per request through admins so
// that SystemConfig changes take effect without restart.
type SessionVerifier struct {
	sessions *Service
	admins   func(ctx context.Context) []string
}

// NewSessionVerifier creates a verifier over the given session service.
// admins supplies the current super-admin email list; nil means no admins.
func NewSessionVerifier(sessions *Service, admins func(ctx context.Context) []string) *SessionVerifier {
	return &SessionVerifier{sessions: sessions, admins: admins}
}

// Verify resolves a session token to its user.
func (v *SessionVerifier) Verify(ctx context.Context, token string) (*User, error) {
	email, ok := v.sessions.EmailForToken(token)
	if !ok {
		return nil, ErrInvalidToken
	}

	isAdmin := false
	if v.admins != nil {
		for _, admin := range v.admins(ctx) {
			if strings.EqualFold(admin, email) {
				isAdmin = true
				break
			}
		}
	}
	return &User{Email: email, IsAdmin: isAdmin}, nil
}

// ExtractBearerToken extracts the token from Authorization header.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

// Compile-time interface check
var _ Verifier = (*SessionVerifier)(nil)
