package auth

import (
	"context"
)

// MockVerifier provides fake token verification for tests.
type MockVerifier struct {
	User  *User
	Error error
}

// Verify returns the configured user or error.
func (m *MockVerifier) Verify(_ context.Context, _ string) (*User, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.User, nil
}

// TestUser returns a standard test user.
func TestUser() *User {
	return &User{
		Email:   "test@example.com",
		IsAdmin: false,
	}
}

// TestAdmin returns a standard super-admin test user.
func TestAdmin() *User {
	return &User{
		Email:   "admin@neshama.app",
		IsAdmin: true,
	}
}

// Compile-time interface check
var _ Verifier = (*MockVerifier)(nil)
