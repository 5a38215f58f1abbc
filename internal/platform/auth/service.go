package auth

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

// codeTTL bounds how long an issued login code stays redeemable.
const codeTTL = 10 * time.Minute

type issuedCode struct {
	code      string
	expiresAt time.Time
}

// Service manages one-time login codes and the session tokens minted when a
// code is redeemed. Everything is held in-process: codes and sessions are
// login affordances, not durable state. Code delivery (the "email") is the
// caller's concern.
type Service struct {
	mu       sync.Mutex
	codes    map[string]issuedCode
	sessions map[string]string // token -> email
	now      func() time.Time
}

// NewService creates an empty code/session registry.
func NewService() *Service {
	return &Service{
		codes:    make(map[string]issuedCode),
		sessions: make(map[string]string),
		now:      time.Now,
	}
}

// IssueCode generates a 4-digit one-time code for the given email,
// replacing any previously issued code for the same address.
func (s *Service) IssueCode(email string) string {
	code := fmt.Sprintf("%04d", 1000+rand.IntN(9000))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = issuedCode{code: code, expiresAt: s.now().Add(codeTTL)}
	return code
}

// VerifyCode redeems a code. On success the code is invalidated and an
// opaque session token bound to the email is returned.
func (s *Service) VerifyCode(email, code string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issued, ok := s.codes[email]
	if !ok || issued.code != code || s.now().After(issued.expiresAt) {
		return "", false
	}
	delete(s.codes, email)

	token := uuid.NewString()
	s.sessions[token] = email
	return token, true
}

// EmailForToken resolves a session token to its email.
func (s *Service) EmailForToken(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.sessions[token]
	return email, ok
}

// Revoke ends the session for the given token. Revoking an unknown token
// is a no-op.
func (s *Service) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
