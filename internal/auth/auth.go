// Package auth provides the client-side authentication boundary. The
// demo app never talks to a real identity provider; Mock simulates one
// with a small in-memory account list.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by SignIn when the email is unknown
// or the password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is the signed-in identity exposed to the rest of the app.
type User struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
}

// Provider abstracts the identity backend. CurrentUser returns nil when
// nobody is signed in.
type Provider interface {
	CurrentUser() *User
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignOut()
}

type account struct {
	user         User
	passwordHash []byte
}

// Mock is an in-memory Provider with bcrypt-hashed demo accounts. Safe
// for concurrent use.
type Mock struct {
	mu       sync.RWMutex
	accounts map[string]account
	current  *User
}

// NewMock creates a provider with the given demo accounts, keyed by
// email. Passwords are hashed with bcrypt at construction.
func NewMock(credentials map[string]string) (*Mock, error) {
	m := &Mock{accounts: make(map[string]account, len(credentials))}

	for email, password := range credentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", email, err)
		}
		m.accounts[email] = account{
			user: User{
				ID:          uuid.New(),
				Email:       email,
				DisplayName: displayName(email),
			},
			passwordHash: hash,
		}
	}

	return m, nil
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (m *Mock) CurrentUser() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

// SignIn verifies the credentials and records the user as signed in.
// It returns ErrInvalidCredentials without revealing whether the email
// or the password was wrong.
func (m *Mock) SignIn(ctx context.Context, email, password string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	acct, ok := m.accounts[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	u := acct.user
	m.current = &u
	signed := u
	return &signed, nil
}

// SignOut clears the current user. Calling it while signed out is a no-op.
func (m *Mock) SignOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}

// displayName derives a readable name from the local part of the email.
func displayName(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}
