// Package session implements server-managed authentication sessions.
// Sessions are opaque tokens mapped to user IDs in a Store; tokens are
// rotated on login to prevent fixation and destroyed on logout.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie that carries the session token.
const CookieName = "quill_session"

// Store persists token-to-user mappings with a TTL.
type Store interface {
	Set(ctx context.Context, token string, userID uint, ttl time.Duration) error
	Get(ctx context.Context, token string) (uint, bool, error)
	Del(ctx context.Context, token string) error
}

// Manager issues, resolves, rotates, and destroys sessions.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager returns a Manager backed by the given store. Sessions expire
// after ttl.
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Establish creates a fresh session for the given user and returns its token.
func (m *Manager) Establish(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	if err := m.store.Set(ctx, token, userID, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user ID bound to token, or ok=false when the token is
// unknown or expired.
func (m *Manager) Resolve(ctx context.Context, token string) (uint, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	return m.store.Get(ctx, token)
}

// Rotate invalidates oldToken and establishes a fresh session for userID.
// Login must call this so a pre-auth token can never become an
// authenticated one (session fixation defense).
func (m *Manager) Rotate(ctx context.Context, oldToken string, userID uint) (string, error) {
	if oldToken != "" {
		if err := m.store.Del(ctx, oldToken); err != nil {
			return "", err
		}
	}
	return m.Establish(ctx, userID)
}

// Destroy removes the session for token. Destroying an unknown token is a no-op.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Del(ctx, token)
}
