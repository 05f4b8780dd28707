// Package session owns the lifetime of the Monarch Money session. A
// manager logs in lazily on first use, installs the session on the
// transport, and collapses concurrent login attempts into a single
// upstream request.
package session

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/monarch-agent/monarch-mcp/internal/types"
)

// Authenticator performs the actual login flow.
type Authenticator interface {
	Login(ctx context.Context, creds types.Credentials) (*types.Session, error)
}

// Target receives the session once a login succeeds.
type Target interface {
	SetSession(session *types.Session)
}

// Manager hands out a valid session, logging in on demand.
type Manager struct {
	auth   Authenticator
	target Target
	creds  types.Credentials
	logger types.Logger

	mu      sync.RWMutex
	session *types.Session

	group singleflight.Group
	now   func() time.Time
}

// NewManager creates a session manager. Credentials are validated at
// config load time, not here.
func NewManager(auth Authenticator, target Target, creds types.Credentials, logger types.Logger) *Manager {
	return &Manager{
		auth:   auth,
		target: target,
		creds:  creds,
		logger: logger,
		now:    time.Now,
	}
}

// Ensure guarantees an authenticated session is installed on the
// target, performing a login if none is held or the held one has
// expired. Concurrent callers share a single login attempt; every
// caller sees the same result. Failed logins are not retried here.
func (m *Manager) Ensure(ctx context.Context) error {
	if m.current() != nil {
		return nil
	}

	_, err, _ := m.group.Do("login", func() (interface{}, error) {
		// A racing caller may have completed the login already.
		if s := m.current(); s != nil {
			return s, nil
		}

		if m.logger != nil {
			m.logger.Info("logging in to Monarch Money", "email", m.creds.Email)
		}

		session, err := m.auth.Login(ctx, m.creds)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.session = session
		m.mu.Unlock()

		m.target.SetSession(session)

		return session, nil
	})

	return err
}

// Invalidate drops the held session. The next Ensure call logs in
// again. Call this when the API rejects the session as unauthenticated.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.Debug("session invalidated")
	}
}

// current returns the held session if it is still usable.
func (m *Manager) current() *types.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return nil
	}
	if !m.session.ExpiresAt.IsZero() && m.now().After(m.session.ExpiresAt) {
		return nil
	}
	return m.session
}
