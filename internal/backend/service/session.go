package service

import (
	"context"

	"github.com/caffeinepub/task-queue/internal/backend/store"
)

// SessionGate resolves the tenant behind the current session.
type SessionGate struct {
	Identity *store.IdentityStore

	// RequireVerified makes RequireVerifiedSession reject tenants that have
	// not confirmed their email.
	RequireVerified bool
}

// RequireSession returns the tenant key the session points at, or
// ErrNoSession.
func (g *SessionGate) RequireSession(ctx context.Context) (string, error) {
	tenant, ok, err := g.Identity.CurrentSession(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoSession
	}
	return tenant, nil
}

// RequireVerifiedSession is RequireSession plus the verification policy.
// Tenant data collections go through this gate. A session naming a missing
// account reports ErrNotFound.
func (g *SessionGate) RequireVerifiedSession(ctx context.Context) (string, error) {
	tenant, err := g.RequireSession(ctx)
	if err != nil || !g.RequireVerified {
		return tenant, err
	}

	u, err := g.Identity.Find(ctx, tenant)
	if err != nil {
		return "", err
	}
	if !u.IsVerified {
		return "", ErrUnverified
	}
	return tenant, nil
}
