package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/caffeinepub/task-queue/pkg/idx"
	"github.com/caffeinepub/task-queue/pkg/jwtx"
	"github.com/caffeinepub/task-queue/pkg/slogx"
)

// SystemNamespace holds server-owned keys such as the signing key. Backend
// only accepts ULID origin ids, so no origin can reach it.
const SystemNamespace = "system/"

// Origin is a freshly minted client origin.
type Origin struct {
	ID        string
	Token     string
	ExpiresAt time.Time
}

// OriginService mints origin tokens and hands out the Backend scoped to an
// origin. Every origin sees its own users, session and collections.
type OriginService struct {
	Root      *store.Store
	KeyPrefix string
	Signer    jwtx.Signer
	Issuer    string
	TokenTTL  time.Duration
	Options   Options
}

// Mint creates a new origin and signs a token for it.
func (s *OriginService) Mint(ctx context.Context, label string) (Origin, error) {
	log := slogx.FromContext(ctx)

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultOriginTokenTTL
	}

	id := idx.New().String()
	now := time.Now()
	claims := jwtx.NewOriginClaims(id, label, ttl, s.Issuer, nil, now)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Origin{}, fmt.Errorf("sign origin token: %w", err)
	}

	log.Info("origin minted",
		slog.String("origin_id", id),
		slog.String("label", label),
	)

	return Origin{ID: id, Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Backend returns the services scoped to originID. Anything but a ULID is
// rejected with ErrInvalidOrigin.
func (s *OriginService) Backend(originID string) (*Backend, error) {
	id, err := idx.Parse(originID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrigin, originID)
	}
	return NewBackend(s.Root.Namespace(id.String()+"/").Namespace(s.KeyPrefix), s.Options), nil
}
