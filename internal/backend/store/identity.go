package store

import (
	"context"
	"fmt"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
)

// IdentityStore keeps the user table and the session pointer.
type IdentityStore struct {
	store *Store
	users *RecordMap[domain.UserRecord]
}

func NewIdentityStore(s *Store) *IdentityStore {
	return &IdentityStore{
		store: s,
		users: NewRecordMap[domain.UserRecord](s, KeyUsers),
	}
}

// Exists reports whether an account is registered under email, compared
// case-insensitively.
func (i *IdentityStore) Exists(ctx context.Context, email string) (bool, error) {
	_, ok, err := i.users.Get(ctx, domain.TenantKey(email))
	return ok, err
}

// Create inserts u under its normalised email. The stored Email is
// normalised too.
func (i *IdentityStore) Create(ctx context.Context, u domain.UserRecord) error {
	key := domain.TenantKey(u.Email)
	u.Email = key

	return i.users.Update(ctx, func(all map[string]domain.UserRecord) error {
		if _, ok := all[key]; ok {
			return fmt.Errorf("%w: user %s", ErrAlreadyExists, key)
		}
		all[key] = u
		return nil
	})
}

// Find returns the user stored under tenant.
func (i *IdentityStore) Find(ctx context.Context, tenant string) (domain.UserRecord, error) {
	u, ok, err := i.users.Get(ctx, tenant)
	if err != nil {
		return domain.UserRecord{}, err
	}
	if !ok {
		return domain.UserRecord{}, ErrNotFound
	}
	return u, nil
}

// Update overwrites the record stored under tenant.
func (i *IdentityStore) Update(ctx context.Context, tenant string, u domain.UserRecord) error {
	return i.Modify(ctx, tenant, func(cur *domain.UserRecord) error {
		*cur = u
		return nil
	})
}

// Modify applies fn to the record stored under tenant and writes it back
// while holding the users lock. Nothing is written if fn fails.
func (i *IdentityStore) Modify(ctx context.Context, tenant string, fn func(u *domain.UserRecord) error) error {
	return i.users.Update(ctx, func(all map[string]domain.UserRecord) error {
		u, ok := all[tenant]
		if !ok {
			return ErrNotFound
		}
		if err := fn(&u); err != nil {
			return err
		}
		all[tenant] = u
		return nil
	})
}

// Delete removes the user stored under tenant.
func (i *IdentityStore) Delete(ctx context.Context, tenant string) error {
	return i.users.Update(ctx, func(all map[string]domain.UserRecord) error {
		if _, ok := all[tenant]; !ok {
			return ErrNotFound
		}
		delete(all, tenant)
		return nil
	})
}

// All returns every user keyed by tenant.
func (i *IdentityStore) All(ctx context.Context) (map[string]domain.UserRecord, error) {
	return i.users.ReadAll(ctx)
}

// SetSession points the session at tenant. The pointer is stored as a bare
// string, not JSON.
func (i *IdentityStore) SetSession(ctx context.Context, tenant string) error {
	return i.store.Set(ctx, KeySession, tenant)
}

// ClearSession removes the session pointer. Clearing twice is fine.
func (i *IdentityStore) ClearSession(ctx context.Context) error {
	return i.store.Remove(ctx, KeySession)
}

// CurrentSession returns the tenant the session points at.
func (i *IdentityStore) CurrentSession(ctx context.Context) (string, bool, error) {
	v, ok, err := i.store.Get(ctx, KeySession)
	if err != nil || !ok || v == "" {
		return "", false, err
	}
	return v, true, nil
}
