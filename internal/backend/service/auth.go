package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/caffeinepub/task-queue/pkg/cryptox"
	"github.com/caffeinepub/task-queue/pkg/slogx"
)

// TenantCollection is a per-tenant record map that account deletion must
// purge.
type TenantCollection interface {
	Key() string
	Delete(ctx context.Context, tenant string) error
}

type RegisterParams struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	DisplayName  string
}

type AuthService struct {
	Identity *store.IdentityStore
	Gate     *SessionGate

	// Collections are purged for the tenant on DeleteAccount and again when
	// the email registers.
	Collections []TenantCollection

	Now func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CheckEmailExists reports whether email is registered, ignoring case and
// surrounding space.
func (s *AuthService) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	return s.Identity.Exists(ctx, email)
}

// Register creates an unverified account and signs it in.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) error {
	log := slogx.FromContext(ctx)

	tenant := domain.TenantKey(p.Email)
	if tenant == "" || !strings.Contains(tenant, "@") {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if p.PasswordHash == "" {
		return fmt.Errorf("%w: password hash is required", ErrInvalidInput)
	}

	err := s.Identity.Create(ctx, domain.UserRecord{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		DisplayName:  p.DisplayName,
		Email:        tenant,
		PasswordHash: p.PasswordHash,
		CreatedAt:    s.now().UnixMilli(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return ErrEmailAlreadyExists
	}
	if err != nil {
		return err
	}

	if err := s.purge(ctx, tenant); err != nil {
		log.Warn("stale records left for new account", slog.String("email", tenant), slog.Any("error", err))
	}

	if err := s.Identity.SetSession(ctx, tenant); err != nil {
		return err
	}

	log.Info("account registered", slog.String("email", tenant))
	return nil
}

// Login signs in tenant when passwordHash matches. Unknown accounts and wrong
// hashes fail identically. Unverified accounts still get a session so they
// can complete verification.
func (s *AuthService) Login(ctx context.Context, email, passwordHash string) error {
	log := slogx.FromContext(ctx)
	tenant := domain.TenantKey(email)

	u, err := s.Identity.Find(ctx, tenant)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("login for unknown account", slog.String("email", tenant))
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if !hashEqual(u.PasswordHash, passwordHash) {
		log.Warn("login with wrong password", slog.String("email", tenant))
		return ErrInvalidCredentials
	}

	return s.Identity.SetSession(ctx, tenant)
}

// Logout clears the session. Logging out twice is fine.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.Identity.ClearSession(ctx)
}

// GetProfile returns the signed in account.
func (s *AuthService) GetProfile(ctx context.Context) (domain.UserRecord, error) {
	tenant, err := s.Gate.RequireSession(ctx)
	if err != nil {
		return domain.UserRecord{}, err
	}
	return s.Identity.Find(ctx, tenant)
}

// UpdateProfile overwrites the signed in account with rec. Identity fields
// (email, creation time, verification state) must match the stored record
// and onboarding can not be un-completed.
func (s *AuthService) UpdateProfile(ctx context.Context, rec domain.UserRecord) error {
	tenant, err := s.Gate.RequireSession(ctx)
	if err != nil {
		return err
	}

	return s.Identity.Modify(ctx, tenant, func(cur *domain.UserRecord) error {
		switch {
		case domain.TenantKey(rec.Email) != cur.Email:
			return fmt.Errorf("%w: email can not change", ErrInvalidProfile)
		case rec.CreatedAt != cur.CreatedAt:
			return fmt.Errorf("%w: createdAt can not change", ErrInvalidProfile)
		case rec.IsVerified != cur.IsVerified:
			return fmt.Errorf("%w: verification state can not change", ErrInvalidProfile)
		case cur.HasCompletedOnboarding && !rec.HasCompletedOnboarding:
			return fmt.Errorf("%w: onboarding can not be reset", ErrInvalidProfile)
		case rec.PasswordHash == "":
			return fmt.Errorf("%w: password hash is required", ErrInvalidProfile)
		}

		rec.Email = cur.Email
		*cur = rec
		return nil
	})
}

// UpdateNames patches the name fields of the signed in account and returns
// the stored record. Other fields are left as they are at write time.
func (s *AuthService) UpdateNames(ctx context.Context, first, last, display string) (domain.UserRecord, error) {
	tenant, err := s.Gate.RequireSession(ctx)
	if err != nil {
		return domain.UserRecord{}, err
	}

	var out domain.UserRecord
	err = s.Identity.Modify(ctx, tenant, func(u *domain.UserRecord) error {
		u.FirstName = first
		u.LastName = last
		u.DisplayName = display
		out = *u
		return nil
	})
	if err != nil {
		return domain.UserRecord{}, err
	}
	return out, nil
}

// ChangePassword replaces the password hash after re-checking the current
// one.
func (s *AuthService) ChangePassword(ctx context.Context, currentHash, newHash string) error {
	tenant, err := s.Gate.RequireSession(ctx)
	if err != nil {
		return err
	}
	if newHash == "" {
		return fmt.Errorf("%w: new password hash is required", ErrInvalidInput)
	}

	return s.Identity.Modify(ctx, tenant, func(u *domain.UserRecord) error {
		if !hashEqual(u.PasswordHash, currentHash) {
			return ErrInvalidCredentials
		}
		u.PasswordHash = newHash
		return nil
	})
}

// IssueVerificationCode stores a caller supplied code, replacing any
// previous one.
func (s *AuthService) IssueVerificationCode(ctx context.Context, code string) error {
	tenant, err := s.Gate.RequireSession(ctx)
	if err != nil {
		return err
	}
	return s.Identity.Modify(ctx, tenant, func(u *domain.UserRecord) error {
		u.VerificationCode = code
		return nil
	})
}

// GenerateVerificationCode mints and stores a fresh 6-digit code and returns
// it. Delivery is simulated by a log line.
func (s *AuthService) GenerateVerificationCode(ctx context.Context) (string, error) {
	log := slogx.FromContext(ctx)

	tenant, err := s.Gate.RequireSession(ctx)
	if err != nil {
		return "", err
	}

	code, err := cryptox.GenerateVerificationCode(tenant)
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}

	if err := s.Identity.Modify(ctx, tenant, func(u *domain.UserRecord) error {
		u.VerificationCode = code
		return nil
	}); err != nil {
		return "", err
	}

	log.Info("verification email simulated", slog.String("email", tenant))
	log.Debug("verification code issued", slog.String("email", tenant), slog.String("code", code))
	return code, nil
}

// MarkVerified flags the signed in account verified without checking a
// code. Verification never reverts.
func (s *AuthService) MarkVerified(ctx context.Context) error {
	tenant, err := s.Gate.RequireSession(ctx)
	if err != nil {
		return err
	}
	return s.Identity.Modify(ctx, tenant, func(u *domain.UserRecord) error {
		u.IsVerified = true
		return nil
	})
}

// ConfirmVerification marks the account verified when code matches the
// stored one. The stored code is single use.
func (s *AuthService) ConfirmVerification(ctx context.Context, code string) error {
	tenant, err := s.Gate.RequireSession(ctx)
	if err != nil {
		return err
	}
	return s.Identity.Modify(ctx, tenant, func(u *domain.UserRecord) error {
		if u.VerificationCode == "" || !hashEqual(u.VerificationCode, code) {
			return ErrInvalidVerificationCode
		}
		u.IsVerified = true
		u.VerificationCode = ""
		return nil
	})
}

// MarkOnboardingComplete sets the one-way onboarding flag.
func (s *AuthService) MarkOnboardingComplete(ctx context.Context) error {
	tenant, err := s.Gate.RequireSession(ctx)
	if err != nil {
		return err
	}
	return s.Identity.Modify(ctx, tenant, func(u *domain.UserRecord) error {
		u.HasCompletedOnboarding = true
		return nil
	})
}

// DeleteAccount removes the signed in account, signs out and then purges
// every collection entry the tenant owns. The user record goes first so a
// failed purge never leaves a live account with partial data; leftovers are
// cleared again when the email registers next.
func (s *AuthService) DeleteAccount(ctx context.Context, passwordHash string) error {
	log := slogx.FromContext(ctx)

	tenant, err := s.Gate.RequireSession(ctx)
	if err != nil {
		return err
	}

	u, err := s.Identity.Find(ctx, tenant)
	if err != nil {
		return err
	}
	if !hashEqual(u.PasswordHash, passwordHash) {
		return ErrInvalidCredentials
	}

	if err := s.Identity.Delete(ctx, tenant); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if err := s.Identity.ClearSession(ctx); err != nil {
		return err
	}
	if err := s.purge(ctx, tenant); err != nil {
		return err
	}

	log.Info("account deleted", slog.String("email", tenant))
	return nil
}

// purge drops tenant from every collection, attempting all of them.
func (s *AuthService) purge(ctx context.Context, tenant string) error {
	var errs []error
	for _, c := range s.Collections {
		if err := c.Delete(ctx, tenant); err != nil {
			errs = append(errs, fmt.Errorf("purge %s: %w", c.Key(), err))
		}
	}
	return errors.Join(errs...)
}

func hashEqual(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
