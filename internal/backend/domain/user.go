package domain

import (
	"strings"
	"time"
)

// UserRecord is the stored account. JSON keys match the browser layout.
type UserRecord struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	DisplayName            string `json:"displayName"`
	Email                  string `json:"email"`        // tenant key, immutable
	PasswordHash           string `json:"passwordHash"` // opaque
	IsVerified             bool   `json:"isVerified"`
	VerificationCode       string `json:"verificationCode"`
	HasCompletedOnboarding bool   `json:"hasCompletedOnboarding"`
	CreatedAt              int64  `json:"createdAt"` // epoch ms
}

// CreatedAtNanos reports CreatedAt in nanoseconds, the unit used at the API
// boundary.
func (u UserRecord) CreatedAtNanos() int64 { return u.CreatedAt * int64(time.Millisecond) }

// TenantKey normalises an email into the key every per-user record is
// stored under.
func TenantKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
