package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Configuration for Argon2id hashing.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

// ErrInvalidDigest reports a string that is not a PHC Argon2id digest.
var ErrInvalidDigest = errors.New("cryptox: invalid password digest")

// DigestPassword derives an opaque PHC-format Argon2id digest of password.
//
// The salt is derived from the pepper and subject (the account key), so the
// same password for the same account always yields the same string. Stored
// credentials are compared by exact equality, which needs a stable digest.
func DigestPassword(password, subject string) (string, error) {
	pepper, err := LoadPepper()
	if err != nil {
		return "", fmt.Errorf("cryptox: load pepper: %w", err)
	}

	saltSum := sha256.Sum256([]byte(pepper + "\x00" + subject))
	salt := saltSum[:saltLength]

	hash := argon2.IDKey([]byte(password+pepper), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// IsDigest reports whether s is shaped like a digest produced by
// DigestPassword. It does not check the hash itself.
func IsDigest(s string) bool {
	parts := strings.Split(s, "$")
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return false
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return false
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return false
	}
	if _, err := base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return false
	}
	if _, err := base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return false
	}
	return true
}
