package cryptox

import (
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// VerificationCodeDigits is the length of an email verification code.
const VerificationCodeDigits = 6

// GenerateVerificationCode returns a fresh numeric code for account
// verification. Each call draws a new random TOTP secret, so codes are
// independent of one another and of the clock.
func GenerateVerificationCode(accountName string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "task-queue",
		AccountName: accountName,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("cryptox: generate verification secret: %w", err)
	}

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	if err != nil {
		return "", fmt.Errorf("cryptox: generate verification code: %w", err)
	}
	return code, nil
}
