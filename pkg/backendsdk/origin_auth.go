package backendsdk

import (
	"context"
	"net/http"
	"net/url"
)

// EmailExists reports whether an account with email is registered in this
// origin.
func (o *Origin) EmailExists(ctx context.Context, email string) (bool, error) {
	resp, err := o.do(ctx, http.MethodGet, "/v1/auth/email-exists?email="+url.QueryEscape(email), nil)
	if err != nil {
		return false, err
	}

	var out EmailExistsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// Register creates an account and signs it in.
func (o *Origin) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := o.do(ctx, http.MethodPost, "/v1/auth/register", req)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Login signs in an existing account.
func (o *Origin) Login(ctx context.Context, email, password string) error {
	resp, err := o.do(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Logout clears the session. It succeeds when nobody is signed in.
func (o *Origin) Logout(ctx context.Context) error {
	resp, err := o.do(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (o *Origin) GetProfile(ctx context.Context) (*Profile, error) {
	resp, err := o.do(ctx, http.MethodGet, "/v1/profile", nil)
	if err != nil {
		return nil, err
	}

	var out Profile
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *Origin) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Profile, error) {
	resp, err := o.do(ctx, http.MethodPut, "/v1/profile", req)
	if err != nil {
		return nil, err
	}

	var out Profile
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *Origin) ChangePassword(ctx context.Context, current, next string) error {
	resp, err := o.do(ctx, http.MethodPost, "/v1/profile/password", ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// DeleteAccount removes the signed in account and all of its data.
func (o *Origin) DeleteAccount(ctx context.Context, password string) error {
	resp, err := o.do(ctx, http.MethodDelete, "/v1/profile", DeleteAccountRequest{Password: password})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RequestVerificationCode asks the server to generate and deliver a code.
// The returned code is empty unless the server runs in dev mode.
func (o *Origin) RequestVerificationCode(ctx context.Context) (string, error) {
	resp, err := o.do(ctx, http.MethodPost, "/v1/verification/code", nil)
	if err != nil {
		return "", err
	}

	var out VerificationCodeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Code, nil
}

// SetVerificationCode stores a client generated code. Servers only accept
// this when configured to trust client verification.
func (o *Origin) SetVerificationCode(ctx context.Context, code string) error {
	resp, err := o.do(ctx, http.MethodPut, "/v1/verification/code", VerificationCodeRequest{Code: code})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// MarkVerified marks the account verified without a code. Same trust
// requirement as SetVerificationCode.
func (o *Origin) MarkVerified(ctx context.Context) error {
	resp, err := o.do(ctx, http.MethodPost, "/v1/verification/mark", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (o *Origin) ConfirmVerification(ctx context.Context, code string) error {
	resp, err := o.do(ctx, http.MethodPost, "/v1/verification/confirm", VerificationCodeRequest{Code: code})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (o *Origin) CompleteOnboarding(ctx context.Context) error {
	resp, err := o.do(ctx, http.MethodPost, "/v1/onboarding/complete", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
