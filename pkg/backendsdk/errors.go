package backendsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/caffeinepub/task-queue/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest          = "invalid_request"
	ErrorCodeInvalidToken            = "invalid_token"
	ErrorCodeEmailExists             = "email_exists"
	ErrorCodeInvalidCredentials      = "invalid_credentials"
	ErrorCodeNoSession               = "no_session"
	ErrorCodeUnverified              = "unverified"
	ErrorCodeInvalidVerificationCode = "invalid_verification_code"
	ErrorCodeInvalidProfile          = "invalid_profile"
	ErrorCodeInvalidPeriod           = "invalid_period"
	ErrorCodeBuiltinCategory         = "builtin_category"
	ErrorCodeNotFound                = "not_found"
	ErrorCodeRateLimited             = "rate_limit_exceeded"
	ErrorCodeServerError             = "server_error"
)

// APIError is a non-2xx response. The server writes it and the client
// returns it.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes the error as a JSON ErrorResponse with its status code.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

// WithDescription returns a copy of e with a different description.
func (e *APIError) WithDescription(desc string) *APIError {
	c := *e
	c.Description = desc
	return &c
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "The request is missing a required parameter or is otherwise malformed",
	}

	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "The origin token is missing, expired or invalid",
	}

	ErrEmailExists = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeEmailExists,
		Description: "An account with this email already exists",
	}

	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "Invalid email or password",
	}

	ErrNoSession = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeNoSession,
		Description: "Nobody is signed in",
	}

	ErrUnverified = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeUnverified,
		Description: "The account email has not been verified",
	}

	ErrInvalidVerificationCode = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidVerificationCode,
		Description: "The verification code does not match",
	}

	ErrInvalidProfile = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidProfile,
		Description: "The profile update is not allowed",
	}

	ErrInvalidPeriod = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidPeriod,
		Description: "Period must be all_time, month or week",
	}

	ErrBuiltinCategory = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeBuiltinCategory,
		Description: "Built-in categories cannot be removed",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "The requested record does not exist",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "The server encountered an unexpected condition",
	}
)

// IsCode reports whether err is an *APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// parseErrorResponse turns an error body into an *APIError, falling back to
// the status text when the body is not ours (e.g. a proxy error page).
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
