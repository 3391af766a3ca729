package http

import (
	"errors"
	"net/http"

	"github.com/caffeinepub/task-queue/internal/backend/service"
	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/caffeinepub/task-queue/pkg/httpx"
	"github.com/caffeinepub/task-queue/pkg/slogx"
)

// writeServiceError maps a service error onto its API error. Anything
// unexpected is logged and reported as a server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *backendsdk.APIError

	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		apiErr = backendsdk.ErrEmailExists
	case errors.Is(err, service.ErrInvalidCredentials):
		apiErr = backendsdk.ErrInvalidCredentials
	case errors.Is(err, service.ErrNoSession):
		apiErr = backendsdk.ErrNoSession
	case errors.Is(err, service.ErrUnverified):
		apiErr = backendsdk.ErrUnverified
	case errors.Is(err, service.ErrInvalidVerificationCode):
		apiErr = backendsdk.ErrInvalidVerificationCode
	case errors.Is(err, service.ErrInvalidProfile):
		apiErr = backendsdk.ErrInvalidProfile.WithDescription(err.Error())
	case errors.Is(err, service.ErrInvalidPeriod):
		apiErr = backendsdk.ErrInvalidPeriod
	case errors.Is(err, service.ErrBuiltinCategory):
		apiErr = backendsdk.ErrBuiltinCategory
	case errors.Is(err, service.ErrNotFound):
		apiErr = backendsdk.ErrNotFound
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, httpx.ErrBadBody):
		apiErr = backendsdk.ErrInvalidRequest.WithDescription(err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
		apiErr = backendsdk.ErrServerError
	}

	apiErr.WriteError(w)
}

// decodeBody decodes the JSON body into dst, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		backendsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return false
	}
	return true
}
