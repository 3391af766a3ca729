package http

import (
	"net/http"
	"strings"

	"github.com/caffeinepub/task-queue/internal/backend/domain"
	"github.com/caffeinepub/task-queue/internal/backend/service"
	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/caffeinepub/task-queue/pkg/cryptox"
	"github.com/caffeinepub/task-queue/pkg/httpx"
)

// digestPassword turns a plaintext password into the opaque hash the
// services store and compare. The salt is bound to the account email.
func digestPassword(password, email string) (string, error) {
	digest, err := cryptox.DigestPassword(password, domain.TenantKey(email))
	if err != nil {
		return "", err
	}
	if !cryptox.IsDigest(digest) {
		return "", cryptox.ErrInvalidDigest
	}
	return digest, nil
}

// AuthHandler serves registration and sign in for the calling origin.
type AuthHandler struct{}

// HandleEmailExists handles GET /v1/auth/email-exists
//
//	@Summary		Check whether an email is registered
//	@Tags			Auth
//	@Produce		json
//	@Param			email	query		string							true	"Email address"
//	@Success		200		{object}	backendsdk.EmailExistsResponse
//	@Failure		400		{object}	backendsdk.ErrorResponse	"Missing email"
//	@Failure		401		{object}	backendsdk.ErrorResponse	"Invalid origin token"
//	@Security		BearerAuth
//	@Router			/v1/auth/email-exists [get].
func (h *AuthHandler) HandleEmailExists(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		backendsdk.ErrInvalidRequest.WithDescription("email is required").WriteError(w)
		return
	}

	exists, err := b.Auth.CheckEmailExists(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, backendsdk.EmailExistsResponse{Exists: exists})
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register an account
//	@Description	Creates an unverified account and signs it in.
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	backendsdk.RegisterRequest	true	"Account details"
//	@Success		204
//	@Failure		400	{object}	backendsdk.ErrorResponse	"Invalid email or missing password"
//	@Failure		401	{object}	backendsdk.ErrorResponse	"Invalid origin token"
//	@Failure		409	{object}	backendsdk.ErrorResponse	"Email already registered"
//	@Failure		429	{object}	backendsdk.ErrorResponse	"Rate limit exceeded"
//	@Security		BearerAuth
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Password == "" {
		backendsdk.ErrInvalidRequest.WithDescription("password is required").WriteError(w)
		return
	}

	hash, err := digestPassword(req.Password, req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	err = b.Auth.Register(r.Context(), service.RegisterParams{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Sign in
//	@Description	Unknown emails and wrong passwords fail identically.
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	backendsdk.LoginRequest	true	"Credentials"
//	@Success		204
//	@Failure		400	{object}	backendsdk.ErrorResponse	"Invalid request body"
//	@Failure		401	{object}	backendsdk.ErrorResponse	"Invalid credentials or origin token"
//	@Failure		429	{object}	backendsdk.ErrorResponse	"Rate limit exceeded"
//	@Security		BearerAuth
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hash, err := digestPassword(req.Password, req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := b.Auth.Login(r.Context(), req.Email, hash); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleLogout handles POST /v1/auth/logout
//
//	@Summary	Sign out
//	@Tags		Auth
//	@Success	204
//	@Failure	401	{object}	backendsdk.ErrorResponse	"Invalid origin token"
//	@Security	BearerAuth
//	@Router		/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	if err := b.Auth.Logout(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
