package http

import (
	"net/http"

	"github.com/caffeinepub/task-queue/internal/backend/service"
	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/caffeinepub/task-queue/pkg/httpx"
)

// ProfileHandler serves the signed in account.
type ProfileHandler struct{}

// HandleGet handles GET /v1/profile
//
//	@Summary	Get the signed in profile
//	@Tags		Profile
//	@Produce	json
//	@Success	200	{object}	backendsdk.Profile
//	@Failure	401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Security	BearerAuth
//	@Router		/v1/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	u, err := b.Auth.GetProfile(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfile(u))
}

// HandleUpdate handles PUT /v1/profile
//
//	@Summary		Update the signed in profile
//	@Description	Only names can change. Email, verification and creation time are fixed.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		backendsdk.UpdateProfileRequest	true	"New names"
//	@Success		200		{object}	backendsdk.Profile
//	@Failure		400		{object}	backendsdk.ErrorResponse	"Invalid request body"
//	@Failure		401		{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Security		BearerAuth
//	@Router			/v1/profile [put].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	ctx := r.Context()

	var req backendsdk.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := b.Auth.UpdateNames(ctx, req.FirstName, req.LastName, req.DisplayName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfile(u))
}

// HandleChangePassword handles POST /v1/profile/password
//
//	@Summary	Change password
//	@Tags		Profile
//	@Accept		json
//	@Param		request	body	backendsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success	204
//	@Failure	400	{object}	backendsdk.ErrorResponse	"Missing new password"
//	@Failure	401	{object}	backendsdk.ErrorResponse	"Wrong current password or no session"
//	@Security	BearerAuth
//	@Router		/v1/profile/password [post].
func (h *ProfileHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	ctx := r.Context()

	var req backendsdk.ChangePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.NewPassword == "" {
		backendsdk.ErrInvalidRequest.WithDescription("new password is required").WriteError(w)
		return
	}

	u, err := b.Auth.GetProfile(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	current, err := digestPassword(req.CurrentPassword, u.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	next, err := digestPassword(req.NewPassword, u.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := b.Auth.ChangePassword(ctx, current, next); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /v1/profile
//
//	@Summary		Delete the signed in account
//	@Description	Removes the account and every record it owns, then signs out.
//	@Tags			Profile
//	@Accept			json
//	@Param			request	body	backendsdk.DeleteAccountRequest	true	"Password confirmation"
//	@Success		204
//	@Failure		401	{object}	backendsdk.ErrorResponse	"Wrong password or no session"
//	@Security		BearerAuth
//	@Router			/v1/profile [delete].
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	ctx := r.Context()

	var req backendsdk.DeleteAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := b.Auth.GetProfile(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	hash, err := digestPassword(req.Password, u.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := b.Auth.DeleteAccount(ctx, hash); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCompleteOnboarding handles POST /v1/onboarding/complete
//
//	@Summary	Mark onboarding complete
//	@Tags		Profile
//	@Success	204
//	@Failure	401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Security	BearerAuth
//	@Router		/v1/onboarding/complete [post].
func (h *ProfileHandler) HandleCompleteOnboarding(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	if err := b.Auth.MarkOnboardingComplete(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
