package http

import (
	"net/http"
	"strings"

	"github.com/caffeinepub/task-queue/internal/backend/service"
	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/caffeinepub/task-queue/pkg/httpx"
)

// VerificationHandler serves email verification for the signed in account.
type VerificationHandler struct {
	DevMode bool
}

// HandleGenerate handles POST /v1/verification/code
//
//	@Summary		Send a verification code
//	@Description	Generates a 6-digit code and delivers it out of band. The code is only echoed back in dev mode.
//	@Tags			Verification
//	@Produce		json
//	@Success		200	{object}	backendsdk.VerificationCodeResponse
//	@Failure		401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Security		BearerAuth
//	@Router			/v1/verification/code [post].
func (h *VerificationHandler) HandleGenerate(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	code, err := b.Auth.GenerateVerificationCode(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var resp backendsdk.VerificationCodeResponse
	if h.DevMode {
		resp.Code = code
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleIssue handles PUT /v1/verification/code
//
//	@Summary		Store a client generated verification code
//	@Description	Only available when the server trusts client verification.
//	@Tags			Verification
//	@Accept			json
//	@Param			request	body	backendsdk.VerificationCodeRequest	true	"Code"
//	@Success		204
//	@Failure		400	{object}	backendsdk.ErrorResponse	"Missing code"
//	@Failure		401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Security		BearerAuth
//	@Router			/v1/verification/code [put].
func (h *VerificationHandler) HandleIssue(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.VerificationCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		backendsdk.ErrInvalidRequest.WithDescription("code is required").WriteError(w)
		return
	}

	if err := b.Auth.IssueVerificationCode(r.Context(), req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMark handles POST /v1/verification/mark
//
//	@Summary		Mark the account verified
//	@Description	Only available when the server trusts client verification.
//	@Tags			Verification
//	@Success		204
//	@Failure		401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Security		BearerAuth
//	@Router			/v1/verification/mark [post].
func (h *VerificationHandler) HandleMark(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	if err := b.Auth.MarkVerified(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleConfirm handles POST /v1/verification/confirm
//
//	@Summary	Confirm a verification code
//	@Tags		Verification
//	@Accept		json
//	@Param		request	body	backendsdk.VerificationCodeRequest	true	"Code"
//	@Success	204
//	@Failure	400	{object}	backendsdk.ErrorResponse	"Wrong or expired code"
//	@Failure	401	{object}	backendsdk.ErrorResponse	"No session or invalid origin token"
//	@Security	BearerAuth
//	@Router		/v1/verification/confirm [post].
func (h *VerificationHandler) HandleConfirm(w http.ResponseWriter, r *http.Request, b *service.Backend) {
	var req backendsdk.VerificationCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := b.Auth.ConfirmVerification(r.Context(), strings.TrimSpace(req.Code)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
