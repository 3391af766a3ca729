package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/caffeinepub/task-queue/internal/backend/service"
	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/caffeinepub/task-queue/pkg/httpx"
	"github.com/caffeinepub/task-queue/pkg/slogx"
)

const maxLabelLength = 128

type OriginHandler struct {
	Origins *service.OriginService
}

// HandleMint handles POST /v1/origins
//
//	@Summary		Mint an origin
//	@Description	Creates a fresh, empty origin and returns the bearer token that scopes every other call to it.
//	@Description	The body is optional.
//	@Tags			Origins
//	@Accept			json
//	@Produce		json
//	@Param			request	body		backendsdk.MintOriginRequest	false	"Optional client label"
//	@Success		201		{object}	backendsdk.OriginResponse		"Origin token"
//	@Failure		400		{object}	backendsdk.ErrorResponse		"Invalid request body"
//	@Failure		429		{object}	backendsdk.ErrorResponse		"Rate limit exceeded"
//	@Failure		500		{object}	backendsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/origins [post].
func (h *OriginHandler) HandleMint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req backendsdk.MintOriginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		backendsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	label := strings.TrimSpace(req.Label)
	if len(label) > maxLabelLength {
		backendsdk.ErrInvalidRequest.WithDescription("label is too long").WriteError(w)
		return
	}

	origin, err := h.Origins.Mint(ctx, label)
	if err != nil {
		log.Error("failed to mint origin", "err", err)
		backendsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, backendsdk.OriginResponse{
		OriginID:  origin.ID,
		Token:     origin.Token,
		TokenType: "Bearer",
		ExpiresAt: origin.ExpiresAt.Unix(),
	})
}
