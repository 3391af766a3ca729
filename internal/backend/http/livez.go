package http

import (
	"net/http"
	"time"

	"github.com/caffeinepub/task-queue/pkg/backendsdk"
	"github.com/caffeinepub/task-queue/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness Check Endpoint
//	@Description	Liveness probe returning uptime and version. Does not touch storage.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	backendsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, backendsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
