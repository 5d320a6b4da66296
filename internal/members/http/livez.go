package http

import (
	"net/http"
	"time"

	"github.com/tabwave/memberpay/pkg/httpx"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// LivezHandler godoc
//
//	@Summary		Liveness Endpoint
//	@Description	Reports whether the process is running
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	healthResponse	"status, version, uptime"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, buildVersion string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Version: buildVersion,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
		})
	})
}
