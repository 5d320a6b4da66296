package http

import (
	"net/http"
	"time"

	"github.com/tabwave/memberpay/internal/members/store"
	"github.com/tabwave/memberpay/pkg/httpx"
	"github.com/tabwave/memberpay/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Endpoint
//	@Description	Reports whether the service can reach its database
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	healthResponse	"status, version, uptime"
//	@Failure		503	{object}	healthResponse	"status, version, uptime"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, buildVersion string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Status:  "ok",
			Version: buildVersion,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
		}

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Warn("readiness check failed", "err", err)
			resp.Status = "unavailable"
			httpx.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, resp)
	})
}
