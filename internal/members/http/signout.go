package http

import (
	"net/http"

	"github.com/tabwave/memberpay/internal/members/service"
	"github.com/tabwave/memberpay/internal/members/session"
	"github.com/tabwave/memberpay/pkg/httpx"
	"github.com/tabwave/memberpay/pkg/slogx"
)

type SignOutHandler struct {
	AuthService *service.AuthService
	Sessions    *session.Manager
}

// ServeHTTP godoc
//
//	@Summary		Sign Out Endpoint
//	@Description	Clear the caller's session
//	@Tags			Accounts
//	@Produce		json
//	@Success		204	"session cleared"
//	@Router			/v1/signout [post].
func (h *SignOutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	sess := h.Sessions.FromRequest(r)
	h.AuthService.SignOut(sess)

	if err := h.Sessions.Save(w, sess); err != nil {
		log.Error("failed to clear session cookie", "err", err)
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
