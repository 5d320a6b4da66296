package http

import (
	"errors"
	"net/http"

	"github.com/tabwave/memberpay/internal/members/service"
	"github.com/tabwave/memberpay/internal/members/session"
	"github.com/tabwave/memberpay/pkg/httpx"
	"github.com/tabwave/memberpay/pkg/slogx"
)

type MeHandler struct {
	AuthService *service.AuthService
	Sessions    *session.Manager
}

// ServeHTTP godoc
//
//	@Summary		Current User Endpoint
//	@Description	Resolve the session to the signed-in member's account details
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	UserResponse		"user_id, email, name, card_last4"
//	@Failure		401	{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sess := h.Sessions.FromRequest(r)
	user, err := h.AuthService.CurrentUser(ctx, sess)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorResponse{
				Error:            "not_authenticated",
				ErrorDescription: "Sign in to view account details",
			})
			return
		}
		log.Error("failed to resolve current user", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to load account",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, UserResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CardLast4: user.CardLast4,
	})
}
