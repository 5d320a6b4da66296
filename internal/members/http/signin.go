package http

import (
	"errors"
	"net/http"

	"github.com/tabwave/memberpay/internal/members/service"
	"github.com/tabwave/memberpay/internal/members/session"
	"github.com/tabwave/memberpay/pkg/httpx"
	"github.com/tabwave/memberpay/pkg/slogx"
)

type SignInHandler struct {
	AuthService *service.AuthService
	Sessions    *session.Manager
}

// ServeHTTP godoc
//
//	@Summary		Sign In Endpoint
//	@Description	Authenticate with email and password and establish a session
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email		formData	string				true	"Email address"
//	@Param			password	formData	string				true	"Password"
//	@Success		200			{object}	UserResponse		"user_id, email, name"
//	@Failure		401			{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid form data",
		})
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "email and password are required",
		})
		return
	}

	sess := h.Sessions.FromRequest(r)
	user, err := h.AuthService.SignIn(ctx, sess, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorResponse{
				Error:            "invalid_credentials",
				ErrorDescription: "Email or password is incorrect",
			})
			return
		}
		log.Error("sign-in failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to sign in",
		})
		return
	}

	if err := h.Sessions.Save(w, sess); err != nil {
		log.Error("failed to write session cookie", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to establish session",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, UserResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
}
