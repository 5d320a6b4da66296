package http

import (
	"net/http"

	"github.com/tabwave/memberpay/internal/members/domain"
	"github.com/tabwave/memberpay/internal/members/service"
	"github.com/tabwave/memberpay/internal/members/session"
	"github.com/tabwave/memberpay/pkg/httpx"
	"github.com/tabwave/memberpay/pkg/slogx"
)

type RegisterHandler struct {
	RegisterService *service.RegisterService
	Sessions        *session.Manager
}

// UserResponse is the JSON shape for a member account.
type UserResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CardLast4 string `json:"card_last4,omitempty"`
}

// FormState echoes the submitted (non-secret) fields so the client can
// re-render the form with prior input retained.
type FormState struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	CardLast4 string `json:"last_4_digits"`
}

// RegisterErrorResponse reports a rejected registration with per-field
// messages and the submitted form state.
type RegisterErrorResponse struct {
	Error       string              `json:"error"`
	FieldErrors map[string][]string `json:"field_errors"`
	Form        FormState           `json:"form"`
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new member account. The card token is enrolled with the payment processor first; the account row is only written once enrollment succeeds, and duplicate emails are rejected atomically.
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email			formData	string					true	"Email address (unique)"
//	@Param			name			formData	string					true	"Display name"
//	@Param			password		formData	string					true	"Password"
//	@Param			ver_password	formData	string					true	"Password confirmation"
//	@Param			card_token		formData	string					true	"Payment processor card token"
//	@Param			last_4_digits	formData	string					true	"Last 4 card digits (display only)"
//	@Success		201				{object}	UserResponse			"user_id, email, name"
//	@Failure		422				{object}	RegisterErrorResponse	"error, field_errors, form"
//	@Failure		409				{object}	RegisterErrorResponse	"error, field_errors, form"
//	@Failure		502				{object}	httpx.ErrorResponse		"error, error_description"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid form data",
		})
		return
	}

	req := domain.RegistrationRequest{
		Email:           r.FormValue(service.FieldEmail),
		Name:            r.FormValue(service.FieldName),
		Password:        r.FormValue(service.FieldPassword),
		PasswordConfirm: r.FormValue(service.FieldPasswordConfirm),
		CardToken:       r.FormValue(service.FieldCardToken),
		CardLast4:       r.FormValue(service.FieldCardLast4),
	}
	form := FormState{Email: req.Email, Name: req.Name, CardLast4: req.CardLast4}

	sess := h.Sessions.FromRequest(r)
	outcome := h.RegisterService.Register(ctx, sess, req)

	switch outcome.Status {
	case service.StatusInvalid:
		httpx.WriteJSON(w, http.StatusUnprocessableEntity, RegisterErrorResponse{
			Error:       "invalid_request",
			FieldErrors: outcome.FieldErrors,
			Form:        form,
		})

	case service.StatusAlreadyRegistered:
		// One specific message on the email field, form state preserved.
		httpx.WriteJSON(w, http.StatusConflict, RegisterErrorResponse{
			Error: "already_registered",
			FieldErrors: map[string][]string{
				service.FieldEmail: {outcome.Email + " is already a member"},
			},
			Form: form,
		})

	case service.StatusGatewayFailure:
		httpx.WriteJSON(w, http.StatusBadGateway, httpx.ErrorResponse{
			Error:            "payment_failed",
			ErrorDescription: "could not process payment",
		})

	case service.StatusSuccess:
		if err := h.Sessions.Save(w, sess); err != nil {
			log.Error("failed to write session cookie", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to establish session",
			})
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, UserResponse{
			UserID:    outcome.User.ID,
			Email:     outcome.User.Email,
			Name:      outcome.User.Name,
			CardLast4: outcome.User.CardLast4,
		})
	}
}
