package service

import (
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/tabwave/memberpay/internal/members/domain"
)

// Form field names, shared by the validator and the HTTP layer.
const (
	FieldEmail           = "email"
	FieldName            = "name"
	FieldPassword        = "password"
	FieldPasswordConfirm = "ver_password"
	FieldCardToken       = "card_token"
	FieldCardLast4       = "last_4_digits"
)

const (
	msgRequired         = "This field is required."
	msgPasswordMismatch = "Passwords do not match"
	msgInvalidEmail     = "Enter a valid email address."
)

// FieldErrors maps a form field name to its ordered, human-readable error
// messages. An empty map means the input validated.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// ValidateRegistration checks a registration request and returns all
// field-level errors at once, so the form can be re-rendered with every
// problem annotated. It has no side effects.
func ValidateRegistration(req domain.RegistrationRequest) FieldErrors {
	fe := FieldErrors{}

	required := []struct {
		field string
		value string
	}{
		{FieldEmail, req.Email},
		{FieldName, req.Name},
		{FieldPassword, req.Password},
		{FieldPasswordConfirm, req.PasswordConfirm},
		{FieldCardToken, req.CardToken},
		{FieldCardLast4, req.CardLast4},
	}
	for _, f := range required {
		if f.value == "" {
			fe.Add(f.field, msgRequired)
		}
	}

	// Byte-for-byte comparison; a trailing space is a mismatch.
	if req.Password != "" && req.PasswordConfirm != "" && req.Password != req.PasswordConfirm {
		fe.Add(FieldPasswordConfirm, msgPasswordMismatch)
	}

	if req.CardLast4 != "" {
		if n := utf8.RuneCountInString(req.CardLast4); n < 4 {
			fe.Add(FieldCardLast4,
				fmt.Sprintf("Ensure this value has at least 4 characters (it has %d).", n))
		} else if n > 4 {
			fe.Add(FieldCardLast4,
				fmt.Sprintf("Ensure this value has at most 4 characters (it has %d).", n))
		}
	}

	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			fe.Add(FieldEmail, msgInvalidEmail)
		}
	}

	return fe
}
