package service

import (
	"testing"

	"github.com/tabwave/memberpay/internal/members/domain"
	"github.com/stretchr/testify/require"
)

func validRequest() domain.RegistrationRequest {
	return domain.RegistrationRequest{
		Email:           "j@j.com",
		Name:            "test user",
		Password:        "1234",
		PasswordConfirm: "1234",
		CardToken:       "tok_visa",
		CardLast4:       "3333",
	}
}

func TestValidateRegistrationAcceptsValidInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, ValidateRegistration(validRequest()))
}

func TestValidateRegistrationRequiredFields(t *testing.T) {
	t.Parallel()

	fe := ValidateRegistration(domain.RegistrationRequest{})
	for _, field := range []string{
		FieldEmail, FieldName, FieldPassword, FieldPasswordConfirm, FieldCardToken, FieldCardLast4,
	} {
		require.Equal(t, []string{"This field is required."}, fe[field], "field %s", field)
	}
}

func TestValidateRegistrationPasswordMismatch(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Password = "234"
	req.PasswordConfirm = "1234"

	fe := ValidateRegistration(req)
	require.Equal(t, FieldErrors{
		FieldPasswordConfirm: {"Passwords do not match"},
	}, fe)
}

func TestValidateRegistrationPasswordComparisonIsExact(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.PasswordConfirm = "1234 "

	fe := ValidateRegistration(req)
	require.Equal(t, []string{"Passwords do not match"}, fe[FieldPasswordConfirm])
}

func TestValidateRegistrationLast4Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		last4 string
		want  string
	}{
		{"123", "Ensure this value has at least 4 characters (it has 3)."},
		{"12345", "Ensure this value has at most 4 characters (it has 5)."},
	}

	for _, tc := range tests {
		req := validRequest()
		req.CardLast4 = tc.last4

		fe := ValidateRegistration(req)
		require.Equal(t, []string{tc.want}, fe[FieldCardLast4], "last4 %q", tc.last4)
	}
}

func TestValidateRegistrationEmailSyntax(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.Email = "not-an-email"

	fe := ValidateRegistration(req)
	require.Equal(t, []string{"Enter a valid email address."}, fe[FieldEmail])
}

func TestValidateRegistrationCollectsAllErrors(t *testing.T) {
	t.Parallel()

	req := domain.RegistrationRequest{
		Email:           "j@j.com",
		Password:        "234",
		PasswordConfirm: "1234",
		CardToken:       "tok_visa",
		CardLast4:       "33",
	}

	fe := ValidateRegistration(req)
	require.Len(t, fe, 3)
	require.Contains(t, fe, FieldName)
	require.Contains(t, fe, FieldPasswordConfirm)
	require.Contains(t, fe, FieldCardLast4)
}
