package domain

// RegistrationRequest is the ephemeral input to a registration attempt. It is
// never persisted; the plaintext password and card token only live for the
// duration of one orchestration call.
type RegistrationRequest struct {
	Email           string
	Name            string
	Password        string
	PasswordConfirm string
	CardToken       string
	CardLast4       string
}
