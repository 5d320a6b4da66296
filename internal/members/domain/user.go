package domain

import "time"

// User is a registered member account. A row only exists once billing
// enrollment succeeded, so CustomerID is always non-empty and never changes
// after creation.
type User struct {
	ID           string
	Email        string // unique, case-sensitive exact match
	Name         string
	PasswordHash string // argon2id encoded
	CustomerID   string // payment processor customer id, immutable
	CardLast4    string // display only, not authoritative
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// String identifies the user by email, which is the human-facing handle.
func (u User) String() string { return u.Email }
