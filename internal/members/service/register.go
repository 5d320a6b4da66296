package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tabwave/memberpay/internal/members/domain"
	"github.com/tabwave/memberpay/internal/members/payment"
	"github.com/tabwave/memberpay/internal/members/session"
	"github.com/tabwave/memberpay/internal/members/store"
	"github.com/tabwave/memberpay/pkg/cryptox"
	"github.com/tabwave/memberpay/pkg/idx"
	"github.com/tabwave/memberpay/pkg/slogx"
)

// RegistrationStatus identifies how a registration attempt ended.
type RegistrationStatus int

const (
	StatusSuccess RegistrationStatus = iota
	// StatusInvalid: validation failed, nothing external was called.
	StatusInvalid
	// StatusAlreadyRegistered: the email is already taken. Distinct from
	// StatusInvalid so the caller can re-render the submitted form with one
	// extra error instead of the generic field errors.
	StatusAlreadyRegistered
	// StatusGatewayFailure: billing enrollment or the subsequent persistence
	// failed; surfaced to the user as a generic processing failure.
	StatusGatewayFailure
)

// RegistrationOutcome is the result of one registration attempt. Callers
// branch on Status; the other fields are populated per status.
type RegistrationOutcome struct {
	Status      RegistrationStatus
	User        domain.User // StatusSuccess
	FieldErrors FieldErrors // StatusInvalid
	Email       string      // StatusAlreadyRegistered
	Reason      string      // StatusGatewayFailure
}

// RegisterService coordinates validation, billing enrollment, persistence and
// session binding for new accounts.
type RegisterService struct {
	Store   store.Store
	Gateway payment.Gateway
}

// Register runs one registration attempt end to end:
//  1. Validate the input; on failure nothing external is called.
//  2. Hash the password. Done before enrollment so a hashing failure cannot
//     strand a freshly created gateway customer.
//  3. Enroll the card token with the payment gateway.
//  4. Insert the user row, carrying the customer id, in a transaction. The
//     unique index on email decides duplicates; a loss there means another
//     request won the race and this one reports AlreadyRegistered.
//  5. Bind the new user into the caller's session.
//
// Safe to call from arbitrarily many goroutines; the only shared state is
// the database constraint.
func (s *RegisterService) Register(
	ctx context.Context,
	sess session.Context,
	req domain.RegistrationRequest,
) RegistrationOutcome {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	if fieldErrors := ValidateRegistration(req); len(fieldErrors) > 0 {
		return RegistrationOutcome{Status: StatusInvalid, FieldErrors: fieldErrors}
	}

	// 2. Hash the password.
	passwordHash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return RegistrationOutcome{
			Status: StatusGatewayFailure,
			Reason: "registration could not be completed",
		}
	}

	// 3. Enroll with the payment gateway. No retries here; a single failure
	// is a failed registration and no storage write has happened yet.
	customerID, err := s.Gateway.CreateCustomer(ctx, req.CardToken, req.Email)
	if err != nil {
		reason := "could not process payment"
		var gerr *payment.GatewayError
		if errors.As(err, &gerr) {
			reason = gerr.Reason
		}
		log.Warn("payment gateway rejected enrollment",
			slog.String("email", req.Email),
			slog.Any("error", err),
		)
		return RegistrationOutcome{Status: StatusGatewayFailure, Reason: reason}
	}

	// 4. Persist the user. The insert is a single atomic statement inside a
	// transaction, so no partial row survives a failure.
	newUser := domain.User{
		ID:           idx.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		CustomerID:   customerID,
		CardLast4:    req.CardLast4,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, newUser)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// The gateway customer created above is now orphaned. Accepted
			// limitation: no compensating delete, reconciliation is an
			// out-of-band concern.
			log.Warn("duplicate registration",
				slog.String("email", req.Email),
				slog.String("orphaned_customer_id", customerID),
			)
			return RegistrationOutcome{Status: StatusAlreadyRegistered, Email: req.Email}
		}

		log.Error("failed to persist user after gateway enrollment",
			slog.String("email", req.Email),
			slog.String("orphaned_customer_id", customerID),
			slog.Any("error", err),
		)
		return RegistrationOutcome{
			Status: StatusGatewayFailure,
			Reason: "registration could not be completed",
		}
	}

	// 5. Bind the session.
	session.Bind(sess, newUser.ID)

	log.Info("user registered",
		slog.String("user_id", newUser.ID),
		slog.String("email", newUser.Email),
		slog.String("customer_id", customerID),
	)

	return RegistrationOutcome{Status: StatusSuccess, User: newUser}
}
