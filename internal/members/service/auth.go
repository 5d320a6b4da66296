package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tabwave/memberpay/internal/members/domain"
	"github.com/tabwave/memberpay/internal/members/session"
	"github.com/tabwave/memberpay/internal/members/store"
	"github.com/tabwave/memberpay/pkg/cryptox"
	"github.com/tabwave/memberpay/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("service: invalid email or password")
	ErrNotAuthenticated   = errors.New("service: not authenticated")
)

// AuthService handles sign-in, sign-out and current-user resolution for
// already-registered members.
type AuthService struct {
	Store store.Store
}

// SignIn verifies the credentials and binds the user into the session.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) SignIn(
	ctx context.Context,
	sess session.Context,
	email, password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.String("user_id", user.ID), slog.Any("error", err))
		return domain.User{}, err
	}

	session.Bind(sess, user.ID)

	log.Info("user signed in", slog.String("user_id", user.ID))
	return user, nil
}

// SignOut clears the user binding from the session.
func (s *AuthService) SignOut(sess session.Context) {
	session.Clear(sess)
}

// CurrentUser resolves the session's bound user id to a full user record.
func (s *AuthService) CurrentUser(ctx context.Context, sess session.Context) (domain.User, error) {
	userID, ok := session.UserID(sess)
	if !ok {
		return domain.User{}, ErrNotAuthenticated
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Stale session pointing at a deleted account.
			return domain.User{}, ErrNotAuthenticated
		}
		return domain.User{}, err
	}
	return user, nil
}
