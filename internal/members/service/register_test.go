package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/tabwave/memberpay/internal/members/payment"
	"github.com/tabwave/memberpay/internal/members/session"
	"github.com/tabwave/memberpay/internal/members/store"
	"github.com/tabwave/memberpay/internal/members/store/drivers/sqlite"
	"github.com/tabwave/memberpay/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// stubGateway implements payment.Gateway with canned responses and a call
// counter, standing in for the external processor.
type stubGateway struct {
	calls      atomic.Int64
	customerID string
	err        error
}

func (g *stubGateway) CreateCustomer(ctx context.Context, cardToken, email string) (string, error) {
	n := g.calls.Add(1)
	if g.err != nil {
		return "", g.err
	}
	if g.customerID != "" {
		return g.customerID, nil
	}
	return fmt.Sprintf("cus_%06d", n), nil
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestRegisterSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	gateway := &stubGateway{customerID: "cus_abc"}
	svc := &RegisterService{Store: st, Gateway: gateway}

	sess := session.Values{}
	outcome := svc.Register(ctx, sess, validRequest())

	require.Equal(t, StatusSuccess, outcome.Status)
	require.Equal(t, "j@j.com", outcome.User.Email)
	require.Equal(t, "cus_abc", outcome.User.CustomerID)
	require.NotEmpty(t, outcome.User.ID)

	// Session now maps "user" to the new id.
	boundID, ok := session.UserID(sess)
	require.True(t, ok)
	require.Equal(t, outcome.User.ID, boundID)

	// The stored row carries the customer id and a hashed password.
	stored, err := st.Users().GetUserByID(ctx, outcome.User.ID)
	require.NoError(t, err)
	require.Equal(t, "cus_abc", stored.CustomerID)
	require.Equal(t, "3333", stored.CardLast4)
	require.NotEqual(t, "1234", stored.PasswordHash)
	require.NoError(t, cryptox.VerifyPassword("1234", stored.PasswordHash))
}

func TestRegisterInvalidInputSkipsGateway(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gateway := &stubGateway{}
	svc := &RegisterService{Store: newTestStore(t), Gateway: gateway}

	req := validRequest()
	req.Password = "234"
	req.PasswordConfirm = "1234"

	sess := session.Values{}
	outcome := svc.Register(ctx, sess, req)

	require.Equal(t, StatusInvalid, outcome.Status)
	require.Equal(t, []string{"Passwords do not match"}, outcome.FieldErrors[FieldPasswordConfirm])
	require.EqualValues(t, 0, gateway.calls.Load(), "gateway must not be called on invalid input")

	_, ok := session.UserID(sess)
	require.False(t, ok)
}

func TestRegisterGatewayFailureLeavesNoRow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	gateway := &stubGateway{err: &payment.GatewayError{Reason: "card_error: Your card was declined."}}
	svc := &RegisterService{Store: st, Gateway: gateway}

	sess := session.Values{}
	outcome := svc.Register(ctx, sess, validRequest())

	require.Equal(t, StatusGatewayFailure, outcome.Status)
	require.Contains(t, outcome.Reason, "declined")

	_, err := st.Users().GetUserByEmail(ctx, "j@j.com")
	require.ErrorIs(t, err, store.ErrNotFound, "no orphaned persisted user")

	_, ok := session.UserID(sess)
	require.False(t, ok)
}

func TestRegisterTwiceReportsAlreadyRegistered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &RegisterService{Store: st, Gateway: &stubGateway{}}

	first := svc.Register(ctx, session.Values{}, validRequest())
	require.Equal(t, StatusSuccess, first.Status)

	sess := session.Values{}
	second := svc.Register(ctx, sess, validRequest())
	require.Equal(t, StatusAlreadyRegistered, second.Status)
	require.Equal(t, "j@j.com", second.Email)

	// Storage still has exactly one row and the second session is untouched.
	count, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	_, ok := session.UserID(sess)
	require.False(t, ok)
}

func TestRegisterConcurrentDuplicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &RegisterService{Store: st, Gateway: &stubGateway{}}

	const attempts = 4
	outcomes := make([]RegistrationOutcome, attempts)

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := validRequest()
			req.Name = fmt.Sprintf("racer %d", i)
			outcomes[i] = svc.Register(ctx, session.Values{}, req)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, outcome := range outcomes {
		switch outcome.Status {
		case StatusSuccess:
			succeeded++
		case StatusAlreadyRegistered:
			require.Equal(t, "j@j.com", outcome.Email)
		default:
			t.Fatalf("unexpected outcome status %v", outcome.Status)
		}
	}
	require.Equal(t, 1, succeeded, "exactly one concurrent registration wins")

	count, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
