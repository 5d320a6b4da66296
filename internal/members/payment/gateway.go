// Package payment adapts the external billing processor. The service only
// ever needs one operation from it: turn a card token into a durable customer
// id. Retries and backoff are left to callers further out; a failure here is
// surfaced immediately.
package payment

import "context"

// Gateway creates customer records in the external payment processor.
type Gateway interface {
	// CreateCustomer enrolls a card token under a new customer record and
	// returns the processor's opaque customer id. Failures are returned as
	// *GatewayError.
	CreateCustomer(ctx context.Context, cardToken, email string) (string, error)
}

// GatewayError reports a failed gateway call: the processor rejected the
// request or was unreachable.
type GatewayError struct {
	Reason string
	// Err holds the underlying transport or decode error, if any.
	Err error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return "payment: " + e.Reason + ": " + e.Err.Error()
	}
	return "payment: " + e.Reason
}

func (e *GatewayError) Unwrap() error { return e.Err }
