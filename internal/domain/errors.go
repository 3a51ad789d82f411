package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized covers every credential failure: missing header, bad
	// signature, expired token, revoked token. One sentinel so responses never
	// leak which check failed.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden means the credential was valid but the role or identity
	// did not match the route requirement.
	ErrForbidden    = errors.New("forbidden access")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	// ErrPaymentProvider signals a failed authorization call to the external
	// payment provider. It maps to a 5xx so callers never mistake it for a
	// declined card.
	ErrPaymentProvider = errors.New("payment provider error")
	// ErrPartialSettlement is returned when the payment record was durably
	// written but the cart purge failed. The payment is kept so reconciliation
	// can retry the purge; callers must surface this, never swallow it.
	ErrPartialSettlement = errors.New("partial settlement")
)
