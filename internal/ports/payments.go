package ports

import "context"

// PaymentIntent is the provider-issued authorization handle. The client
// secret completes the payment on the caller's side.
type PaymentIntent struct {
	ClientSecret string
}

// PaymentProvider requests a payment authorization from the external
// processor. Amount is integer minor currency units.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (PaymentIntent, error)
}
