package stripe

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/newsflare/newsflare-api/internal/ports"
)

// Provider requests card payment authorizations from Stripe. It only returns
// the client secret; capture and confirmation happen on the caller's side.
type Provider struct{}

func NewProvider(secretKey string) *Provider {
	stripe.Key = secretKey
	return &Provider{}
}

func (p *Provider) CreateIntent(ctx context.Context, amount int64, currency string) (ports.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return ports.PaymentIntent{}, fmt.Errorf("create payment intent: %w", err)
	}
	return ports.PaymentIntent{ClientSecret: intent.ClientSecret}, nil
}
