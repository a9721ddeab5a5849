package payment

import (
	"context"
	"errors"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// intentCreator is the slice of the Stripe client we use.
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeProcessor creates card payment intents in USD.
type StripeProcessor struct {
	intents intentCreator
}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	sc := client.New(secretKey, nil)
	return &StripeProcessor{intents: sc.PaymentIntents}
}

// ToCents converts a price in dollars to whole cents, dropping any
// fraction of a cent.
func ToCents(price float64) int64 {
	return int64(math.Trunc(price * 100))
}

// CreateIntent registers a payment intent for amount cents and returns its
// client secret.
func (p *StripeProcessor) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := p.intents.New(params)
	if err != nil {
		return "", &domain.PaymentError{Err: err}
	}

	return intent.ClientSecret, nil
}
