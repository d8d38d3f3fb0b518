// Package stripepay charges customers through Stripe payment intents.
package stripepay

import (
	"context"

	"sitebuilder/internal/core/domain/model/customer"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/core/ports"
	"sitebuilder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

var _ ports.PaymentProcessor = &StripePaymentProcessor{}

// StripePaymentProcessor creates a Stripe payment intent per order. The intent
// id becomes the order's payment reference and the client secret goes back to
// the browser, which completes the charge with Stripe directly.
type StripePaymentProcessor struct {
	api *client.API
}

func NewStripePaymentProcessor(secretKey string) (*StripePaymentProcessor, error) {
	if secretKey == "" {
		return nil, errs.NewValueIsRequiredError("secretKey")
	}
	return &StripePaymentProcessor{api: client.New(secretKey, nil)}, nil
}

func (p *StripePaymentProcessor) CreateIntent(
	ctx context.Context, cust *customer.Customer, plan order.Plan, amount decimal.Decimal,
) (ports.PaymentIntent, error) {
	if cust == nil {
		return ports.PaymentIntent{}, errs.NewValueIsRequiredError("cust")
	}

	// Stripe amounts are integer cents.
	cents := amount.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(cents),
		Currency:     stripe.String(string(stripe.CurrencyUSD)),
		ReceiptEmail: stripe.String(cust.Email()),
	}
	params.Context = ctx
	params.AddMetadata("plan", plan.String())
	params.AddMetadata("customerId", cust.ID().String())

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return ports.PaymentIntent{}, errs.NewUpstreamFailureError("stripe", err)
	}

	return ports.PaymentIntent{Ref: intent.ID, ClientSecret: intent.ClientSecret}, nil
}
