package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type stripeProvider struct {
	api        *client.API
	successURL string
	cancelURL  string
}

// NewStripe builds a Provider backed by Stripe Checkout Sessions.
func NewStripe(secretKey, successURL, cancelURL string) Provider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeProvider{
		api:        api,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (p *stripeProvider) CreateSession(ctx context.Context, in CreateSessionInput) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(in.Email),
		SuccessURL:    stripe.String(p.successURL),
		CancelURL:     stripe.String(p.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(in.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Order (%d items)", in.Products)),
					},
				},
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("orderId", in.OrderID)
	params.AddMetadata("cartId", in.CartID)

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &Session{ID: sess.ID, RedirectURL: sess.URL}, nil
}

func (p *stripeProvider) RetrieveSession(ctx context.Context, sessionID string) (*SessionResult, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := p.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}
	return &SessionResult{
		Status:  string(sess.Status),
		OrderID: sess.Metadata["orderId"],
		CartID:  sess.Metadata["cartId"],
	}, nil
}
