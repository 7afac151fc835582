package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type StripeProcessor struct{}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	stripe.Key = secretKey
	return &StripeProcessor{}
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(req.Amount),
		Currency:     stripe.String(req.Currency),
		ReceiptEmail: stripe.String(req.ReceiptEmail),
		Description:  stripe.String(req.Description),
		Shipping: &stripe.ShippingDetailsParams{
			Name: stripe.String(req.CustomerName),
			Address: &stripe.AddressParams{
				Line1:      stripe.String(req.Address.Line1),
				City:       stripe.String(req.Address.City),
				PostalCode: stripe.String(req.Address.PostalCode),
				Country:    stripe.String(req.Address.Country),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("registrationId", req.RegistrationID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	if pi.ClientSecret == "" {
		return nil, fmt.Errorf("payment intent %s has no client secret", pi.ID)
	}

	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (p *StripeProcessor) ConfirmIntent(ctx context.Context, intentID, paymentMethod string) (string, error) {
	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethod),
	}
	params.Context = ctx

	pi, err := paymentintent.Confirm(intentID, params)
	if err != nil {
		return "", err
	}
	return string(pi.Status), nil
}
