package payments

import "context"

// StatusSucceeded is the intent status a confirmed charge reports.
const StatusSucceeded = "succeeded"

type Address struct {
	Line1      string
	City       string
	PostalCode string
	Country    string
}

// IntentRequest describes the charge to set up. Amount is in minor
// units (cents).
type IntentRequest struct {
	Amount         int64
	Currency       string
	ReceiptEmail   string
	Description    string
	RegistrationID string
	CustomerName   string
	Address        Address
}

type Intent struct {
	ID           string
	ClientSecret string
}

// Processor is the payment-processor boundary. The Stripe
// implementation is the real one; tests swap in a fake.
type Processor interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	// ConfirmIntent charges the given payment method against an intent
	// and returns the resulting intent status.
	ConfirmIntent(ctx context.Context, intentID, paymentMethod string) (string, error)
}
