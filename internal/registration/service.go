// Package registration sequences the remote calls behind a submitted
// registration: persist the row, set up the payment, confirm the card,
// then mark the row paid.
package registration

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tulipkids/funwalk-api/internal/models"
	"github.com/tulipkids/funwalk-api/internal/notifier"
	"github.com/tulipkids/funwalk-api/internal/payments"
	"github.com/tulipkids/funwalk-api/internal/wizard"
	"gorm.io/gorm"
)

const (
	currency    = "usd"
	description = "Family Registration Fee"
	// Billing country on the intent, kept from the event's original
	// processor account setup.
	shippingCountry = "IN"
)

type Service struct {
	db        *gorm.DB
	processor payments.Processor
	notifier  notifier.Notifier
}

func NewService(db *gorm.DB, processor payments.Processor, notifier notifier.Notifier) *Service {
	return &Service{db: db, processor: processor, notifier: notifier}
}

// Receipt is what a successful submission hands back for the
// confirmation view.
type Receipt struct {
	Registration  models.Registration
	TransactionID string
}

// SubmitAndPay runs the payment sequence for a wizard that reached the
// payment step. Each failure is terminal for the attempt; there are no
// retries. A row that was inserted before a later step failed stays in
// the store with status pending.
func (s *Service) SubmitAndPay(ctx context.Context, state wizard.State, paymentMethod string) (*Receipt, error) {
	if state.Step != wizard.StepPayment {
		return nil, fmt.Errorf("registration submitted from step %d, want step %d", state.Step, wizard.StepPayment)
	}
	if err := state.ValidateContact(); err != nil {
		return nil, err
	}
	if paymentMethod == "" {
		return nil, &PaymentSetupError{Err: fmt.Errorf("missing payment method")}
	}

	// 1. Insert the pending row.
	reg := models.Registration{
		Name:           state.Contact.Name,
		Email:          state.Contact.Email,
		Phone:          state.Contact.Phone,
		AddressLine1:   state.Contact.AddressLine1,
		City:           state.Contact.City,
		PostalCode:     state.Contact.PostalCode,
		AdultCount:     state.AdultCount,
		KidsCount:      state.KidsCount,
		FamilyCategory: state.FamilyCategory,
		TotalAmount:    state.TotalAmount,
		PaymentStatus:  models.PaymentStatusPending,
		IsTulipParent:  state.IsTulipParent,
		TShirtSizes:    state.TShirtSizes,
	}
	if err := s.db.WithContext(ctx).Create(&reg).Error; err != nil {
		return nil, &RecordStoreError{Op: "insert", Err: err}
	}

	// 2. Create the payment intent, tagged with the new row's id.
	if reg.TotalAmount <= 0 || reg.Email == "" {
		return nil, &PaymentSetupError{Err: fmt.Errorf("missing required fields")}
	}
	intent, err := s.processor.CreateIntent(ctx, payments.IntentRequest{
		Amount:         reg.TotalAmount * 100,
		Currency:       currency,
		ReceiptEmail:   reg.Email,
		Description:    description,
		RegistrationID: reg.ID.String(),
		CustomerName:   reg.Name,
		Address: payments.Address{
			Line1:      reg.AddressLine1,
			City:       reg.City,
			PostalCode: reg.PostalCode,
			Country:    shippingCountry,
		},
	})
	if err != nil {
		return nil, &PaymentSetupError{Err: err}
	}

	// 3. Confirm the charge.
	status, err := s.processor.ConfirmIntent(ctx, intent.ID, paymentMethod)
	if err != nil {
		return nil, &PaymentDeclinedError{Err: err}
	}
	if status != payments.StatusSucceeded {
		return nil, &PaymentDeclinedError{Err: fmt.Errorf("payment intent status %q", status)}
	}

	// 4. Mark the row paid. The charge already went through, so a
	// failure here is logged and swallowed; the admin dashboard is the
	// reconciliation path.
	txID := intent.ID
	now := time.Now()
	update := map[string]interface{}{
		"payment_status": models.PaymentStatusPaid,
		"transaction_id": txID,
		"updated_at":     now,
	}
	if err := s.db.WithContext(ctx).Model(&models.Registration{}).Where("id = ?", reg.ID).Updates(update).Error; err != nil {
		log.Printf("Failed to mark registration %s paid (transaction %s): %v", reg.ID, txID, err)
	} else {
		reg.PaymentStatus = models.PaymentStatusPaid
		reg.TransactionID = &txID
		reg.UpdatedAt = now
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyPaidRegistration(reg); err != nil {
			log.Printf("Failed to send registration notification: %v", err)
		}
	}

	return &Receipt{Registration: reg, TransactionID: txID}, nil
}
