package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/tulipkids/funwalk-api/internal/config"
	"github.com/tulipkids/funwalk-api/internal/registration"
	"github.com/tulipkids/funwalk-api/internal/wizard"
)

type RegistrationHandler struct {
	service *registration.Service
	cfg     *config.Config
}

func NewRegistrationHandler(service *registration.Service, cfg *config.Config) *RegistrationHandler {
	return &RegistrationHandler{service: service, cfg: cfg}
}

type SubmitRegistrationRequest struct {
	Body struct {
		Name          string   `json:"name" required:"true" doc:"Full name"`
		Email         string   `json:"email" required:"true" doc:"Receipt email"`
		Phone         string   `json:"phone" required:"true" doc:"Contact phone"`
		AddressLine1  string   `json:"address_line1" required:"true" doc:"Street address"`
		City          string   `json:"city" required:"true" doc:"City"`
		PostalCode    string   `json:"postal_code" required:"true" doc:"5-digit US zip code"`
		AdultCount    int      `json:"adult_count" required:"true" minimum:"1" doc:"Number of adults"`
		KidsCount     int      `json:"kids_count" minimum:"0" doc:"Number of kids above 4 years"`
		IsTulipParent bool     `json:"is_tulip_parent" doc:"Whether a child is enrolled at Tulip Kids"`
		TShirtSizes   []string `json:"t_shirt_sizes" doc:"One size per participant; missing entries default to M"`
		PaymentMethod string   `json:"payment_method" required:"true" doc:"Processor payment method id"`
	}
}

type SubmitRegistrationResponse struct {
	Body struct {
		ID             string   `json:"id"`
		Name           string   `json:"name"`
		Email          string   `json:"email"`
		AdultCount     int      `json:"adult_count"`
		KidsCount      int      `json:"kids_count"`
		FamilyCategory string   `json:"family_category"`
		TotalAmount    int64    `json:"total_amount"`
		TShirtSizes    []string `json:"t_shirt_sizes"`
		PaymentStatus  string   `json:"payment_status"`
		TransactionID  string   `json:"transaction_id"`
		Message        string   `json:"message"`
	}
}

// HandleSubmit walks the wizard with the submitted fields and, once it
// reaches the payment step, runs the payment sequence.
func (h *RegistrationHandler) HandleSubmit(ctx context.Context, input *SubmitRegistrationRequest) (*SubmitRegistrationResponse, error) {
	state := wizard.NewState().WithContact(wizard.Contact{
		Name:         input.Body.Name,
		Email:        input.Body.Email,
		Phone:        input.Body.Phone,
		AddressLine1: input.Body.AddressLine1,
		City:         input.Body.City,
		PostalCode:   input.Body.PostalCode,
	}).WithTulipParent(input.Body.IsTulipParent)

	state, err := state.WithCounts(input.Body.AdultCount, input.Body.KidsCount)
	if err != nil {
		return nil, validationError(err)
	}

	// Step 1 -> 2: contact validation gates the transition.
	state, err = state.Next()
	if err != nil {
		return nil, validationError(err)
	}

	// Step 2: apply the chosen shirt sizes.
	for i, size := range input.Body.TShirtSizes {
		if i >= len(state.TShirtSizes) {
			break
		}
		if size == "" {
			continue
		}
		state, err = state.WithShirtSize(i, size)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
	}

	// Step 2 -> 3.
	state, err = state.Next()
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	receipt, err := h.service.SubmitAndPay(ctx, state, input.Body.PaymentMethod)
	if err != nil {
		return nil, paymentError(err)
	}

	reg := receipt.Registration
	res := &SubmitRegistrationResponse{}
	res.Body.ID = reg.ID.String()
	res.Body.Name = reg.Name
	res.Body.Email = reg.Email
	res.Body.AdultCount = reg.AdultCount
	res.Body.KidsCount = reg.KidsCount
	res.Body.FamilyCategory = reg.FamilyCategory
	res.Body.TotalAmount = reg.TotalAmount
	res.Body.TShirtSizes = reg.TShirtSizes
	res.Body.PaymentStatus = reg.PaymentStatus
	res.Body.TransactionID = receipt.TransactionID
	res.Body.Message = "Registration confirmed"
	return res, nil
}

func validationError(err error) error {
	var verr wizard.ValidationError
	if errors.As(err, &verr) {
		details := make([]error, len(verr))
		for i, fe := range verr {
			details[i] = &huma.ErrorDetail{Message: fe.Message, Location: "body." + fe.Field}
		}
		return huma.Error422UnprocessableEntity("Validation failed", details...)
	}
	return huma.Error400BadRequest(err.Error())
}

// paymentError maps the orchestrator taxonomy to HTTP statuses. The
// message stays generic; details are in the server log.
func paymentError(err error) error {
	var (
		storeErr    *registration.RecordStoreError
		setupErr    *registration.PaymentSetupError
		declinedErr *registration.PaymentDeclinedError
	)
	switch {
	case errors.As(err, &storeErr):
		return huma.Error500InternalServerError("Failed to save registration, please try again or contact support")
	case errors.As(err, &setupErr):
		return huma.Error502BadGateway("Payment setup failed, please try again or contact support")
	case errors.As(err, &declinedErr):
		return huma.NewError(http.StatusPaymentRequired, "Payment failed, please try again or contact support")
	}
	return validationError(err)
}

type PaymentConfigResponse struct {
	Body struct {
		PublishableKey string `json:"publishable_key"`
	}
}

// HandlePaymentConfig exposes the processor's publishable key for the
// hosted card element.
func (h *RegistrationHandler) HandlePaymentConfig(ctx context.Context, input *struct{}) (*PaymentConfigResponse, error) {
	res := &PaymentConfigResponse{}
	res.Body.PublishableKey = h.cfg.StripePublishableKey
	return res, nil
}
