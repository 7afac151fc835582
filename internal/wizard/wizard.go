// Package wizard models the three-step registration flow as an explicit
// state value. Transition functions take a State and return the next
// one; nothing here touches the network.
package wizard

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tulipkids/funwalk-api/internal/pricing"
)

type Step int

const (
	StepContact Step = 1
	StepApparel Step = 2
	StepPayment Step = 3
)

// Contact holds the step-1 fields. Tags mirror the form rules: name at
// least 2 characters, valid email, phone at least 10 characters,
// address line and city present, postal code exactly 5 digits.
type Contact struct {
	Name         string `validate:"required,min=2"`
	Email        string `validate:"required,email"`
	Phone        string `validate:"required,min=10"`
	AddressLine1 string `validate:"required"`
	City         string `validate:"required"`
	PostalCode   string `validate:"required,len=5,number"`
}

type State struct {
	Step           Step
	Contact        Contact
	AdultCount     int
	KidsCount      int
	IsTulipParent  bool
	FamilyCategory string
	TotalAmount    int64
	TShirtSizes    []string
}

var validate = validator.New()

// NewState starts at step 1 with one adult and no kids, the same
// defaults the form opens with.
func NewState() State {
	return State{Step: StepContact, AdultCount: 1}.rederive()
}

// rederive recomputes everything downstream of the counts.
func (s State) rederive() State {
	s.FamilyCategory = pricing.Category(s.AdultCount, s.KidsCount)
	s.TotalAmount = pricing.Total(s.AdultCount, s.KidsCount)
	s.TShirtSizes = pricing.ResizeShirtSizes(s.TShirtSizes, s.AdultCount, s.KidsCount)
	return s
}

func (s State) WithContact(c Contact) State {
	s.Contact = c
	return s
}

func (s State) WithTulipParent(v bool) State {
	s.IsTulipParent = v
	return s
}

// WithCounts updates the participant counts and rederives the category,
// total and size list. Requires at least one adult.
func (s State) WithCounts(adultCount, kidsCount int) (State, error) {
	if adultCount < 1 {
		return s, ValidationError{{Field: "adult_count", Message: "At least one adult is required."}}
	}
	if kidsCount < 0 {
		return s, ValidationError{{Field: "kids_count", Message: "Kid count cannot be negative."}}
	}
	s.AdultCount = adultCount
	s.KidsCount = kidsCount
	return s.rederive(), nil
}

// WithShirtSize sets one participant's size.
func (s State) WithShirtSize(index int, size string) (State, error) {
	if index < 0 || index >= len(s.TShirtSizes) {
		return s, fmt.Errorf("shirt size index %d out of range", index)
	}
	if !pricing.ValidShirtSize(size) {
		return s, fmt.Errorf("unknown shirt size %q", size)
	}
	sizes := make([]string, len(s.TShirtSizes))
	copy(sizes, s.TShirtSizes)
	sizes[index] = size
	s.TShirtSizes = sizes
	return s, nil
}

// Next advances one step. Leaving step 1 requires the contact fields to
// validate; step 2 advances unconditionally; step 3 is the last step.
func (s State) Next() (State, error) {
	switch s.Step {
	case StepContact:
		if err := s.ValidateContact(); err != nil {
			return s, err
		}
		s.Step = StepApparel
	case StepApparel:
		s.Step = StepPayment
	}
	return s, nil
}

// Back steps backward, never below step 1.
func (s State) Back() State {
	if s.Step > StepContact {
		s.Step--
	}
	return s
}

// ValidateContact checks the step-1 fields and returns a
// ValidationError listing every failing field.
func (s State) ValidateContact() error {
	err := validate.Struct(s.Contact)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldName(fe.Field()), Message: messageFor(fe)})
	}
	return out
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError []FieldError

func (e ValidationError) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "AddressLine1":
		return "address_line1"
	case "City":
		return "city"
	case "PostalCode":
		return "postal_code"
	}
	return strings.ToLower(structField)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "Name must be at least 2 characters."
	case "Email":
		return "Please enter a valid email address."
	case "Phone":
		return "Please enter a valid phone number."
	case "AddressLine1":
		return "Address is required."
	case "City":
		return "City is required."
	case "PostalCode":
		return "Please enter a valid 5-digit US zip code."
	}
	return "Invalid value."
}
