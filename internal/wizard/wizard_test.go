package wizard

import (
	"testing"

	"github.com/tulipkids/funwalk-api/internal/pricing"
)

func validContact() Contact {
	return Contact{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "4085551234",
		AddressLine1: "100 Main St",
		City:         "Santa Clara",
		PostalCode:   "95051",
	}
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Step != StepContact {
		t.Errorf("expected step 1, got %d", s.Step)
	}
	if s.AdultCount != 1 || s.KidsCount != 0 {
		t.Errorf("expected 1 adult and 0 kids, got %d/%d", s.AdultCount, s.KidsCount)
	}
	if s.FamilyCategory != pricing.CategoryNoKids {
		t.Errorf("expected %q, got %q", pricing.CategoryNoKids, s.FamilyCategory)
	}
	if s.TotalAmount != 20 {
		t.Errorf("expected total 20, got %d", s.TotalAmount)
	}
	if len(s.TShirtSizes) != 1 {
		t.Errorf("expected 1 shirt size, got %d", len(s.TShirtSizes))
	}
}

func TestNext_BlockedByInvalidContact(t *testing.T) {
	s := NewState()

	next, err := s.Next()
	if err == nil {
		t.Fatal("expected validation error for empty contact")
	}
	if next.Step != StepContact {
		t.Errorf("expected to stay on step 1, got %d", next.Step)
	}

	if _, ok := err.(ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestNext_AdvancesThroughSteps(t *testing.T) {
	s := NewState().WithContact(validContact())

	s, err := s.Next()
	if err != nil {
		t.Fatalf("step 1 -> 2: %v", err)
	}
	if s.Step != StepApparel {
		t.Fatalf("expected step 2, got %d", s.Step)
	}

	s, err = s.Next()
	if err != nil {
		t.Fatalf("step 2 -> 3: %v", err)
	}
	if s.Step != StepPayment {
		t.Fatalf("expected step 3, got %d", s.Step)
	}

	// Step 3 is terminal; Next does not advance past it.
	s, err = s.Next()
	if err != nil {
		t.Fatalf("Next on step 3: %v", err)
	}
	if s.Step != StepPayment {
		t.Errorf("expected to stay on step 3, got %d", s.Step)
	}
}

func TestBack(t *testing.T) {
	s := NewState().WithContact(validContact())
	s, _ = s.Next()
	s, _ = s.Next()

	s = s.Back()
	if s.Step != StepApparel {
		t.Errorf("expected step 2, got %d", s.Step)
	}
	s = s.Back()
	if s.Step != StepContact {
		t.Errorf("expected step 1, got %d", s.Step)
	}
	s = s.Back()
	if s.Step != StepContact {
		t.Errorf("expected to stay on step 1, got %d", s.Step)
	}
}

func TestValidateContact_PostalCode(t *testing.T) {
	tests := []struct {
		postal string
		ok     bool
	}{
		{"95051", true},
		{"9505", false},
		{"950511", false},
		{"A5051", false},
		{"", false},
	}

	for _, tt := range tests {
		c := validContact()
		c.PostalCode = tt.postal
		err := NewState().WithContact(c).ValidateContact()
		if tt.ok && err != nil {
			t.Errorf("postal %q: unexpected error %v", tt.postal, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("postal %q: expected error, got nil", tt.postal)
		}
	}
}

func TestValidateContact_FieldMessages(t *testing.T) {
	c := Contact{
		Name:         "J",
		Email:        "not-an-email",
		Phone:        "123",
		AddressLine1: "",
		City:         "",
		PostalCode:   "A5051",
	}

	err := NewState().WithContact(c).ValidateContact()
	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	failed := map[string]bool{}
	for _, fe := range verr {
		failed[fe.Field] = true
	}
	for _, field := range []string{"name", "email", "phone", "address_line1", "city", "postal_code"} {
		if !failed[field] {
			t.Errorf("expected field %q to fail validation", field)
		}
	}
}

func TestWithCounts_RederivesState(t *testing.T) {
	s := NewState()

	s, err := s.WithCounts(2, 1)
	if err != nil {
		t.Fatalf("WithCounts: %v", err)
	}
	if s.FamilyCategory != pricing.CategoryOneKid {
		t.Errorf("expected %q, got %q", pricing.CategoryOneKid, s.FamilyCategory)
	}
	if s.TotalAmount != 60 {
		t.Errorf("expected total 60, got %d", s.TotalAmount)
	}
	if len(s.TShirtSizes) != 3 {
		t.Errorf("expected 3 shirt sizes, got %d", len(s.TShirtSizes))
	}

	if _, err := s.WithCounts(0, 1); err == nil {
		t.Error("expected error for zero adults")
	}
	if _, err := s.WithCounts(1, -1); err == nil {
		t.Error("expected error for negative kids")
	}
}

func TestWithShirtSize_PreservedAcrossCountChange(t *testing.T) {
	s := NewState()
	s, _ = s.WithCounts(2, 0)

	s, err := s.WithShirtSize(0, "XL")
	if err != nil {
		t.Fatalf("WithShirtSize: %v", err)
	}

	s, _ = s.WithCounts(2, 2)
	if len(s.TShirtSizes) != 4 {
		t.Fatalf("expected 4 sizes, got %d", len(s.TShirtSizes))
	}
	if s.TShirtSizes[0] != "XL" {
		t.Errorf("expected first size XL to be preserved, got %q", s.TShirtSizes[0])
	}
	if s.TShirtSizes[2] != pricing.DefaultShirtSize {
		t.Errorf("expected new slot to default to M, got %q", s.TShirtSizes[2])
	}

	if _, err := s.WithShirtSize(10, "M"); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if _, err := s.WithShirtSize(0, "HUGE"); err == nil {
		t.Error("expected error for unknown size")
	}
}
