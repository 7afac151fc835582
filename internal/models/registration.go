package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

type Registration struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	AddressLine1   string    `json:"address_line1"`
	City           string    `json:"city"`
	PostalCode     string    `json:"postal_code"`
	AdultCount     int       `json:"adult_count"`
	KidsCount      int       `json:"kids_count"`
	FamilyCategory string    `json:"family_category"`
	TotalAmount    int64     `json:"total_amount"`
	PaymentStatus  string    `json:"payment_status"`
	TransactionID  *string   `json:"transaction_id"`
	IsTulipParent  bool      `json:"is_tulip_parent"`
	TShirtSizes    []string  `json:"t_shirt_sizes" gorm:"serializer:json"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Participants is one per adult plus one per kid, the same count the
// t-shirt size list is kept at.
func (r *Registration) Participants() int {
	return r.AdultCount + r.KidsCount
}
