package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/tulipkids/funwalk-api/internal/auth"
	"github.com/tulipkids/funwalk-api/internal/models"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewAdminHandler(db *gorm.DB, authHandler *auth.AuthHandler) *AdminHandler {
	return &AdminHandler{db: db, authHandler: authHandler}
}

type ListRegistrationsRequest struct {
	auth.AuthInput
	Search string `query:"search" doc:"Case-insensitive substring match over name, email and family category"`
	Status string `query:"status" enum:"all,paid,pending" default:"all" doc:"Payment status filter"`
}

type RegistrationStats struct {
	TotalRegistrations int   `json:"total_registrations"`
	TotalParticipants  int   `json:"total_participants"`
	TotalPaid          int   `json:"total_paid"`
	TotalPending       int   `json:"total_pending"`
	TotalRevenue       int64 `json:"total_revenue"`
}

type ListRegistrationsResponse struct {
	Body struct {
		Registrations []models.Registration `json:"registrations"`
		Stats         RegistrationStats     `json:"stats"`
	}
}

// HandleList returns every registration newest-first, filtered by
// search term and payment status. Stats always cover the full set.
func (h *AdminHandler) HandleList(ctx context.Context, input *ListRegistrationsRequest) (*ListRegistrationsResponse, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	var regs []models.Registration
	if err := h.db.WithContext(ctx).Order("created_at desc").Find(&regs).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to load registrations")
	}

	res := &ListRegistrationsResponse{}
	res.Body.Stats = computeStats(regs)
	res.Body.Registrations = filterRegistrations(regs, input.Search, input.Status)
	return res, nil
}

func computeStats(regs []models.Registration) RegistrationStats {
	stats := RegistrationStats{TotalRegistrations: len(regs)}
	for _, reg := range regs {
		stats.TotalParticipants += reg.Participants()
		switch reg.PaymentStatus {
		case models.PaymentStatusPaid:
			stats.TotalPaid++
			stats.TotalRevenue += reg.TotalAmount
		case models.PaymentStatusPending:
			stats.TotalPending++
		}
	}
	return stats
}

func filterRegistrations(regs []models.Registration, search, status string) []models.Registration {
	term := strings.ToLower(search)
	filtered := make([]models.Registration, 0, len(regs))
	for _, reg := range regs {
		if term != "" {
			matches := strings.Contains(strings.ToLower(reg.Name), term) ||
				strings.Contains(strings.ToLower(reg.Email), term) ||
				strings.Contains(strings.ToLower(reg.FamilyCategory), term)
			if !matches {
				continue
			}
		}
		if status != "" && status != "all" && reg.PaymentStatus != status {
			continue
		}
		filtered = append(filtered, reg)
	}
	return filtered
}

type UpdateStatusRequest struct {
	auth.AuthInput
	ID   string `path:"id" doc:"Registration id"`
	Body struct {
		Status string `json:"status" required:"true" enum:"paid,pending" doc:"New payment status"`
	}
}

type UpdateStatusResponse struct {
	Body models.Registration
}

// HandleUpdateStatus toggles one registration between paid and pending.
// Marking paid mints a synthetic transaction id when none exists;
// marking pending clears it.
func (h *AdminHandler) HandleUpdateStatus(ctx context.Context, input *UpdateStatusRequest) (*UpdateStatusResponse, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid registration id")
	}

	var reg models.Registration
	if err := h.db.WithContext(ctx).First(&reg, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, huma.Error404NotFound("Registration not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load registration")
	}

	update := map[string]interface{}{
		"payment_status": input.Body.Status,
		"updated_at":     time.Now(),
	}
	switch input.Body.Status {
	case models.PaymentStatusPaid:
		if reg.TransactionID == nil || *reg.TransactionID == "" {
			update["transaction_id"] = syntheticTransactionID()
		}
	case models.PaymentStatusPending:
		update["transaction_id"] = nil
	}

	if err := h.db.WithContext(ctx).Model(&reg).Updates(update).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update payment status")
	}

	if err := h.db.WithContext(ctx).First(&reg, "id = ?", id).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to reload registration")
	}

	return &UpdateStatusResponse{Body: reg}, nil
}

// syntheticTransactionID marks manually reconciled payments the way the
// dashboard always has: a short tx_ token, not a processor id.
func syntheticTransactionID() string {
	return "tx_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
