package handlers

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tulipkids/funwalk-api/internal/models"
)

var csvHeader = []string{
	"Name", "Email", "Phone", "Adults", "Kids", "Family Type",
	"Amount", "Status", "Transaction ID", "Date", "T-Shirt Sizes",
}

// HandleExport streams the full registration set as CSV. Plain
// http.HandlerFunc so the response can be a file download; mounted
// behind the auth middleware.
func (h *AdminHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var regs []models.Registration
	if err := h.db.WithContext(r.Context()).Order("created_at desc").Find(&regs).Error; err != nil {
		http.Error(w, "Failed to load registrations", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=registrations-%s.csv", time.Now().Format("2006-01-02")))

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		log.Printf("Failed to write CSV header: %v", err)
		return
	}

	for _, reg := range regs {
		txID := "N/A"
		if reg.TransactionID != nil && *reg.TransactionID != "" {
			txID = *reg.TransactionID
		}
		sizes := "N/A"
		if len(reg.TShirtSizes) > 0 {
			sizes = strings.Join(reg.TShirtSizes, ", ")
		}

		row := []string{
			reg.Name,
			reg.Email,
			reg.Phone,
			strconv.Itoa(reg.AdultCount),
			strconv.Itoa(reg.KidsCount),
			reg.FamilyCategory,
			strconv.FormatInt(reg.TotalAmount, 10),
			reg.PaymentStatus,
			txID,
			reg.CreatedAt.Format("2006-01-02"),
			sizes,
		}
		if err := cw.Write(row); err != nil {
			log.Printf("Failed to write CSV row: %v", err)
			return
		}
	}
	cw.Flush()
}
