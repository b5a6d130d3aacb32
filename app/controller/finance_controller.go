package controller

import (
	"log"
	"net/http"

	"github.com/kchia/paperflow-ai/service"
)

// FinanceController handles HTTP requests for financial reporting
type FinanceController struct {
	finance *service.FinanceService
}

// NewFinanceController creates a new FinanceController
func NewFinanceController(finance *service.FinanceService) *FinanceController {
	return &FinanceController{finance: finance}
}

// GetSummary handles GET /admin/finance/summary?date=2025-01-15
func (c *FinanceController) GetSummary(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetSummary: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	report, err := c.finance.Summary(r.Context(), date)
	if err != nil {
		log.Printf("❌ GetSummary: %v", err)
		http.Error(w, "Failed to build financial summary", http.StatusInternalServerError)
		return
	}

	writeTextReport(w, date, report)
}
