package controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kchia/paperflow-ai/service"
)

// QuoteController handles HTTP requests for the historical quote index
type QuoteController struct {
	quotes *service.QuoteService
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(quotes *service.QuoteService) *QuoteController {
	return &QuoteController{quotes: quotes}
}

// SearchHistory handles GET /admin/quotes/history?terms=wedding,invitations&limit=5
func (c *QuoteController) SearchHistory(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SearchHistory: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	termsParam := r.URL.Query().Get("terms")
	if strings.TrimSpace(termsParam) == "" {
		log.Printf("❌ SearchHistory: terms parameter is required")
		http.Error(w, "terms parameter is required", http.StatusBadRequest)
		return
	}
	terms := strings.Split(termsParam, ",")

	limit := 5
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			log.Printf("❌ SearchHistory: Invalid limit: %s", limitParam)
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	report, err := c.quotes.SearchSimilar(r.Context(), terms, limit)
	if err != nil {
		log.Printf("❌ SearchHistory: %v", err)
		http.Error(w, "Failed to search quote history", http.StatusInternalServerError)
		return
	}

	writeTextReport(w, time.Now().Format("2006-01-02"), report)
}
