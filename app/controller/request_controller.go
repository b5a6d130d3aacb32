package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/kchia/paperflow-ai/agent"
	"github.com/kchia/paperflow-ai/models"
)

// RequestController handles HTTP requests from customers
type RequestController struct {
	orchestrator *agent.Orchestrator
}

// NewRequestController creates a new RequestController
func NewRequestController(orchestrator *agent.Orchestrator) *RequestController {
	return &RequestController{orchestrator: orchestrator}
}

// HandleRequest handles POST /requests
// Example request:
// POST /requests
// {
//   "request": "- 200 sheets of A4 paper\n- 50 units of cardstock",
//   "date": "2025-01-15"
// }
// Example response:
// {
//   "intent": "quote_request",
//   "response": "QUOTE FOR YOUR ORDER\n..."
// }
func (c *RequestController) HandleRequest(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 HandleRequest: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ HandleRequest: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ HandleRequest: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Request) == "" {
		log.Printf("❌ HandleRequest: request is required")
		http.Error(w, "request is required", http.StatusBadRequest)
		return
	}

	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		log.Printf("❌ HandleRequest: Invalid date: %s", req.Date)
		http.Error(w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	response := c.orchestrator.Handle(r.Context(), &req)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ HandleRequest: Failed to encode response: %v", err)
	}
}
