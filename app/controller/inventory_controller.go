package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/kchia/paperflow-ai/service"
)

// InventoryController handles HTTP requests for stock administration
type InventoryController struct {
	inventory *service.InventoryService
	seed      *service.SeedService
}

// NewInventoryController creates a new InventoryController
func NewInventoryController(inventory *service.InventoryService, seed *service.SeedService) *InventoryController {
	return &InventoryController{inventory: inventory, seed: seed}
}

// GetInventory handles GET /admin/inventory?date=2025-01-15&item=cardstock
// Without an item parameter it lists everything in stock.
func (c *InventoryController) GetInventory(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetInventory: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	var report string
	var err error
	if item := r.URL.Query().Get("item"); item != "" {
		report, err = c.inventory.CheckStock(r.Context(), item, date)
	} else {
		report, err = c.inventory.ListAvailable(r.Context(), date)
	}
	if err != nil {
		log.Printf("❌ GetInventory: %v", err)
		http.Error(w, "Failed to read inventory", http.StatusInternalServerError)
		return
	}

	writeTextReport(w, date, report)
}

// CheckReorder handles GET /admin/inventory/reorder?item=cardstock&date=2025-01-15
func (c *InventoryController) CheckReorder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CheckReorder: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	item := r.URL.Query().Get("item")
	if item == "" {
		log.Printf("❌ CheckReorder: item parameter is required")
		http.Error(w, "item parameter is required", http.StatusBadRequest)
		return
	}

	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	report, err := c.inventory.CheckReorder(r.Context(), item, date)
	if err != nil {
		log.Printf("❌ CheckReorder: %v", err)
		http.Error(w, "Failed to check reorder level", http.StatusInternalServerError)
		return
	}

	writeTextReport(w, date, report)
}

// PlaceSupplierOrder handles POST /admin/supplier-orders
// Example request:
// {
//   "item": "cardstock",
//   "quantity": 500,
//   "date": "2025-01-15"
// }
func (c *InventoryController) PlaceSupplierOrder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 PlaceSupplierOrder: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Item     string `json:"item"`
		Quantity int    `json:"quantity"`
		Date     string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ PlaceSupplierOrder: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Item) == "" {
		http.Error(w, "item is required", http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		log.Printf("❌ PlaceSupplierOrder: quantity must be greater than 0: %d", req.Quantity)
		http.Error(w, "quantity must be greater than 0", http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		http.Error(w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	report, err := c.inventory.PlaceSupplierOrder(r.Context(), req.Item, req.Quantity, req.Date)
	if err != nil {
		log.Printf("❌ PlaceSupplierOrder: %v", err)
		http.Error(w, "Failed to place supplier order", http.StatusInternalServerError)
		return
	}

	writeTextReport(w, req.Date, report)
}

// Seed handles POST /admin/seed?date=2025-01-01
func (c *InventoryController) Seed(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Seed: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	stats, err := c.seed.Seed(r.Context(), date)
	if err != nil {
		log.Printf("❌ Seed: %v", err)
		http.Error(w, "Failed to seed catalog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		log.Printf("❌ Seed: Failed to encode response: %v", err)
	}
}

// dateParam reads the date query parameter, defaulting to today. Writes a
// 400 and returns false on a malformed date.
func dateParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return time.Now().Format("2006-01-02"), true
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		log.Printf("❌ dateParam: Invalid date: %s", date)
		http.Error(w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return "", false
	}
	return date, true
}

// writeTextReport wraps a rendered report in the standard JSON envelope
func writeTextReport(w http.ResponseWriter, date string, report string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	payload := struct {
		Date   string `json:"date"`
		Report string `json:"report"`
	}{Date: date, Report: report}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ writeTextReport: Failed to encode response: %v", err)
	}
}
