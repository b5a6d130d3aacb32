package router

import (
	"net/http"

	"github.com/kchia/paperflow-ai/app/controller"
)

type Controllers struct {
	Request   *controller.RequestController
	Inventory *controller.InventoryController
	Finance   *controller.FinanceController
	Quote     *controller.QuoteController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Customer-facing request endpoint
	http.HandleFunc("/requests", controllers.Request.HandleRequest)

	// Inventory routes
	http.HandleFunc("/admin/inventory", controllers.Inventory.GetInventory)
	http.HandleFunc("/admin/inventory/reorder", controllers.Inventory.CheckReorder)

	// Supplier restocking
	http.HandleFunc("/admin/supplier-orders", controllers.Inventory.PlaceSupplierOrder)

	// Financial summary
	http.HandleFunc("/admin/finance/summary", controllers.Finance.GetSummary)

	// Historical quote search
	http.HandleFunc("/admin/quotes/history", controllers.Quote.SearchHistory)

	// Starter catalog seeding
	http.HandleFunc("/admin/seed", controllers.Inventory.Seed)
}
