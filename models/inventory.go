package models

// InventoryItem represents a catalog entry in the inventory reference table
type InventoryItem struct {
	ItemName      string `json:"itemName"`
	UnitPrice     int64  `json:"unitPrice"` // price in cents
	MinStockLevel int    `json:"minStockLevel"`
}
