package models

// InventoryValueLine is one item's contribution to inventory value
type InventoryValueLine struct {
	ItemName string `json:"itemName"`
	Stock    int    `json:"stock"`
	Value    int64  `json:"value"` // cents
}

// TopSeller is one item's sales totals
type TopSeller struct {
	ItemName     string `json:"itemName"`
	TotalUnits   int    `json:"totalUnits"`
	TotalRevenue int64  `json:"totalRevenue"` // cents
}

// FinancialReport is the company position as of a date
type FinancialReport struct {
	AsOf             string               `json:"asOf"`
	CashBalance      int64                `json:"cashBalance"`    // cents
	InventoryValue   int64                `json:"inventoryValue"` // cents
	TotalAssets      int64                `json:"totalAssets"`    // cents
	InventorySummary []InventoryValueLine `json:"inventorySummary"`
	TopSellers       []TopSeller          `json:"topSellers"`
}
