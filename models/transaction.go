package models

// Transaction kinds recorded in the ledger
const (
	TransactionSale       = "sales"
	TransactionStockOrder = "stock_orders"
)

// TransactionRecord is a committed ledger transaction. The ledger owns the
// row; the engine only keeps the returned identifier.
type TransactionRecord struct {
	ID       int64  `json:"id"`
	ItemName string `json:"itemName"`
	Kind     string `json:"kind"` // 'sales' or 'stock_orders'
	Quantity int    `json:"quantity"`
	Amount   int64  `json:"amount"` // cents, discounted for sales
	Date     string `json:"date"`   // YYYY-MM-DD
}
