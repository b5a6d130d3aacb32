package repository

import (
	"context"

	"github.com/kchia/paperflow-ai/models"
)

// CatalogRepositoryInterface defines the contract for catalog/stock reads.
// All reads take an explicit as-of date (YYYY-MM-DD), never implicit "now".
type CatalogRepositoryInterface interface {
	CurrentStock(ctx context.Context, itemName string, asOf string) (int, error)
	UnitPrice(ctx context.Context, itemName string) (int64, error)
	MinStockLevel(ctx context.Context, itemName string) (int, error)
	AllItems(ctx context.Context, asOf string) (map[string]int, error)
	UpsertItem(ctx context.Context, item *models.InventoryItem) (inserted bool, err error)
}

// TransactionRepositoryInterface defines the contract for ledger operations
type TransactionRepositoryInterface interface {
	RecordTransaction(ctx context.Context, itemName string, kind string, quantity int, amount int64, date string) (int64, error)
	CashBalance(ctx context.Context, asOf string) (int64, error)
	FinancialReport(ctx context.Context, asOf string) (*models.FinancialReport, error)
}

// QuoteRepositoryInterface defines the contract for the historical quote index
type QuoteRepositoryInterface interface {
	Search(ctx context.Context, keywords []string, limit int) ([]models.PastQuote, error)
}
