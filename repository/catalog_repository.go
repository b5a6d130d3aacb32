package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/kchia/paperflow-ai/db"
	"github.com/kchia/paperflow-ai/models"
)

// ErrItemNotFound is returned when an item is not in the inventory catalog
var ErrItemNotFound = errors.New("item not found in catalog")

// CatalogRepository handles database operations for the inventory catalog.
// Stock is never stored directly: it is derived from the transactions ledger
// (stock orders in, sales out) as of an explicit date.
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// UnitPrice returns the catalog unit price in cents for an item
func (r *CatalogRepository) UnitPrice(ctx context.Context, itemName string) (int64, error) {
	query := `SELECT unit_price FROM inventory WHERE item_name = $1`

	var unitPrice int64
	err := db.DB.QueryRowContext(ctx, query, itemName).Scan(&unitPrice)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrItemNotFound
		}
		log.Printf("❌ UnitPrice: Error fetching price for %q: %v", itemName, err)
		return 0, fmt.Errorf("failed to fetch unit price: %w", err)
	}

	return unitPrice, nil
}

// MinStockLevel returns the minimum stock level for an item
func (r *CatalogRepository) MinStockLevel(ctx context.Context, itemName string) (int, error) {
	query := `SELECT min_stock_level FROM inventory WHERE item_name = $1`

	var minStock int
	err := db.DB.QueryRowContext(ctx, query, itemName).Scan(&minStock)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrItemNotFound
		}
		log.Printf("❌ MinStockLevel: Error fetching min stock for %q: %v", itemName, err)
		return 0, fmt.Errorf("failed to fetch min stock level: %w", err)
	}

	return minStock, nil
}

// CurrentStock returns the units available for an item as of a date.
// Stock = sum of stock orders minus sum of sales up to and including asOf.
func (r *CatalogRepository) CurrentStock(ctx context.Context, itemName string, asOf string) (int, error) {
	// The item must exist in the catalog; an unknown name is a hard miss,
	// not zero stock.
	var exists bool
	queryExists := `SELECT EXISTS(SELECT 1 FROM inventory WHERE item_name = $1)`
	if err := db.DB.QueryRowContext(ctx, queryExists, itemName).Scan(&exists); err != nil {
		log.Printf("❌ CurrentStock: Error checking catalog for %q: %v", itemName, err)
		return 0, fmt.Errorf("failed to check catalog: %w", err)
	}
	if !exists {
		return 0, ErrItemNotFound
	}

	query := `
		SELECT COALESCE(SUM(CASE WHEN transaction_type = 'stock_orders' THEN units ELSE -units END), 0)
		FROM transactions
		WHERE item_name = $1 AND transaction_date <= $2
	`

	var stock int
	if err := db.DB.QueryRowContext(ctx, query, itemName, asOf).Scan(&stock); err != nil {
		log.Printf("❌ CurrentStock: Error computing stock for %q: %v", itemName, err)
		return 0, fmt.Errorf("failed to compute stock: %w", err)
	}

	return stock, nil
}

// AllItems returns every catalog item mapped to its stock as of a date.
// Items with zero or negative stock are included so callers can distinguish
// "out of stock" from "not in catalog".
func (r *CatalogRepository) AllItems(ctx context.Context, asOf string) (map[string]int, error) {
	query := `
		SELECT i.item_name,
		       COALESCE(SUM(CASE WHEN t.transaction_type = 'stock_orders' THEN t.units ELSE -t.units END), 0) AS stock
		FROM inventory i
		LEFT JOIN transactions t ON t.item_name = i.item_name AND t.transaction_date <= $1
		GROUP BY i.item_name
	`

	rows, err := db.DB.QueryContext(ctx, query, asOf)
	if err != nil {
		log.Printf("❌ AllItems: Error fetching inventory snapshot: %v", err)
		return nil, fmt.Errorf("failed to fetch inventory snapshot: %w", err)
	}
	defer rows.Close()

	items := make(map[string]int)
	for rows.Next() {
		var name string
		var stock int
		if err := rows.Scan(&name, &stock); err != nil {
			log.Printf("❌ AllItems: Error scanning row: %v", err)
			continue
		}
		items[name] = stock
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory snapshot: %w", err)
	}

	return items, nil
}

// UpsertItem inserts a catalog item, skipping names that already exist.
// Returns whether a new row was created.
func (r *CatalogRepository) UpsertItem(ctx context.Context, item *models.InventoryItem) (bool, error) {
	query := `
		INSERT INTO inventory (item_name, unit_price, min_stock_level)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_name) DO NOTHING
	`

	result, err := db.DB.ExecContext(ctx, query, item.ItemName, item.UnitPrice, item.MinStockLevel)
	if err != nil {
		log.Printf("❌ UpsertItem: Error inserting %q: %v", item.ItemName, err)
		return false, fmt.Errorf("failed to insert catalog item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}

	return affected > 0, nil
}
