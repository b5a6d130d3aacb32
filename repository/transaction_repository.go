package repository

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/kchia/paperflow-ai/db"
	"github.com/kchia/paperflow-ai/models"
)

// TransactionRepository handles database operations for the ledger
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Ensure TransactionRepository implements TransactionRepositoryInterface
var _ TransactionRepositoryInterface = (*TransactionRepository)(nil)

// RecordTransaction commits one ledger transaction and returns its id.
// kind must be 'sales' or 'stock_orders'; amount is in cents and already
// discounted for sales.
func (r *TransactionRepository) RecordTransaction(ctx context.Context, itemName string, kind string, quantity int, amount int64, date string) (int64, error) {
	log.Printf("📦 RecordTransaction: item=%q kind=%s units=%d amount=%d date=%s", itemName, kind, quantity, amount, date)

	if kind != models.TransactionSale && kind != models.TransactionStockOrder {
		log.Printf("❌ RecordTransaction: Invalid kind: %s", kind)
		return 0, fmt.Errorf("transaction kind must be %q or %q", models.TransactionSale, models.TransactionStockOrder)
	}

	if quantity <= 0 {
		log.Printf("❌ RecordTransaction: Invalid quantity: %d", quantity)
		return 0, fmt.Errorf("quantity must be greater than 0")
	}

	query := `
		INSERT INTO transactions (item_name, transaction_type, units, price, transaction_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := db.DB.QueryRowContext(ctx, query, itemName, kind, quantity, amount, date).Scan(&id)
	if err != nil {
		log.Printf("❌ RecordTransaction: Error inserting transaction: %v", err)
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	log.Printf("✅ RecordTransaction: Successfully recorded transaction id=%d", id)
	return id, nil
}

// CashBalance returns the cash position in cents as of a date:
// sales income minus stock-order spend.
func (r *TransactionRepository) CashBalance(ctx context.Context, asOf string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN transaction_type = 'sales' THEN price ELSE -price END), 0)
		FROM transactions
		WHERE transaction_date <= $1
	`

	var balance int64
	if err := db.DB.QueryRowContext(ctx, query, asOf).Scan(&balance); err != nil {
		log.Printf("❌ CashBalance: Error computing balance: %v", err)
		return 0, fmt.Errorf("failed to compute cash balance: %w", err)
	}

	return balance, nil
}

// FinancialReport builds the company position as of a date: cash balance,
// inventory value at catalog prices, total assets, per-item value lines and
// top selling products.
func (r *TransactionRepository) FinancialReport(ctx context.Context, asOf string) (*models.FinancialReport, error) {
	log.Printf("💰 FinancialReport: Building report as of %s", asOf)

	cash, err := r.CashBalance(ctx, asOf)
	if err != nil {
		return nil, err
	}

	queryValue := `
		SELECT i.item_name, i.unit_price,
		       COALESCE(SUM(CASE WHEN t.transaction_type = 'stock_orders' THEN t.units ELSE -t.units END), 0) AS stock
		FROM inventory i
		LEFT JOIN transactions t ON t.item_name = i.item_name AND t.transaction_date <= $1
		GROUP BY i.item_name, i.unit_price
	`

	rows, err := db.DB.QueryContext(ctx, queryValue, asOf)
	if err != nil {
		log.Printf("❌ FinancialReport: Error fetching inventory values: %v", err)
		return nil, fmt.Errorf("failed to fetch inventory values: %w", err)
	}
	defer rows.Close()

	report := &models.FinancialReport{AsOf: asOf, CashBalance: cash}

	for rows.Next() {
		var name string
		var unitPrice int64
		var stock int
		if err := rows.Scan(&name, &unitPrice, &stock); err != nil {
			log.Printf("❌ FinancialReport: Error scanning value row: %v", err)
			continue
		}
		if stock <= 0 {
			continue
		}
		value := unitPrice * int64(stock)
		report.InventoryValue += value
		report.InventorySummary = append(report.InventorySummary, models.InventoryValueLine{
			ItemName: name,
			Stock:    stock,
			Value:    value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory values: %w", err)
	}

	// Highest-value items first for the summary section
	sort.Slice(report.InventorySummary, func(i, j int) bool {
		return report.InventorySummary[i].Value > report.InventorySummary[j].Value
	})

	report.TotalAssets = report.CashBalance + report.InventoryValue

	querySellers := `
		SELECT item_name, SUM(units) AS total_units, SUM(price) AS total_revenue
		FROM transactions
		WHERE transaction_type = 'sales' AND transaction_date <= $1
		GROUP BY item_name
		ORDER BY total_revenue DESC
		LIMIT 5
	`

	sellerRows, err := db.DB.QueryContext(ctx, querySellers, asOf)
	if err != nil {
		log.Printf("❌ FinancialReport: Error fetching top sellers: %v", err)
		return nil, fmt.Errorf("failed to fetch top sellers: %w", err)
	}
	defer sellerRows.Close()

	for sellerRows.Next() {
		var seller models.TopSeller
		if err := sellerRows.Scan(&seller.ItemName, &seller.TotalUnits, &seller.TotalRevenue); err != nil {
			log.Printf("❌ FinancialReport: Error scanning seller row: %v", err)
			continue
		}
		report.TopSellers = append(report.TopSellers, seller)
	}
	if err := sellerRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top sellers: %w", err)
	}

	log.Printf("✅ FinancialReport: cash=%d inventory=%d assets=%d", report.CashBalance, report.InventoryValue, report.TotalAssets)
	return report, nil
}
