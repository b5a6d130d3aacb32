package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/kchia/paperflow-ai/models"
	"github.com/kchia/paperflow-ai/repository"
	"github.com/kchia/paperflow-ai/utils"
)

// InventoryService answers stock questions and manages supplier restocking
type InventoryService struct {
	resolver        *ResolverService
	catalogRepo     repository.CatalogRepositoryInterface
	transactionRepo repository.TransactionRepositoryInterface
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	resolver *ResolverService,
	catalogRepo repository.CatalogRepositoryInterface,
	transactionRepo repository.TransactionRepositoryInterface,
) *InventoryService {
	return &InventoryService{
		resolver:        resolver,
		catalogRepo:     catalogRepo,
		transactionRepo: transactionRepo,
	}
}

// CheckStock reports the units available for an item as of a date
func (s *InventoryService) CheckStock(ctx context.Context, itemName string, asOf string) (string, error) {
	resolved := s.resolver.Resolve(ctx, itemName, asOf)
	if !resolved.Matched() {
		return fmt.Sprintf("ITEM NOT FOUND: %q is not in our catalog.", itemName), nil
	}

	stock, err := s.catalogRepo.CurrentStock(ctx, resolved.CanonicalName, asOf)
	if err != nil {
		return "", fmt.Errorf("failed to check stock for %q: %w", resolved.CanonicalName, err)
	}

	if stock <= 0 {
		return fmt.Sprintf("OUT OF STOCK: '%s' has no units available as of %s. Restock expected in %s.",
			resolved.CanonicalName, asOf, models.RestockLeadTime), nil
	}

	return fmt.Sprintf("IN STOCK: '%s' has %d units available as of %s.", resolved.CanonicalName, stock, asOf), nil
}

// ListAvailable lists every catalog item with positive stock as of a date,
// alphabetically
func (s *InventoryService) ListAvailable(ctx context.Context, asOf string) (string, error) {
	items, err := s.catalogRepo.AllItems(ctx, asOf)
	if err != nil {
		return "", fmt.Errorf("failed to list inventory: %w", err)
	}

	names := make([]string, 0, len(items))
	for name, stock := range items {
		if stock > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return fmt.Sprintf("No items in stock as of %s.", asOf), nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Available items (%d total) as of %s:\n", len(names), asOf))
	for _, name := range names {
		b.WriteString(fmt.Sprintf("• %s: %d units\n", name, items[name]))
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// CheckReorder compares stock against the minimum level and recommends a
// reorder quantity of three times the minimum minus current stock. Stock at
// exactly the minimum already triggers a reorder.
func (s *InventoryService) CheckReorder(ctx context.Context, itemName string, asOf string) (string, error) {
	resolved := s.resolver.Resolve(ctx, itemName, asOf)
	if !resolved.Matched() {
		return fmt.Sprintf("ITEM NOT FOUND: %q is not in our catalog.", itemName), nil
	}

	stock, err := s.catalogRepo.CurrentStock(ctx, resolved.CanonicalName, asOf)
	if err != nil {
		return "", fmt.Errorf("failed to check stock for %q: %w", resolved.CanonicalName, err)
	}

	minStock, err := s.catalogRepo.MinStockLevel(ctx, resolved.CanonicalName)
	if err != nil {
		return "", fmt.Errorf("failed to fetch min stock level for %q: %w", resolved.CanonicalName, err)
	}

	if stock <= minStock {
		recommended := minStock*3 - stock
		return fmt.Sprintf("REORDER NEEDED: '%s' has %d units, at or below the minimum of %d. "+
			"Recommend ordering at least %d units to restore a healthy buffer.",
			resolved.CanonicalName, stock, minStock, recommended), nil
	}

	return fmt.Sprintf("STOCK OK: '%s' has %d units, above the minimum of %d. Buffer of %d units.",
		resolved.CanonicalName, stock, minStock, stock-minStock), nil
}

// PlaceSupplierOrder commits a stock-order transaction at catalog cost and
// reports the expected delivery date
func (s *InventoryService) PlaceSupplierOrder(ctx context.Context, itemName string, quantity int, date string) (string, error) {
	log.Printf("📥 PlaceSupplierOrder: item=%q qty=%d date=%s", itemName, quantity, date)

	if quantity <= 0 {
		return "", fmt.Errorf("quantity must be greater than 0, got %d", quantity)
	}

	resolved := s.resolver.Resolve(ctx, itemName, date)
	if !resolved.Matched() {
		return fmt.Sprintf("ITEM NOT FOUND: %q is not in our catalog. Supplier orders require a known catalog item.", itemName), nil
	}

	unitPrice, err := s.catalogRepo.UnitPrice(ctx, resolved.CanonicalName)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return fmt.Sprintf("ITEM NOT FOUND: %q is not in our catalog.", itemName), nil
		}
		return "", fmt.Errorf("failed to price supplier order for %q: %w", resolved.CanonicalName, err)
	}

	cost := unitPrice * int64(quantity)
	delivery, err := SupplierDeliveryDate(date, quantity)
	if err != nil {
		return "", err
	}

	txnID, err := s.transactionRepo.RecordTransaction(ctx, resolved.CanonicalName, models.TransactionStockOrder, quantity, cost, date)
	if err != nil {
		return "", fmt.Errorf("failed to record supplier order: %w", err)
	}

	log.Printf("✅ PlaceSupplierOrder: id=%d cost=%d delivery=%s", txnID, cost, delivery)

	return fmt.Sprintf("✅ SUPPLIER ORDER PLACED (ID: %d)\nItem: %s\nQuantity: %d units\nCost: %s\nExpected Delivery: %s",
		txnID, resolved.CanonicalName, quantity, utils.FormatUSD(cost), delivery), nil
}

// SupplierDeliveryDate returns the expected delivery date (YYYY-MM-DD) for a
// supplier order placed on a date. Lead time scales with quantity: 1 day up
// to 10 units, 4 days up to 100, 7 days up to 1000, 14 days beyond.
func SupplierDeliveryDate(orderDate string, quantity int) (string, error) {
	placed, err := time.Parse("2006-01-02", orderDate)
	if err != nil {
		return "", fmt.Errorf("invalid order date %q: %w", orderDate, err)
	}

	var leadDays int
	switch {
	case quantity <= 10:
		leadDays = 1
	case quantity <= 100:
		leadDays = 4
	case quantity <= 1000:
		leadDays = 7
	default:
		leadDays = 14
	}

	return placed.AddDate(0, 0, leadDays).Format("2006-01-02"), nil
}
