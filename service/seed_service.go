package service

import (
	"context"
	"fmt"
	"log"

	"github.com/kchia/paperflow-ai/models"
	"github.com/kchia/paperflow-ai/repository"
)

// seedItem is one starter catalog entry with its opening stock order
type seedItem struct {
	item         models.InventoryItem
	initialStock int
}

// starterCatalog is the paper products sold out of the box. Prices are in
// cents per unit.
var starterCatalog = []seedItem{
	{models.InventoryItem{ItemName: "A4 paper", UnitPrice: 5, MinStockLevel: 500}, 2000},
	{models.InventoryItem{ItemName: "letter-sized paper", UnitPrice: 6, MinStockLevel: 500}, 1500},
	{models.InventoryItem{ItemName: "cardstock", UnitPrice: 15, MinStockLevel: 200}, 800},
	{models.InventoryItem{ItemName: "colored paper", UnitPrice: 10, MinStockLevel: 300}, 1000},
	{models.InventoryItem{ItemName: "glossy paper", UnitPrice: 20, MinStockLevel: 100}, 500},
	{models.InventoryItem{ItemName: "matte paper", UnitPrice: 18, MinStockLevel: 100}, 500},
	{models.InventoryItem{ItemName: "recycled paper", UnitPrice: 8, MinStockLevel: 300}, 1200},
	{models.InventoryItem{ItemName: "envelopes", UnitPrice: 7, MinStockLevel: 400}, 1500},
	{models.InventoryItem{ItemName: "wedding invitation cards", UnitPrice: 150, MinStockLevel: 50}, 200},
	{models.InventoryItem{ItemName: "poster board", UnitPrice: 95, MinStockLevel: 50}, 150},
	{models.InventoryItem{ItemName: "construction paper", UnitPrice: 9, MinStockLevel: 200}, 600},
	{models.InventoryItem{ItemName: "sticky notes", UnitPrice: 45, MinStockLevel: 100}, 300},
}

// SeedStats summarizes one seeding run
type SeedStats struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

// SeedService loads the starter catalog into the database
type SeedService struct {
	catalogRepo     repository.CatalogRepositoryInterface
	transactionRepo repository.TransactionRepositoryInterface
}

// NewSeedService creates a new SeedService
func NewSeedService(
	catalogRepo repository.CatalogRepositoryInterface,
	transactionRepo repository.TransactionRepositoryInterface,
) *SeedService {
	return &SeedService{catalogRepo: catalogRepo, transactionRepo: transactionRepo}
}

// Seed inserts the starter catalog, skipping items that already exist.
// Opening stock is recorded as a stock-order transaction dated asOf, only for
// items inserted by this run, so reseeding never double-counts inventory.
func (s *SeedService) Seed(ctx context.Context, asOf string) (*SeedStats, error) {
	log.Printf("📥 Seed: Loading starter catalog (%d items) as of %s", len(starterCatalog), asOf)

	stats := &SeedStats{Total: len(starterCatalog)}

	for _, entry := range starterCatalog {
		item := entry.item
		inserted, err := s.catalogRepo.UpsertItem(ctx, &item)
		if err != nil {
			return nil, fmt.Errorf("failed to seed %q: %w", item.ItemName, err)
		}

		if !inserted {
			stats.Skipped++
			continue
		}

		cost := item.UnitPrice * int64(entry.initialStock)
		if _, err := s.transactionRepo.RecordTransaction(ctx, item.ItemName, models.TransactionStockOrder, entry.initialStock, cost, asOf); err != nil {
			return nil, fmt.Errorf("failed to record opening stock for %q: %w", item.ItemName, err)
		}

		stats.Inserted++
	}

	log.Printf("✅ Seed: %d inserted, %d skipped, %d total", stats.Inserted, stats.Skipped, stats.Total)
	return stats, nil
}
