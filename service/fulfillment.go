package service

import (
	"context"
	"errors"
	"log"

	"github.com/kchia/paperflow-ai/models"
	"github.com/kchia/paperflow-ai/repository"
)

// FulfillmentService decides whether requested quantities can ship from
// current stock
type FulfillmentService struct {
	catalogRepo repository.CatalogRepositoryInterface
}

// NewFulfillmentService creates a new FulfillmentService
func NewFulfillmentService(catalogRepo repository.CatalogRepositoryInterface) *FulfillmentService {
	return &FulfillmentService{catalogRepo: catalogRepo}
}

// Decide checks stock for one canonical item name as of a date and classifies
// the line as fulfilled, partially fulfilled or rejected. Stock errors other
// than a missing catalog entry reject the line so no sale commits on unknown
// inventory.
func (s *FulfillmentService) Decide(ctx context.Context, itemName string, quantity int, asOf string) models.FulfillmentDecision {
	if quantity <= 0 {
		return models.Rejected(quantity, "invalid quantity")
	}

	stock, err := s.catalogRepo.CurrentStock(ctx, itemName, asOf)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return models.Rejected(quantity, models.ReasonItemNotFound)
		}
		log.Printf("❌ Decide: Stock check failed for %q: %v", itemName, err)
		return models.Rejected(quantity, models.ReasonOutOfStock)
	}

	switch {
	case stock <= 0:
		return models.Rejected(quantity, models.ReasonOutOfStock)
	case stock < quantity:
		return models.PartiallyFulfilled(stock, quantity-stock)
	default:
		return models.Fulfilled(quantity)
	}
}
