package pricing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/kchia/paperflow-ai/models"
	"github.com/kchia/paperflow-ai/repository"
)

// ErrNoPrice is returned when an item has no catalog price
var ErrNoPrice = errors.New("no catalog price for item")

// Tier is one volume-discount bracket. Tiers are matched top-down, so the
// table must stay ordered by MinQuantity descending.
type Tier struct {
	MinQuantity int
	Rate        float64
	Label       string
}

// Tiers is the volume discount table applied to every quote and sale
var Tiers = []Tier{
	{MinQuantity: 1000, Rate: 0.25, Label: "25% bulk discount (1000+ units)"},
	{MinQuantity: 500, Rate: 0.20, Label: "20% volume discount (500-999 units)"},
	{MinQuantity: 100, Rate: 0.10, Label: "10% volume discount (100-499 units)"},
	{MinQuantity: 1, Rate: 0, Label: "standard pricing (under 100 units)"},
}

// DiscountRate returns the discount rate for a quantity
func DiscountRate(quantity int) float64 {
	for _, tier := range Tiers {
		if quantity >= tier.MinQuantity {
			return tier.Rate
		}
	}
	return 0
}

// TierLabel returns the human-readable label of the bracket a quantity
// falls into
func TierLabel(quantity int) string {
	for _, tier := range Tiers {
		if quantity >= tier.MinQuantity {
			return tier.Label
		}
	}
	return Tiers[len(Tiers)-1].Label
}

// Engine computes tiered prices from catalog unit prices
type Engine struct {
	catalogRepo repository.CatalogRepositoryInterface
}

// NewEngine creates a new pricing Engine
func NewEngine(catalogRepo repository.CatalogRepositoryInterface) *Engine {
	return &Engine{catalogRepo: catalogRepo}
}

// Quote prices one (item, quantity) pair. The item name must already be a
// canonical catalog name. All amounts are in cents; the discounted total is
// rounded to the nearest cent.
func (e *Engine) Quote(ctx context.Context, itemName string, quantity int) (*models.PriceQuote, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than 0, got %d", quantity)
	}

	unitPrice, err := e.catalogRepo.UnitPrice(ctx, itemName)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrNoPrice, itemName)
		}
		return nil, fmt.Errorf("failed to price %q: %w", itemName, err)
	}

	rate := DiscountRate(quantity)
	basePrice := unitPrice * int64(quantity)
	finalPrice := int64(math.Round(float64(basePrice) * (1 - rate)))

	log.Printf("💰 Quote: item=%q qty=%d base=%d rate=%.2f final=%d", itemName, quantity, basePrice, rate, finalPrice)

	return &models.PriceQuote{
		Item:         itemName,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		DiscountRate: rate,
		BasePrice:    basePrice,
		FinalPrice:   finalPrice,
	}, nil
}
