package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kchia/paperflow-ai/models"
)

func TestDecideFulfilledWhenStockCoversQuantity(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("A4 paper", 5, 500, 2000)
	svc := NewFulfillmentService(catalog)

	decision := svc.Decide(context.Background(), "A4 paper", 200, "2025-01-15")
	assert.Equal(t, models.StatusFulfilled, decision.Status)
	assert.Equal(t, 200, decision.Quantity)
	assert.Equal(t, 200, decision.Available)
	assert.Equal(t, 0, decision.Backordered)
}

func TestDecidePartialWhenStockInsufficient(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("cardstock", 15, 200, 30)
	svc := NewFulfillmentService(catalog)

	decision := svc.Decide(context.Background(), "cardstock", 100, "2025-01-15")
	assert.Equal(t, models.StatusPartiallyFulfilled, decision.Status)
	assert.Equal(t, 100, decision.Quantity)
	assert.Equal(t, 30, decision.Available)
	assert.Equal(t, 70, decision.Backordered)
}

func TestDecideRejectedWhenOutOfStock(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("poster board", 95, 50, 0)
	svc := NewFulfillmentService(catalog)

	decision := svc.Decide(context.Background(), "poster board", 10, "2025-01-15")
	assert.Equal(t, models.StatusRejected, decision.Status)
	assert.Equal(t, models.ReasonOutOfStock, decision.Reason)
}

func TestDecideRejectedWhenItemUnknown(t *testing.T) {
	catalog := newMemCatalog()
	svc := NewFulfillmentService(catalog)

	decision := svc.Decide(context.Background(), "industrial laminator", 10, "2025-01-15")
	assert.Equal(t, models.StatusRejected, decision.Status)
	assert.Equal(t, models.ReasonItemNotFound, decision.Reason)
}

func TestDecideRejectedOnStockError(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("A4 paper", 5, 500, 2000)
	catalog.fail = true
	svc := NewFulfillmentService(catalog)

	decision := svc.Decide(context.Background(), "A4 paper", 10, "2025-01-15")
	assert.Equal(t, models.StatusRejected, decision.Status)
}

func TestGuidanceForPartialListsOptions(t *testing.T) {
	decision := models.PartiallyFulfilled(30, 70)
	guidance := decision.Guidance()

	assert.Contains(t, guidance, "Accept 30 units now")
	assert.Contains(t, guidance, "30 units now + 70 units")
	assert.Contains(t, guidance, models.RestockLeadTime)
}
