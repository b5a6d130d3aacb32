package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kchia/paperflow-ai/models"
	"github.com/kchia/paperflow-ai/pricing"
)

func newTestOrderService(catalog *memCatalog, ledger *memLedger) *OrderService {
	resolver := NewResolverService(catalog)
	fulfillment := NewFulfillmentService(catalog)
	engine := pricing.NewEngine(catalog)
	return NewOrderService(resolver, fulfillment, engine, ledger)
}

func TestProcessOrderMultiItemCommitsEachFulfillableLine(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("A4 paper", 10, 500, 500)
	catalog.add("cardstock", 100, 200, 100)
	ledger := newMemLedger(0)
	svc := newTestOrderService(catalog, ledger)

	request := "- 200 sheets of A4 paper\n- 50 units of cardstock"
	outcome := svc.ProcessOrder(context.Background(), request, "2025-01-15")
	require.NotNil(t, outcome)

	require.Len(t, outcome.Completed, 2)
	assert.Empty(t, outcome.Rejected)

	// 200 × 10¢ at 10% off = $18.00; 50 × $1.00 undiscounted = $50.00
	assert.Equal(t, int64(1800), outcome.Completed[0].Quote.FinalPrice)
	assert.Equal(t, int64(5000), outcome.Completed[1].Quote.FinalPrice)
	assert.Equal(t, int64(6800), outcome.TotalAmount)

	require.Len(t, ledger.records, 2)
	assert.Equal(t, models.TransactionSale, ledger.records[0].Kind)
	assert.Equal(t, "A4 paper", ledger.records[0].ItemName)
	assert.Equal(t, "cardstock", ledger.records[1].ItemName)
}

func TestProcessOrderRejectedLineDoesNotBlockOthers(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("A4 paper", 10, 500, 500)
	catalog.add("cardstock", 100, 200, 0)
	ledger := newMemLedger(0)
	svc := newTestOrderService(catalog, ledger)

	request := "- 200 sheets of A4 paper\n- 50 units of cardstock"
	outcome := svc.ProcessOrder(context.Background(), request, "2025-01-15")
	require.NotNil(t, outcome)

	require.Len(t, outcome.Completed, 1)
	assert.Equal(t, "A4 paper", outcome.Completed[0].Quote.Item)

	require.Len(t, outcome.Rejected, 1)
	assert.Equal(t, models.ReasonOutOfStock, outcome.Rejected[0].Reason)
	assert.Equal(t, 1, outcome.Rejected[0].Index)

	// Only the fulfillable line commits
	require.Len(t, ledger.records, 1)
	assert.Equal(t, "A4 paper", ledger.records[0].ItemName)
	assert.Equal(t, int64(1800), outcome.TotalAmount)
}

func TestProcessOrderPartialStockLineIsNotCommitted(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("cardstock", 100, 200, 30)
	ledger := newMemLedger(0)
	svc := newTestOrderService(catalog, ledger)

	outcome := svc.ProcessOrder(context.Background(), "100 units of cardstock", "2025-01-15")
	require.NotNil(t, outcome)

	assert.Empty(t, outcome.Completed)
	require.Len(t, outcome.Rejected, 1)
	assert.Equal(t, models.StatusPartiallyFulfilled, outcome.Rejected[0].Decision.Status)
	assert.Empty(t, ledger.salesFor("cardstock"))
}

func TestProcessOrderUnknownItemRejectedAsNotFound(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("A4 paper", 10, 500, 500)
	ledger := newMemLedger(0)
	svc := newTestOrderService(catalog, ledger)

	outcome := svc.ProcessOrder(context.Background(), "10 units of industrial laminator", "2025-01-15")
	require.NotNil(t, outcome)

	assert.True(t, outcome.AllRejected())
	require.Len(t, outcome.Rejected, 1)
	assert.Equal(t, models.ReasonItemNotFound, outcome.Rejected[0].Reason)
	assert.Empty(t, ledger.records)
}

func TestProcessOrderLedgerErrorRejectsLine(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("A4 paper", 10, 500, 500)
	ledger := newMemLedger(0)
	ledger.fail = true
	svc := newTestOrderService(catalog, ledger)

	outcome := svc.ProcessOrder(context.Background(), "200 sheets of A4 paper", "2025-01-15")
	require.NotNil(t, outcome)

	assert.True(t, outcome.AllRejected())
	require.Len(t, outcome.Rejected, 1)
	assert.Contains(t, outcome.Rejected[0].Reason, "transaction failed")
}

func TestProcessOrderTextRendersConfirmation(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("A4 paper", 10, 500, 500)
	catalog.add("cardstock", 100, 200, 100)
	ledger := newMemLedger(10000)
	svc := newTestOrderService(catalog, ledger)

	request := "- 200 sheets of A4 paper\n- 50 units of cardstock"
	text := svc.ProcessOrderText(context.Background(), request, "2025-01-15")

	assert.Contains(t, text, "ORDER CONFIRMATION")
	assert.Contains(t, text, "✅ 200 x A4 paper")
	assert.Contains(t, text, "✅ 50 x cardstock")
	assert.Contains(t, text, "Transaction ID: 1")
	assert.Contains(t, text, "Transaction ID: 2")
	assert.Contains(t, text, "TOTAL SALE: $68.00")
	assert.Contains(t, text, "Updated Cash Balance: $168.00")
	assert.Contains(t, text, "Thank you for your business!")
	assert.NotContains(t, text, "ITEMS NOT FULFILLED")
}

func TestProcessOrderTextAllRejectedExplainsIssues(t *testing.T) {
	catalog := newMemCatalog()
	catalog.add("cardstock", 100, 200, 0)
	ledger := newMemLedger(0)
	svc := newTestOrderService(catalog, ledger)

	text := svc.ProcessOrderText(context.Background(), "50 units of cardstock", "2025-01-15")

	assert.Contains(t, text, "We cannot fulfill your order")
	assert.Contains(t, text, models.ReasonOutOfStock)
	assert.NotContains(t, text, "ORDER CONFIRMATION")
	assert.NotContains(t, text, "TOTAL SALE")
}

func TestProcessOrderTextUnparsableRequest(t *testing.T) {
	catalog := newMemCatalog()
	ledger := newMemLedger(0)
	svc := newTestOrderService(catalog, ledger)

	text := svc.ProcessOrderText(context.Background(), "please send me some paper soon", "2025-01-15")
	assert.Equal(t, "Unable to process order. Please check item names and quantities.", text)
}
