package service

import (
	"context"
	"errors"
	"strings"

	"github.com/kchia/paperflow-ai/models"
	"github.com/kchia/paperflow-ai/repository"
)

// memCatalog is an in-memory catalog with fixed stock levels
type memCatalog struct {
	items map[string]models.InventoryItem
	stock map[string]int
	fail  bool
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		items: make(map[string]models.InventoryItem),
		stock: make(map[string]int),
	}
}

func (c *memCatalog) add(name string, unitPrice int64, minStock int, stock int) {
	c.items[name] = models.InventoryItem{ItemName: name, UnitPrice: unitPrice, MinStockLevel: minStock}
	c.stock[name] = stock
}

func (c *memCatalog) CurrentStock(ctx context.Context, itemName string, asOf string) (int, error) {
	if c.fail {
		return 0, errors.New("catalog unavailable")
	}
	if _, ok := c.items[itemName]; !ok {
		return 0, repository.ErrItemNotFound
	}
	return c.stock[itemName], nil
}

func (c *memCatalog) UnitPrice(ctx context.Context, itemName string) (int64, error) {
	if c.fail {
		return 0, errors.New("catalog unavailable")
	}
	item, ok := c.items[itemName]
	if !ok {
		return 0, repository.ErrItemNotFound
	}
	return item.UnitPrice, nil
}

func (c *memCatalog) MinStockLevel(ctx context.Context, itemName string) (int, error) {
	if c.fail {
		return 0, errors.New("catalog unavailable")
	}
	item, ok := c.items[itemName]
	if !ok {
		return 0, repository.ErrItemNotFound
	}
	return item.MinStockLevel, nil
}

func (c *memCatalog) AllItems(ctx context.Context, asOf string) (map[string]int, error) {
	if c.fail {
		return nil, errors.New("catalog unavailable")
	}
	snapshot := make(map[string]int, len(c.items))
	for name := range c.items {
		snapshot[name] = c.stock[name]
	}
	return snapshot, nil
}

func (c *memCatalog) UpsertItem(ctx context.Context, item *models.InventoryItem) (bool, error) {
	if c.fail {
		return false, errors.New("catalog unavailable")
	}
	if _, ok := c.items[item.ItemName]; ok {
		return false, nil
	}
	c.items[item.ItemName] = *item
	return true, nil
}

// memLedger is an in-memory transaction ledger
type memLedger struct {
	records []models.TransactionRecord
	nextID  int64
	cash    int64
	fail    bool
}

func newMemLedger(openingCash int64) *memLedger {
	return &memLedger{nextID: 1, cash: openingCash}
}

func (l *memLedger) RecordTransaction(ctx context.Context, itemName string, kind string, quantity int, amount int64, date string) (int64, error) {
	if l.fail {
		return 0, errors.New("ledger unavailable")
	}
	id := l.nextID
	l.nextID++
	l.records = append(l.records, models.TransactionRecord{
		ID: id, ItemName: itemName, Kind: kind, Quantity: quantity, Amount: amount, Date: date,
	})
	if kind == models.TransactionSale {
		l.cash += amount
	} else {
		l.cash -= amount
	}
	return id, nil
}

func (l *memLedger) CashBalance(ctx context.Context, asOf string) (int64, error) {
	if l.fail {
		return 0, errors.New("ledger unavailable")
	}
	return l.cash, nil
}

func (l *memLedger) FinancialReport(ctx context.Context, asOf string) (*models.FinancialReport, error) {
	if l.fail {
		return nil, errors.New("ledger unavailable")
	}
	return &models.FinancialReport{AsOf: asOf, CashBalance: l.cash, TotalAssets: l.cash}, nil
}

func (l *memLedger) salesFor(itemName string) []models.TransactionRecord {
	var sales []models.TransactionRecord
	for _, rec := range l.records {
		if rec.Kind == models.TransactionSale && rec.ItemName == itemName {
			sales = append(sales, rec)
		}
	}
	return sales
}

// memQuoteIndex is an in-memory historical quote index with naive keyword
// matching
type memQuoteIndex struct {
	quotes []models.PastQuote
	fail   bool
}

func (q *memQuoteIndex) Search(ctx context.Context, keywords []string, limit int) ([]models.PastQuote, error) {
	if q.fail {
		return nil, errors.New("quote index unavailable")
	}
	var hits []models.PastQuote
	for _, quote := range q.quotes {
		haystack := strings.ToLower(quote.JobType + " " + quote.EventType + " " + quote.Explanation)
		for _, kw := range keywords {
			if kw != "" && strings.Contains(haystack, strings.ToLower(kw)) {
				hits = append(hits, quote)
				break
			}
		}
		if limit > 0 && len(hits) >= limit {
			break
		}
	}
	return hits, nil
}
