package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kchia/paperflow-ai/repository"
	"github.com/kchia/paperflow-ai/utils"
)

// FinanceService renders the back-office financial summary
type FinanceService struct {
	transactionRepo repository.TransactionRepositoryInterface
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(transactionRepo repository.TransactionRepositoryInterface) *FinanceService {
	return &FinanceService{transactionRepo: transactionRepo}
}

// Summary renders the company position as of a date: cash, inventory value at
// catalog prices, total assets, highest-value stock and top sellers
func (s *FinanceService) Summary(ctx context.Context, asOf string) (string, error) {
	report, err := s.transactionRepo.FinancialReport(ctx, asOf)
	if err != nil {
		return "", fmt.Errorf("failed to build financial summary: %w", err)
	}

	divider := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString(divider + "\n")
	b.WriteString("FINANCIAL SUMMARY\n")
	b.WriteString(divider + "\n")
	b.WriteString(fmt.Sprintf("As of: %s\n\n", report.AsOf))
	b.WriteString(fmt.Sprintf("Cash Balance:    %s\n", utils.FormatUSD(report.CashBalance)))
	b.WriteString(fmt.Sprintf("Inventory Value: %s\n", utils.FormatUSD(report.InventoryValue)))
	b.WriteString(fmt.Sprintf("Total Assets:    %s\n", utils.FormatUSD(report.TotalAssets)))

	if len(report.InventorySummary) > 0 {
		b.WriteString("\nInventory by value:\n")
		limit := len(report.InventorySummary)
		if limit > 5 {
			limit = 5
		}
		for _, line := range report.InventorySummary[:limit] {
			b.WriteString(fmt.Sprintf("• %s: %d units (%s)\n", line.ItemName, line.Stock, utils.FormatUSD(line.Value)))
		}
	}

	if len(report.TopSellers) > 0 {
		b.WriteString("\nTop sellers by revenue:\n")
		for i, seller := range report.TopSellers {
			b.WriteString(fmt.Sprintf("%d. %s: %d units sold, %s revenue\n",
				i+1, seller.ItemName, seller.TotalUnits, utils.FormatUSD(seller.TotalRevenue)))
		}
	}

	b.WriteString(divider)
	return b.String(), nil
}
