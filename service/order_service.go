package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/kchia/paperflow-ai/models"
	"github.com/kchia/paperflow-ai/pricing"
	"github.com/kchia/paperflow-ai/repository"
	"github.com/kchia/paperflow-ai/utils"
)

// OrderService executes multi-item sales orders against the ledger
type OrderService struct {
	resolver        *ResolverService
	fulfillment     *FulfillmentService
	engine          *pricing.Engine
	transactionRepo repository.TransactionRepositoryInterface
}

// NewOrderService creates a new OrderService
func NewOrderService(
	resolver *ResolverService,
	fulfillment *FulfillmentService,
	engine *pricing.Engine,
	transactionRepo repository.TransactionRepositoryInterface,
) *OrderService {
	return &OrderService{
		resolver:        resolver,
		fulfillment:     fulfillment,
		engine:          engine,
		transactionRepo: transactionRepo,
	}
}

// ProcessOrder parses a free-text order and commits a sales transaction per
// fulfillable line. Each line is independent: a rejected line never blocks
// the others, and nothing commits for partially stocked lines. Returns nil
// when no line items could be parsed at all.
func (s *OrderService) ProcessOrder(ctx context.Context, requestText string, date string) *models.MultiItemOutcome {
	log.Printf("📥 ProcessOrder: date=%s request=%q", date, requestText)

	lines := utils.ParseLineItems(requestText)
	if len(lines) == 0 {
		log.Printf("⚠️ ProcessOrder: No line items parsed")
		return nil
	}

	outcome := &models.MultiItemOutcome{}

	for i, line := range lines {
		resolved := s.resolver.Resolve(ctx, line.RawDescription, date)
		if !resolved.Matched() {
			outcome.Rejected = append(outcome.Rejected, models.RejectedLine{
				Index:         i,
				RequestedName: line.RawDescription,
				Reason:        models.ReasonItemNotFound,
				Decision:      models.Rejected(line.Quantity, models.ReasonItemNotFound),
			})
			continue
		}

		decision := s.fulfillment.Decide(ctx, resolved.CanonicalName, line.Quantity, date)
		if decision.Status != models.StatusFulfilled {
			reason := decision.Reason
			if decision.Status == models.StatusPartiallyFulfilled {
				reason = fmt.Sprintf("insufficient stock (only %d of %d available)", decision.Available, decision.Quantity)
			}
			outcome.Rejected = append(outcome.Rejected, models.RejectedLine{
				Index:         i,
				RequestedName: line.RawDescription,
				Reason:        reason,
				Decision:      decision,
			})
			continue
		}

		quote, err := s.engine.Quote(ctx, resolved.CanonicalName, line.Quantity)
		if err != nil {
			log.Printf("⚠️ ProcessOrder: Pricing failed for %q: %v", resolved.CanonicalName, err)
			outcome.Rejected = append(outcome.Rejected, models.RejectedLine{
				Index:         i,
				RequestedName: line.RawDescription,
				Reason:        "pricing not available",
				Decision:      decision,
			})
			continue
		}

		txnID, err := s.transactionRepo.RecordTransaction(ctx, resolved.CanonicalName, models.TransactionSale, quote.Quantity, quote.FinalPrice, date)
		if err != nil {
			log.Printf("❌ ProcessOrder: Transaction failed for %q: %v", resolved.CanonicalName, err)
			outcome.Rejected = append(outcome.Rejected, models.RejectedLine{
				Index:         i,
				RequestedName: line.RawDescription,
				Reason:        fmt.Sprintf("transaction failed: %v", err),
				Decision:      decision,
			})
			continue
		}

		outcome.Completed = append(outcome.Completed, models.CompletedLine{
			Index:    i,
			Resolved: resolved,
			Quote:    *quote,
			Transaction: models.TransactionRecord{
				ID:       txnID,
				ItemName: resolved.CanonicalName,
				Kind:     models.TransactionSale,
				Quantity: quote.Quantity,
				Amount:   quote.FinalPrice,
				Date:     date,
			},
		})
		outcome.TotalAmount += quote.FinalPrice
	}

	log.Printf("✅ ProcessOrder: %d completed, %d rejected, total=%d", len(outcome.Completed), len(outcome.Rejected), outcome.TotalAmount)
	return outcome
}

// ProcessOrderText runs ProcessOrder and renders the customer-facing order
// confirmation
func (s *OrderService) ProcessOrderText(ctx context.Context, requestText string, date string) string {
	outcome := s.ProcessOrder(ctx, requestText, date)
	if outcome == nil {
		return "Unable to process order. Please check item names and quantities."
	}

	if outcome.AllRejected() {
		var b strings.Builder
		b.WriteString("We cannot fulfill your order due to the following issues:\n")
		for _, rej := range outcome.Rejected {
			b.WriteString(fmt.Sprintf("\n❌ %s: %s\n", rej.RequestedName, rej.Reason))
			if guidance := rej.Decision.Guidance(); guidance != "" {
				b.WriteString(guidance)
				b.WriteString("\n")
			}
		}
		return strings.TrimRight(b.String(), "\n")
	}

	divider := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString(divider + "\n")
	b.WriteString("ORDER CONFIRMATION\n")
	b.WriteString(divider + "\n")
	b.WriteString(fmt.Sprintf("Date: %s\n\n", date))

	for _, line := range outcome.Completed {
		b.WriteString(fmt.Sprintf("✅ %d x %s\n", line.Quote.Quantity, line.Quote.Item))
		if line.Quote.DiscountRate > 0 {
			b.WriteString(fmt.Sprintf("   Price: %s (%.0f%% volume discount applied)\n",
				utils.FormatUSD(line.Quote.FinalPrice), line.Quote.DiscountRate*100))
		} else {
			b.WriteString(fmt.Sprintf("   Price: %s\n", utils.FormatUSD(line.Quote.FinalPrice)))
		}
		b.WriteString(fmt.Sprintf("   Transaction ID: %d\n\n", line.Transaction.ID))
	}

	if len(outcome.Rejected) > 0 {
		b.WriteString("ITEMS NOT FULFILLED:\n")
		for _, rej := range outcome.Rejected {
			b.WriteString(fmt.Sprintf("\n❌ %s: %s\n", rej.RequestedName, rej.Reason))
			if guidance := rej.Decision.Guidance(); guidance != "" {
				b.WriteString(guidance)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(divider + "\n")
	b.WriteString(fmt.Sprintf("TOTAL SALE: %s\n", utils.FormatUSD(outcome.TotalAmount)))

	if balance, err := s.transactionRepo.CashBalance(ctx, date); err == nil {
		b.WriteString(fmt.Sprintf("Updated Cash Balance: %s\n", utils.FormatUSD(balance)))
	} else {
		log.Printf("⚠️ ProcessOrderText: Cash balance unavailable: %v", err)
	}

	b.WriteString(divider + "\n")
	b.WriteString("Thank you for your business!")

	return b.String()
}
