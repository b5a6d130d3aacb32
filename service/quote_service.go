package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/kchia/paperflow-ai/models"
	"github.com/kchia/paperflow-ai/pricing"
	"github.com/kchia/paperflow-ai/repository"
	"github.com/kchia/paperflow-ai/utils"
)

// quoteValidity is the validity window stated on every customer quote
const quoteValidity = "This quote is valid for 30 days."

// QuoteService builds customer-facing price quotes. Quoting never writes to
// the ledger; only orders commit transactions.
type QuoteService struct {
	resolver    *ResolverService
	fulfillment *FulfillmentService
	engine      *pricing.Engine
	quoteRepo   repository.QuoteRepositoryInterface
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(
	resolver *ResolverService,
	fulfillment *FulfillmentService,
	engine *pricing.Engine,
	quoteRepo repository.QuoteRepositoryInterface,
) *QuoteService {
	return &QuoteService{
		resolver:    resolver,
		fulfillment: fulfillment,
		engine:      engine,
		quoteRepo:   quoteRepo,
	}
}

// ProcessQuoteRequest parses a free-text request and renders a multi-item
// quote with per-line availability notes
func (s *QuoteService) ProcessQuoteRequest(ctx context.Context, requestText string, date string) string {
	log.Printf("📥 ProcessQuoteRequest: date=%s request=%q", date, requestText)

	lines := utils.ParseLineItems(requestText)
	if len(lines) == 0 {
		return "Unable to identify items to quote. Please list quantities and item names, for example: \"200 sheets of A4 paper\"."
	}

	divider := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString(divider + "\n")
	b.WriteString("QUOTE FOR YOUR ORDER\n")
	b.WriteString(divider + "\n")
	b.WriteString(fmt.Sprintf("Date: %s\n\n", date))

	var total int64
	quotedAny := false

	for _, line := range lines {
		resolved := s.resolver.Resolve(ctx, line.RawDescription, date)
		if !resolved.Matched() {
			b.WriteString(fmt.Sprintf("❌ %d x %s: Pricing not available (item not found)\n\n", line.Quantity, line.RawDescription))
			continue
		}

		quote, err := s.engine.Quote(ctx, resolved.CanonicalName, line.Quantity)
		if err != nil {
			log.Printf("⚠️ ProcessQuoteRequest: Pricing failed for %q: %v", resolved.CanonicalName, err)
			b.WriteString(fmt.Sprintf("❌ %d x %s: Pricing not available\n\n", line.Quantity, line.RawDescription))
			continue
		}

		decision := s.fulfillment.Decide(ctx, resolved.CanonicalName, line.Quantity, date)

		switch decision.Status {
		case models.StatusFulfilled:
			b.WriteString(fmt.Sprintf("✅ %d x %s\n", quote.Quantity, quote.Item))
			b.WriteString(fmt.Sprintf("   Unit price: %s\n", utils.FormatUSD(quote.UnitPrice)))
			if quote.DiscountRate > 0 {
				b.WriteString(fmt.Sprintf("   Subtotal: %s (%.0f%% volume discount applied, you save %s)\n",
					utils.FormatUSD(quote.FinalPrice), quote.DiscountRate*100, utils.FormatUSD(quote.DiscountAmount())))
			} else {
				b.WriteString(fmt.Sprintf("   Subtotal: %s\n", utils.FormatUSD(quote.FinalPrice)))
			}
			b.WriteString("   Availability: in stock\n\n")
		case models.StatusPartiallyFulfilled:
			b.WriteString(fmt.Sprintf("⚠️ %d x %s\n", quote.Quantity, quote.Item))
			b.WriteString(fmt.Sprintf("   Subtotal if fulfilled in full: %s\n", utils.FormatUSD(quote.FinalPrice)))
			b.WriteString(fmt.Sprintf("   Availability: only %d units in stock, remaining %d in %s\n\n",
				decision.Available, decision.Backordered, models.RestockLeadTime))
		default:
			b.WriteString(fmt.Sprintf("❌ %d x %s: Pricing not available (out of stock, restock in %s)\n\n",
				line.Quantity, quote.Item, models.RestockLeadTime))
			continue
		}

		total += quote.FinalPrice
		quotedAny = true
	}

	if !quotedAny {
		b.WriteString("None of the requested items could be quoted at this time.\n")
	}

	b.WriteString(divider + "\n")
	b.WriteString(fmt.Sprintf("TOTAL: %s\n", utils.FormatUSD(total)))
	b.WriteString(divider + "\n")
	b.WriteString(quoteValidity)

	return b.String()
}

// SingleQuote renders a one-item quote with availability guidance
func (s *QuoteService) SingleQuote(ctx context.Context, itemName string, quantity int, date string) string {
	resolved := s.resolver.Resolve(ctx, itemName, date)
	if !resolved.Matched() {
		return fmt.Sprintf("We could not find %q in our catalog. Please check the item name or ask for our list of available items.", itemName)
	}

	quote, err := s.engine.Quote(ctx, resolved.CanonicalName, quantity)
	if err != nil {
		log.Printf("⚠️ SingleQuote: Pricing failed for %q: %v", resolved.CanonicalName, err)
		return fmt.Sprintf("Pricing is not available for %q right now.", resolved.CanonicalName)
	}

	decision := s.fulfillment.Decide(ctx, resolved.CanonicalName, quantity, date)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Quote for %d x %s:\n", quote.Quantity, quote.Item))
	b.WriteString(fmt.Sprintf("Unit price: %s\n", utils.FormatUSD(quote.UnitPrice)))
	if quote.DiscountRate > 0 {
		b.WriteString(fmt.Sprintf("Volume discount: %.0f%% (you save %s)\n", quote.DiscountRate*100, utils.FormatUSD(quote.DiscountAmount())))
	}
	b.WriteString(fmt.Sprintf("TOTAL: %s\n", utils.FormatUSD(quote.FinalPrice)))

	switch decision.Status {
	case models.StatusFulfilled:
		b.WriteString("All units are in stock and ready to ship.\n")
	case models.StatusPartiallyFulfilled, models.StatusRejected:
		if guidance := decision.Guidance(); guidance != "" {
			b.WriteString(guidance)
			b.WriteString("\n")
		}
	}

	b.WriteString(quoteValidity)
	return b.String()
}

// RenderPriceBreakdown explains how the tiered price for an item and
// quantity is computed
func (s *QuoteService) RenderPriceBreakdown(ctx context.Context, itemName string, quantity int, date string) string {
	resolved := s.resolver.Resolve(ctx, itemName, date)
	if !resolved.Matched() {
		return fmt.Sprintf("We could not find %q in our catalog.", itemName)
	}

	quote, err := s.engine.Quote(ctx, resolved.CanonicalName, quantity)
	if err != nil {
		return fmt.Sprintf("Pricing is not available for %q right now.", resolved.CanonicalName)
	}

	perUnitAfter := int64(math.Round(float64(quote.FinalPrice) / float64(quote.Quantity)))

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Price breakdown for %d x %s:\n", quote.Quantity, quote.Item))
	b.WriteString(fmt.Sprintf("  Unit price: %s\n", utils.FormatUSD(quote.UnitPrice)))
	b.WriteString(fmt.Sprintf("  Base total: %s\n", utils.FormatUSD(quote.BasePrice)))
	b.WriteString(fmt.Sprintf("  Applied tier: %s\n", pricing.TierLabel(quote.Quantity)))
	if quote.DiscountRate > 0 {
		b.WriteString(fmt.Sprintf("  Discount: -%s\n", utils.FormatUSD(quote.DiscountAmount())))
	}
	b.WriteString(fmt.Sprintf("  Final total: %s (%s per unit after discount)\n",
		utils.FormatUSD(quote.FinalPrice), utils.FormatUSD(perUnitAfter)))

	return strings.TrimRight(b.String(), "\n")
}

// QuoteSummaryTotal extracts the "TOTAL: $X" line from a rendered quote.
// Returns false when the text carries no total line.
func QuoteSummaryTotal(quoteText string) (string, bool) {
	for _, line := range strings.Split(quoteText, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "TOTAL:") {
			return line, true
		}
	}
	return "", false
}

// SearchSimilar looks up past quotes for comparable jobs and renders a short
// summary of each
func (s *QuoteService) SearchSimilar(ctx context.Context, keywords []string, limit int) (string, error) {
	quotes, err := s.quoteRepo.Search(ctx, keywords, limit)
	if err != nil {
		return "", fmt.Errorf("failed to search similar quotes: %w", err)
	}

	if len(quotes) == 0 {
		return "No similar past quotes found.", nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Found %d similar past quote(s):\n", len(quotes)))
	for i, q := range quotes {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, q.JobType))
		if q.EventType != "" {
			b.WriteString(fmt.Sprintf(" (%s)", q.EventType))
		}
		b.WriteString(fmt.Sprintf(": %d units, %s\n", q.OrderSize, utils.FormatUSD(q.TotalAmount)))
		if q.Explanation != "" {
			preview := q.Explanation
			if len(preview) > 100 {
				preview = preview[:100] + "..."
			}
			b.WriteString(fmt.Sprintf("   %s\n", preview))
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
