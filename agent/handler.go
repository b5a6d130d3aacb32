package agent

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"google.golang.org/genai"

	"github.com/kchia/paperflow-ai/models"
	"github.com/kchia/paperflow-ai/repository"
	"github.com/kchia/paperflow-ai/service"
)

// SpecialistHandler answers one class of customer request. Handlers return
// raw responses; the orchestrator owns sanitization.
type SpecialistHandler interface {
	Run(ctx context.Context, request string, date string) (string, error)
}

// Registry holds the specialist handler for each routable intent. General is
// optional; when nil the orchestrator answers general requests with a fixed
// welcome message.
type Registry struct {
	Inventory SpecialistHandler
	Quoting   SpecialistHandler
	Sales     SpecialistHandler
	General   SpecialistHandler
}

// handlerFor returns the handler for an intent, or nil when none is
// registered
func (r Registry) handlerFor(intent models.Intent) SpecialistHandler {
	switch intent {
	case models.IntentOrderPlacement:
		return r.Sales
	case models.IntentQuoteRequest:
		return r.Quoting
	case models.IntentInventoryQuery:
		return r.Inventory
	case models.IntentGeneral:
		return r.General
	}
	return nil
}

// QuotingHandler prices requests without touching the ledger
type QuotingHandler struct {
	quotes *service.QuoteService
}

// NewQuotingHandler creates a new QuotingHandler
func NewQuotingHandler(quotes *service.QuoteService) *QuotingHandler {
	return &QuotingHandler{quotes: quotes}
}

var _ SpecialistHandler = (*QuotingHandler)(nil)

func (h *QuotingHandler) Run(ctx context.Context, request string, date string) (string, error) {
	return h.quotes.ProcessQuoteRequest(ctx, request, date), nil
}

// SalesHandler commits orders against the ledger
type SalesHandler struct {
	orders *service.OrderService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(orders *service.OrderService) *SalesHandler {
	return &SalesHandler{orders: orders}
}

var _ SpecialistHandler = (*SalesHandler)(nil)

func (h *SalesHandler) Run(ctx context.Context, request string, date string) (string, error) {
	return h.orders.ProcessOrderText(ctx, request, date), nil
}

// InventoryHandler answers stock questions. When the request names catalog
// items it checks each one; otherwise it lists everything available.
type InventoryHandler struct {
	inventory   *service.InventoryService
	catalogRepo repository.CatalogRepositoryInterface
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventory *service.InventoryService, catalogRepo repository.CatalogRepositoryInterface) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, catalogRepo: catalogRepo}
}

var _ SpecialistHandler = (*InventoryHandler)(nil)

func (h *InventoryHandler) Run(ctx context.Context, request string, date string) (string, error) {
	mentioned, err := h.mentionedItems(ctx, request, date)
	if err != nil {
		return "", err
	}

	if len(mentioned) == 0 {
		return h.inventory.ListAvailable(ctx, date)
	}

	var parts []string
	for _, name := range mentioned {
		answer, err := h.inventory.CheckStock(ctx, name, date)
		if err != nil {
			return "", err
		}
		parts = append(parts, answer)
	}
	return strings.Join(parts, "\n"), nil
}

// mentionedItems returns the catalog names present in the request text,
// alphabetically
func (h *InventoryHandler) mentionedItems(ctx context.Context, request string, date string) ([]string, error) {
	items, err := h.catalogRepo.AllItems(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog names: %w", err)
	}

	lowered := strings.ToLower(request)
	var mentioned []string
	for name := range items {
		if strings.Contains(lowered, strings.ToLower(name)) {
			mentioned = append(mentioned, name)
		}
	}
	sort.Strings(mentioned)
	return mentioned, nil
}

// GeneralPreamble frames general customer conversation for the Gemini-backed
// handler. It must never promise prices, stock levels or order commitments,
// since those come from the deterministic specialists.
const GeneralPreamble = "You are a friendly customer service representative for PaperFlow, " +
	"a paper products supplier. Answer the customer's message helpfully and briefly. " +
	"You can describe what PaperFlow does: checking stock, quoting prices with volume " +
	"discounts, and placing orders. Do not invent prices, stock levels or delivery dates; " +
	"instead invite the customer to ask for a quote or a stock check."

// GeminiHandler delegates a request to a Gemini model with a role-specific
// preamble. Used for request classes the deterministic handlers do not cover.
type GeminiHandler struct {
	client   *genai.Client
	model    string
	preamble string
}

// NewGeminiHandler creates a new GeminiHandler
func NewGeminiHandler(ctx context.Context, apiKey string, model string, preamble string) (*GeminiHandler, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiHandler{client: client, model: model, preamble: preamble}, nil
}

var _ SpecialistHandler = (*GeminiHandler)(nil)

func (h *GeminiHandler) Run(ctx context.Context, request string, date string) (string, error) {
	task := fmt.Sprintf("%s (Date: %s)", request, date)
	prompt := h.preamble + "\n\nTASK: " + task

	log.Printf("📥 GeminiHandler: model=%s task=%q", h.model, task)

	resp, err := h.client.Models.GenerateContent(ctx, h.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model returned an empty response")
	}
	return text, nil
}
