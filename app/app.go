package app

import (
	"context"
	"fmt"
	"os"

	"github.com/kchia/paperflow-ai/agent"
	"github.com/kchia/paperflow-ai/app/controller"
	"github.com/kchia/paperflow-ai/app/router"
	"github.com/kchia/paperflow-ai/db"
	"github.com/kchia/paperflow-ai/pricing"
	"github.com/kchia/paperflow-ai/repository"
	"github.com/kchia/paperflow-ai/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		return err
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository()
	transactionRepo := repository.NewTransactionRepository()
	quoteRepo := repository.NewQuoteRepository()

	// Initialize domain services
	engine := pricing.NewEngine(catalogRepo)
	resolver := service.NewResolverService(catalogRepo)
	fulfillment := service.NewFulfillmentService(catalogRepo)
	orderService := service.NewOrderService(resolver, fulfillment, engine, transactionRepo)
	quoteService := service.NewQuoteService(resolver, fulfillment, engine, quoteRepo)
	inventoryService := service.NewInventoryService(resolver, catalogRepo, transactionRepo)
	financeService := service.NewFinanceService(transactionRepo)
	seedService := service.NewSeedService(catalogRepo, transactionRepo)

	// Wire the specialist registry and orchestrator
	registry := agent.Registry{
		Inventory: agent.NewInventoryHandler(inventoryService, catalogRepo),
		Quoting:   agent.NewQuotingHandler(quoteService),
		Sales:     agent.NewSalesHandler(orderService),
	}

	// General requests fall back to a fixed welcome message unless a Gemini
	// key is configured
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = "gemini-2.0-flash"
		}
		general, err := agent.NewGeminiHandler(context.Background(), apiKey, model, agent.GeneralPreamble)
		if err != nil {
			return fmt.Errorf("failed to initialize general handler: %w", err)
		}
		registry.General = general
	}

	orchestrator := agent.NewOrchestrator(registry)

	// Create controllers
	controllers := &router.Controllers{
		Request:   controller.NewRequestController(orchestrator),
		Inventory: controller.NewInventoryController(inventoryService, seedService),
		Finance:   controller.NewFinanceController(financeService),
		Quote:     controller.NewQuoteController(quoteService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
