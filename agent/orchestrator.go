package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/kchia/paperflow-ai/models"
)

// welcomeResponse answers requests no specialist covers
const welcomeResponse = "Thank you for contacting PaperFlow! We supply paper products " +
	"for offices, print shops and events. I can help you check what items we have in stock, " +
	"get a price quote, or place an order. How can I help you today?"

// apologyResponse is returned whenever a specialist fails. Internal error
// detail stays in the logs.
const apologyResponse = "We apologize, but we encountered an issue processing your request. " +
	"Please try rephrasing your request or contact our support team for assistance."

// Orchestrator routes customer requests to specialist handlers and
// sanitizes every outbound response
type Orchestrator struct {
	registry Registry
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(registry Registry) *Orchestrator {
	return &Orchestrator{registry: registry}
}

// Handle classifies a request, dispatches it to the matching specialist and
// returns the sanitized response. It never returns an error to the caller:
// failures become a generic apology.
func (o *Orchestrator) Handle(ctx context.Context, request *models.CustomerRequest) *models.CustomerResponse {
	requestID := shortRequestID()
	log.Printf("📥 Handle[%s]: date=%s request=%q", requestID, request.Date, request.Request)

	intent := ClassifyWithAmbiguity(request.Request)
	log.Printf("🎯 Handle[%s]: Routing intent=%s", requestID, intent)

	var response string
	var err error

	switch handler := o.registry.handlerFor(intent); {
	case intent == models.IntentGeneral && handler == nil:
		response = welcomeResponse
	case handler == nil:
		err = fmt.Errorf("no handler registered for intent %s", intent)
	default:
		response, err = handler.Run(ctx, request.Request, request.Date)
	}

	if err != nil {
		log.Printf("❌ Handle[%s]: Specialist failed: %v", requestID, err)
		response = apologyResponse
	}

	sanitized := Sanitize(response)
	log.Printf("✅ Handle[%s]: Responding with %d characters", requestID, len(sanitized))

	return &models.CustomerResponse{
		Intent:   string(intent),
		Response: sanitized,
	}
}

// shortRequestID returns an 8-character correlation id for log lines
func shortRequestID() string {
	id := uuid.NewString()
	return strings.SplitN(id, "-", 2)[0]
}
