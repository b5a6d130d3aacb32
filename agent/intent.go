package agent

import (
	"log"
	"strings"

	"github.com/kchia/paperflow-ai/models"
)

// IntentRule maps trigger phrases to one intent. Rules are evaluated in
// order; the first rule with a hit wins.
type IntentRule struct {
	Intent   models.Intent
	Keywords []string
}

// IntentRules is the ordered keyword table for request classification.
// Order placement outranks quoting so "I'd like to order" commits instead of
// quoting; inventory questions rank below both.
var IntentRules = []IntentRule{
	{
		Intent: models.IntentOrderPlacement,
		Keywords: []string{
			"buy", "purchase", "i'll take", "i will take", "i'd like to order",
			"confirm", "proceed", "complete order",
		},
	},
	{
		Intent: models.IntentQuoteRequest,
		Keywords: []string{
			"quote", "how much", "price", "cost", "estimate", "pricing",
			"how expensive", "would like to request", "would like to place an order",
			"would like to order", "i need", "we need", "request for",
		},
	},
	{
		Intent: models.IntentInventoryQuery,
		Keywords: []string{
			"do you have", "in stock", "available", "stock level",
			"what items", "list", "inventory", "check stock",
		},
	},
}

// Classify labels a customer request with the first matching intent rule,
// falling back to the general intent
func Classify(request string) models.Intent {
	lowered := strings.ToLower(request)

	for _, rule := range IntentRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Intent
			}
		}
	}

	return models.IntentGeneral
}

// ClassifyWithAmbiguity classifies a request and logs when phrases from more
// than one rule are present, since priority order silently picks the winner
func ClassifyWithAmbiguity(request string) models.Intent {
	lowered := strings.ToLower(request)

	var hits []models.Intent
	for _, rule := range IntentRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				hits = append(hits, rule.Intent)
				break
			}
		}
	}

	if len(hits) > 1 {
		log.Printf("⚠️ Classify: Request matches multiple intents %v, using %s", hits, hits[0])
	}

	if len(hits) == 0 {
		return models.IntentGeneral
	}
	return hits[0]
}
