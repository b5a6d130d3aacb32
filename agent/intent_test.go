package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kchia/paperflow-ai/models"
)

func TestClassifyOrderPlacement(t *testing.T) {
	cases := []string{
		"I'd like to order 500 envelopes",
		"I'll take 200 sheets of A4 paper",
		"Please confirm my order",
		"We want to buy 100 units of cardstock",
		"proceed with the purchase",
	}

	for _, request := range cases {
		assert.Equal(t, models.IntentOrderPlacement, Classify(request), "request %q", request)
	}
}

func TestClassifyQuoteRequest(t *testing.T) {
	cases := []string{
		"How much would 500 envelopes cost?",
		"How much for 200 sheets of A4 paper?",
		"Can I get a quote for wedding invitations?",
		"What's the price of glossy paper?",
		"I need an estimate for 1000 envelopes",
		"We would like to request pricing for cardstock",
	}

	for _, request := range cases {
		assert.Equal(t, models.IntentQuoteRequest, Classify(request), "request %q", request)
	}
}

func TestClassifyInventoryQuery(t *testing.T) {
	cases := []string{
		"Do you have cardstock in stock?",
		"What items do you carry?",
		"Is glossy paper available?",
		"Can you check stock on poster board?",
	}

	for _, request := range cases {
		assert.Equal(t, models.IntentInventoryQuery, Classify(request), "request %q", request)
	}
}

func TestClassifyGeneralFallback(t *testing.T) {
	assert.Equal(t, models.IntentGeneral, Classify("Hello, what are your opening hours?"))
	assert.Equal(t, models.IntentGeneral, Classify(""))
}

func TestClassifyOrderOutranksQuote(t *testing.T) {
	// Carries both "buy" and "price"; order placement wins by priority
	assert.Equal(t, models.IntentOrderPlacement, Classify("I want to buy at the quoted price"))
}

func TestClassifyWithAmbiguityMatchesClassify(t *testing.T) {
	for _, request := range []string{
		"I'd like to order 500 envelopes",
		"How much for 200 sheets of A4 paper?",
		"Do you have cardstock in stock?",
		"Hello there",
		"I want to buy at the quoted price",
	} {
		assert.Equal(t, Classify(request), ClassifyWithAmbiguity(request), "request %q", request)
	}
}
