package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kchia/paperflow-ai/models"
)

func newTestResolver() (*ResolverService, *memCatalog) {
	catalog := newMemCatalog()
	catalog.add("A4 paper", 5, 500, 2000)
	catalog.add("cardstock", 15, 200, 800)
	catalog.add("glossy paper", 20, 100, 500)
	catalog.add("wedding invitation cards", 150, 50, 200)
	return NewResolverService(catalog), catalog
}

func TestResolveExactMatch(t *testing.T) {
	resolver, _ := newTestResolver()

	resolved := resolver.Resolve(context.Background(), "A4 paper", "2025-01-15")
	assert.Equal(t, "A4 paper", resolved.CanonicalName)
	assert.Equal(t, models.MatchExact, resolved.Confidence)
	assert.True(t, resolved.Matched())
}

func TestResolveCaseInsensitive(t *testing.T) {
	resolver, _ := newTestResolver()

	resolved := resolver.Resolve(context.Background(), "a4 PAPER", "2025-01-15")
	assert.Equal(t, "A4 paper", resolved.CanonicalName)
	assert.Equal(t, models.MatchCaseInsensitive, resolved.Confidence)
}

func TestResolveFuzzyTypo(t *testing.T) {
	resolver, _ := newTestResolver()

	resolved := resolver.Resolve(context.Background(), "cardstok", "2025-01-15")
	assert.Equal(t, "cardstock", resolved.CanonicalName)
	assert.Equal(t, models.MatchFuzzy, resolved.Confidence)
}

func TestResolveSubstring(t *testing.T) {
	resolver, _ := newTestResolver()

	resolved := resolver.Resolve(context.Background(), "wedding invitation cards for 200 guests", "2025-01-15")
	assert.Equal(t, "wedding invitation cards", resolved.CanonicalName)
	assert.True(t, resolved.Matched())
}

func TestResolveUnmatchedFallsBackToRequestedName(t *testing.T) {
	resolver, _ := newTestResolver()

	resolved := resolver.Resolve(context.Background(), "industrial laminator", "2025-01-15")
	assert.Equal(t, "industrial laminator", resolved.CanonicalName)
	assert.Equal(t, models.MatchUnmatched, resolved.Confidence)
	assert.False(t, resolved.Matched())
}

func TestResolveZeroStockItemStillResolves(t *testing.T) {
	resolver, catalog := newTestResolver()
	catalog.add("poster board", 95, 50, 0)

	// Resolution is about catalog membership, not stock. Fulfillment decides
	// availability separately.
	resolved := resolver.Resolve(context.Background(), "poster board", "2025-01-15")
	assert.Equal(t, "poster board", resolved.CanonicalName)
	assert.True(t, resolved.Matched())
}

func TestResolveDegradesOnCatalogError(t *testing.T) {
	resolver, catalog := newTestResolver()
	catalog.fail = true

	resolved := resolver.Resolve(context.Background(), "A4 paper", "2025-01-15")
	assert.Equal(t, models.MatchUnmatched, resolved.Confidence)
	assert.Equal(t, "A4 paper", resolved.CanonicalName)
}
