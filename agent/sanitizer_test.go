package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsLedgerIdentifiers(t *testing.T) {
	input := "✅ 200 x A4 paper\n   Price: $18.00\n   Transaction ID: 42\n\nThank you!"
	output := Sanitize(input)

	assert.NotContains(t, output, "Transaction ID")
	assert.Contains(t, output, "✅ 200 x A4 paper")
	assert.Contains(t, output, "Price: $18.00")
	assert.Contains(t, output, "Thank you!")
}

func TestSanitizeStripsCashPositions(t *testing.T) {
	input := "TOTAL SALE: $68.00\nUpdated Cash Balance: $1,068.00\nThank you for your business!"
	output := Sanitize(input)

	assert.NotContains(t, output, "Cash Balance")
	assert.NotContains(t, output, "$1,068.00")
	assert.Contains(t, output, "TOTAL SALE: $68.00")
}

func TestSanitizeStripsSupplierLogistics(t *testing.T) {
	input := "✅ SUPPLIER ORDER PLACED (ID: 7)\nItem: cardstock\nExpected Delivery: 2025-01-22\nDone."
	output := Sanitize(input)

	assert.NotContains(t, output, "SUPPLIER ORDER PLACED")
	assert.NotContains(t, output, "(ID: 7)")
	assert.NotContains(t, output, "2025-01-22")
	assert.Contains(t, output, "Item: cardstock")
}

func TestSanitizeStripsErrorText(t *testing.T) {
	input := "We hit a problem.\nERROR: pq: connection refused\nPlease retry."
	output := Sanitize(input)

	assert.NotContains(t, output, "connection refused")
	assert.NotContains(t, output, "ERROR")
	assert.Contains(t, output, "Please retry.")
}

func TestSanitizeStripsMargins(t *testing.T) {
	input := "Great deal! profit margin: 42.5% on this order. internal cost: $12.00"
	output := Sanitize(input)

	assert.NotContains(t, output, "42.5")
	assert.NotContains(t, output, "$12.00")
}

func TestSanitizeCollapsesBlankLineRuns(t *testing.T) {
	input := "Line one\nTransaction ID: 9\n\n\n\nLine two"
	output := Sanitize(input)

	assert.NotContains(t, output, "\n\n\n")
	assert.Contains(t, output, "Line one")
	assert.Contains(t, output, "Line two")
}

func TestSanitizeLeavesCleanTextAlone(t *testing.T) {
	input := "Quote for 150 x wedding invitation cards:\nTOTAL: $202.50\nThis quote is valid for 30 days."
	assert.Equal(t, input, Sanitize(input))
}

func TestSanitizeTrimsSurroundingWhitespace(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("  \nhello\n  "))
}
