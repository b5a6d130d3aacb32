package models

// LineItemRequest is one (quantity, item description) pair extracted from a
// customer request. Immutable once produced by the parser.
type LineItemRequest struct {
	Quantity       int    `json:"quantity"`
	RawDescription string `json:"rawDescription"`
}

// MatchConfidence describes how a requested item name was resolved against
// the catalog
type MatchConfidence string

const (
	MatchExact           MatchConfidence = "exact"
	MatchCaseInsensitive MatchConfidence = "case_insensitive"
	MatchFuzzy           MatchConfidence = "fuzzy"
	MatchSubstring       MatchConfidence = "substring"
	MatchUnmatched       MatchConfidence = "unmatched"
)

// ResolvedItem is the result of resolving a requested item name.
// CanonicalName is never empty: when no catalog match is found it falls back
// to the requested name with MatchUnmatched confidence.
type ResolvedItem struct {
	RequestedName string          `json:"requestedName"`
	CanonicalName string          `json:"canonicalName"`
	Confidence    MatchConfidence `json:"matchConfidence"`
}

// Matched reports whether the item resolved to a real catalog name
func (r ResolvedItem) Matched() bool {
	return r.Confidence != MatchUnmatched
}

// Intent labels an inbound customer request
type Intent string

const (
	IntentOrderPlacement Intent = "order_placement"
	IntentQuoteRequest   Intent = "quote_request"
	IntentInventoryQuery Intent = "inventory_query"
	IntentGeneral        Intent = "general"
)

// CustomerRequest represents the request body for POST /requests
// Example: {
//   "request": "- 200 sheets of A4 paper\n- 50 units of cardstock",
//   "date": "2025-01-15"
// }
type CustomerRequest struct {
	Request string `json:"request"`
	Date    string `json:"date"` // YYYY-MM-DD, the as-of date for stock and pricing
}

// CustomerResponse represents the response body for POST /requests
type CustomerResponse struct {
	Intent   string `json:"intent"`
	Response string `json:"response"`
}
