package models

// CompletedLine is one successfully committed line item of a multi-item order
type CompletedLine struct {
	Index       int               `json:"index"` // position in the parsed request
	Resolved    ResolvedItem      `json:"resolved"`
	Quote       PriceQuote        `json:"quote"`
	Transaction TransactionRecord `json:"transaction"`
}

// RejectedLine is one line item that could not be fulfilled
type RejectedLine struct {
	Index         int    `json:"index"`
	RequestedName string `json:"requestedName"`
	Reason        string `json:"reason"`
	Decision      FulfillmentDecision `json:"decision,omitempty"`
}

// MultiItemOutcome accumulates per-line results of a multi-item request in
// line-item order. It is finalized once every line has been processed and is
// never exposed mid-iteration.
type MultiItemOutcome struct {
	Completed   []CompletedLine `json:"completed"`
	Rejected    []RejectedLine  `json:"rejected"`
	TotalAmount int64           `json:"totalAmount"` // cents
}

// AllRejected reports whether zero line items succeeded, which is surfaced
// as an overall order failure rather than a zero-value success
func (o *MultiItemOutcome) AllRejected() bool {
	return len(o.Completed) == 0
}
