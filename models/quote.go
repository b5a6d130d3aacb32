package models

// PriceQuote is the tiered-discount price for one (item, quantity) pair.
// Invariants: BasePrice = UnitPrice × Quantity and
// FinalPrice = BasePrice × (1 − DiscountRate), all amounts in cents.
type PriceQuote struct {
	Item         string  `json:"item"` // canonical catalog name
	Quantity     int     `json:"quantity"`
	UnitPrice    int64   `json:"unitPrice"`
	DiscountRate float64 `json:"discountRate"` // one of 0, 0.10, 0.20, 0.25
	BasePrice    int64   `json:"basePrice"`
	FinalPrice   int64   `json:"finalPrice"`
}

// DiscountAmount returns the cents saved by the volume discount
func (q PriceQuote) DiscountAmount() int64 {
	return q.BasePrice - q.FinalPrice
}

// PastQuote is one historical quote returned by the quote index
type PastQuote struct {
	JobType     string `json:"jobType"`
	EventType   string `json:"eventType"`
	TotalAmount int64  `json:"totalAmount"` // cents
	OrderSize   int    `json:"orderSize"`
	Explanation string `json:"explanation,omitempty"`
}
