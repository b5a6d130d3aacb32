package models

import "fmt"

// RestockLeadTime is the supplier restock window communicated to customers
const RestockLeadTime = "4-7 days"

// FulfillmentStatus is the outcome class of a fulfillment decision
type FulfillmentStatus string

const (
	StatusFulfilled          FulfillmentStatus = "fulfilled"
	StatusPartiallyFulfilled FulfillmentStatus = "partially_fulfilled"
	StatusRejected           FulfillmentStatus = "rejected"
)

// Rejection reasons shared by quoting and ordering
const (
	ReasonItemNotFound = "item not found"
	ReasonOutOfStock   = "out of stock"
)

// FulfillmentDecision is the stock-vs-quantity verdict for one line item.
// Derived from current stock at decision time; never cached between requests.
type FulfillmentDecision struct {
	Status      FulfillmentStatus `json:"status"`
	Quantity    int               `json:"quantity"`    // requested quantity
	Available   int               `json:"available"`   // units in stock now
	Backordered int               `json:"backordered"` // unfulfilled remainder
	Reason      string            `json:"reason,omitempty"`
}

// Fulfilled builds a decision for sufficient stock
func Fulfilled(quantity int) FulfillmentDecision {
	return FulfillmentDecision{
		Status:    StatusFulfilled,
		Quantity:  quantity,
		Available: quantity,
	}
}

// PartiallyFulfilled builds a decision for insufficient but positive stock
func PartiallyFulfilled(available, backordered int) FulfillmentDecision {
	return FulfillmentDecision{
		Status:      StatusPartiallyFulfilled,
		Quantity:    available + backordered,
		Available:   available,
		Backordered: backordered,
	}
}

// Rejected builds a decision for items that cannot be fulfilled at all
func Rejected(quantity int, reason string) FulfillmentDecision {
	return FulfillmentDecision{
		Status:   StatusRejected,
		Quantity: quantity,
		Reason:   reason,
	}
}

// Guidance returns the customer-facing options block for non-fulfilled
// decisions, or an empty string for fulfilled ones
func (d FulfillmentDecision) Guidance() string {
	switch d.Status {
	case StatusRejected:
		if d.Reason == ReasonItemNotFound {
			return ""
		}
		return fmt.Sprintf("   Reason: High demand has temporarily depleted our inventory.\n"+
			"   Alternatives:\n"+
			"   • Wait %s for restocking from our supplier\n"+
			"   • Contact us to discuss similar alternative products\n"+
			"   • Place a pre-order to guarantee delivery when stock arrives", RestockLeadTime)
	case StatusPartiallyFulfilled:
		return fmt.Sprintf("   Reason: Current inventory insufficient for full order.\n"+
			"   Options:\n"+
			"   • Accept %d units now at the quoted price\n"+
			"   • Split order: %d units now + %d units in %s\n"+
			"   • Wait %s for full %d unit delivery after restocking",
			d.Available, d.Available, d.Backordered, RestockLeadTime, RestockLeadTime, d.Quantity)
	}
	return ""
}
