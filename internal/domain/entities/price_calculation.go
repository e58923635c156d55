package entities

// LineItem is one priced row of a quote.
type LineItem struct {
	ItemID     string `json:"itemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
	TotalPrice int64  `json:"totalPrice"`
}

// PriceCalculation is always derived from a selection and never stored on its own.
//
// Invariants:
//   - Subtotal == CodingSubtotal + DesignSubtotal
//   - Total == Subtotal + UrgentFee + Tax
type PriceCalculation struct {
	CodingSubtotal int64      `json:"codingSubtotal"`
	DesignSubtotal int64      `json:"designSubtotal"`
	Subtotal       int64      `json:"subtotal"`
	UrgentFee      int64      `json:"urgentFee"`
	Tax            int64      `json:"tax"`
	Total          int64      `json:"total"`
	CodingItems    []LineItem `json:"codingItems"`
	DesignItems    []LineItem `json:"designItems"`
}
