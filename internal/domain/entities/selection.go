package entities

// SelectedItem is one chosen catalog entry. Price is computed when the item is
// selected (base price, quantity and tier multiplier) and carried as-is.
type SelectedItem struct {
	ItemID            string   `json:"itemId"`
	Quantity          int      `json:"quantity"`
	Price             int64    `json:"price"`
	SelectedFunctions []string `json:"selectedFunctions,omitempty"`
}

// SavedState is the persisted shape of a selection.
type SavedState struct {
	CodingItems  []SelectedItem `json:"codingItems"`
	DesignItems  []SelectedItem `json:"designItems"`
	SelectedPlan PlanType       `json:"selectedPlan"`
	IsUrgent     bool           `json:"isUrgent"`
}

func (s SavedState) ItemCount() int {
	return len(s.CodingItems) + len(s.DesignItems)
}
