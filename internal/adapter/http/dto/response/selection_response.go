package response

import (
	"web_estimate/internal/domain/entities"
	"web_estimate/internal/usecase"
)

type SelectedItemResponse struct {
	ItemID            string   `json:"item_id"`
	Quantity          int      `json:"quantity"`
	Price             int64    `json:"price"`
	SelectedFunctions []string `json:"selected_functions,omitempty"`
}

type LineItemResponse struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	TotalPrice int64  `json:"total_price"`
}

type CalculationResponse struct {
	CodingSubtotal int64              `json:"coding_subtotal"`
	DesignSubtotal int64              `json:"design_subtotal"`
	Subtotal       int64              `json:"subtotal"`
	UrgentFee      int64              `json:"urgent_fee"`
	Tax            int64              `json:"tax"`
	Total          int64              `json:"total"`
	CodingItems    []LineItemResponse `json:"coding_items"`
	DesignItems    []LineItemResponse `json:"design_items"`
}

// SelectionResponse mirrors the calculator page: the selection, its live
// quote and the badge count.
type SelectionResponse struct {
	CodingItems  []SelectedItemResponse `json:"coding_items"`
	DesignItems  []SelectedItemResponse `json:"design_items"`
	SelectedPlan string                 `json:"selected_plan"`
	IsUrgent     bool                   `json:"is_urgent"`
	ItemCount    int                    `json:"item_count"`
	Calculation  CalculationResponse    `json:"calculation"`
}

func FromSelectionView(v usecase.SelectionView) SelectionResponse {
	return SelectionResponse{
		CodingItems:  fromSelectedItems(v.State.CodingItems),
		DesignItems:  fromSelectedItems(v.State.DesignItems),
		SelectedPlan: string(v.State.SelectedPlan),
		IsUrgent:     v.State.IsUrgent,
		ItemCount:    v.ItemCount,
		Calculation:  FromCalculation(v.Calculation),
	}
}

func FromCalculation(c entities.PriceCalculation) CalculationResponse {
	return CalculationResponse{
		CodingSubtotal: c.CodingSubtotal,
		DesignSubtotal: c.DesignSubtotal,
		Subtotal:       c.Subtotal,
		UrgentFee:      c.UrgentFee,
		Tax:            c.Tax,
		Total:          c.Total,
		CodingItems:    fromLineItems(c.CodingItems),
		DesignItems:    fromLineItems(c.DesignItems),
	}
}

func fromSelectedItems(items []entities.SelectedItem) []SelectedItemResponse {
	out := make([]SelectedItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SelectedItemResponse{
			ItemID:            it.ItemID,
			Quantity:          it.Quantity,
			Price:             it.Price,
			SelectedFunctions: it.SelectedFunctions,
		})
	}
	return out
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ItemID:     it.ItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return out
}
