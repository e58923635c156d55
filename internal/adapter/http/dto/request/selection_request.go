package request

import (
	"errors"
	"strings"
)

var (
	ErrMissingQuantity     = errors.New("quantity or page_count_option_id is required")
	ErrAmbiguousQuantity   = errors.New("quantity and page_count_option_id are mutually exclusive")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
)

// QuantityRequest sets the quantity of a quantifiable item either directly or
// through a page-count tier.
type QuantityRequest struct {
	Quantity          *int   `json:"quantity"`
	PageCountOptionID string `json:"page_count_option_id"`
}

// Resolve returns the page-count option id when one was sent, otherwise the
// explicit quantity.
func (r QuantityRequest) Resolve() (optionID string, quantity int, err error) {
	optionID = strings.TrimSpace(r.PageCountOptionID)
	switch {
	case optionID != "" && r.Quantity != nil:
		return "", 0, ErrAmbiguousQuantity
	case optionID != "":
		return optionID, 0, nil
	case r.Quantity == nil:
		return "", 0, ErrMissingQuantity
	case *r.Quantity < 1:
		return "", 0, ErrInvalidQuantity
	}
	return "", *r.Quantity, nil
}

// FunctionsRequest replaces the sub-functions of "other-functions". An empty
// list deselects the item.
type FunctionsRequest struct {
	FunctionIDs []string `json:"function_ids"`
}

func (r FunctionsRequest) ResolveFunctionIDs() []string {
	ids := make([]string, 0, len(r.FunctionIDs))
	for _, id := range r.FunctionIDs {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}

type PlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

func (r PlanRequest) ResolvePlan() string {
	return strings.TrimSpace(r.Plan)
}
