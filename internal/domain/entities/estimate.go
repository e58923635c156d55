package entities

import "time"

// EstimateData is the stamped estimate (見積書) shown to the visitor.
//
// Lifecycle notes:
//   - Created only on an explicit "generate" request.
//   - Immutable once created.
//   - Kept session-scoped for the duration of the document view, never persisted long-term.
type EstimateData struct {
	EstimateNumber string           `json:"estimateNumber"`
	IssueDate      time.Time        `json:"issueDate"`
	ExpiryDate     time.Time        `json:"expiryDate"`
	Subject        string           `json:"subject"`
	Calculation    PriceCalculation `json:"calculation"`
	IsUrgent       bool             `json:"isUrgent"`
	SelectedPlan   PlanType         `json:"selectedPlan"`
}
