package response

import (
	"web_estimate/internal/domain/entities"
	"web_estimate/internal/domain/estimate"
	"web_estimate/internal/usecase"
)

type EstimateResponse struct {
	EstimateNumber string              `json:"estimate_number"`
	IssueDate      string              `json:"issue_date"`
	ExpiryDate     string              `json:"expiry_date"`
	Subject        string              `json:"subject"`
	SelectedPlan   string              `json:"selected_plan"`
	IsUrgent       bool                `json:"is_urgent"`
	FileName       string              `json:"file_name"`
	Calculation    CalculationResponse `json:"calculation"`
}

// FromEstimate renders dates in the Japanese document format, the same text
// printed on the estimate.
func FromEstimate(e entities.EstimateData) EstimateResponse {
	return EstimateResponse{
		EstimateNumber: e.EstimateNumber,
		IssueDate:      estimate.FormatDate(e.IssueDate),
		ExpiryDate:     estimate.FormatDate(e.ExpiryDate),
		Subject:        e.Subject,
		SelectedPlan:   string(e.SelectedPlan),
		IsUrgent:       e.IsUrgent,
		FileName:       estimate.PDFFileName(e.EstimateNumber),
		Calculation:    FromCalculation(e.Calculation),
	}
}

// HandoffResponse is what the contact page attaches to its form.
type HandoffResponse struct {
	EstimateNumber string `json:"estimate_number"`
	FileName       string `json:"file_name"`
	DataURL        string `json:"data_url,omitempty"`
	SizeBytes      int    `json:"size_bytes"`
}

func FromHandoff(h entities.Handoff, dataURL string) HandoffResponse {
	return HandoffResponse{
		EstimateNumber: h.EstimateNumber,
		FileName:       h.FileName,
		DataURL:        dataURL,
		SizeBytes:      len(h.Blob),
	}
}

// FromPDFExport describes a staged export. The blob itself is only handed out
// once, by the contact page.
func FromPDFExport(e usecase.PDFExport) HandoffResponse {
	return HandoffResponse{
		EstimateNumber: e.EstimateNumber,
		FileName:       e.FileName,
		SizeBytes:      len(e.Blob),
	}
}
