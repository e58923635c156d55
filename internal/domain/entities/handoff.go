package entities

// Handoff is a generated estimate PDF staged for pickup by the contact form.
//
// Storage model (session store):
//   - estimatePdfData: data URL (data:application/pdf;base64,...)
//   - estimateNumber: plain estimate number
//
// Both keys are taken together; a handoff is delivered at most once.
type Handoff struct {
	EstimateNumber string
	FileName       string
	Blob           []byte
}
