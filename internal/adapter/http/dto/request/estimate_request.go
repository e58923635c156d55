package request

import "strings"

// EstimateCreateRequest is the body of POST /estimates. The body is optional;
// an empty subject falls back to the default subject.
type EstimateCreateRequest struct {
	Subject string `json:"subject"`
}

func (r EstimateCreateRequest) ResolveSubject() string {
	return strings.TrimSpace(r.Subject)
}
