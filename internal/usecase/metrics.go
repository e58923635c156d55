package usecase

import "web_estimate/internal/usecase/interfaces"

type nopMetrics struct{}

var _ interfaces.IMetrics = nopMetrics{}

func (nopMetrics) EstimateGenerated()        {}
func (nopMetrics) PDFExport(string)          {}
func (nopMetrics) PersistenceFailure(string) {}
func (nopMetrics) Handoff(string)            {}
