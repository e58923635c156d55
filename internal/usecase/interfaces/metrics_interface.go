package interfaces

// IMetrics receives estimate flow counters.
type IMetrics interface {
	EstimateGenerated()
	PDFExport(outcome string)
	PersistenceFailure(op string)
	Handoff(op string)
}
