package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"web_estimate/internal/usecase/interfaces"
)

const (
	PDFOutcomeOK            = "ok"
	PDFOutcomeFailed        = "failed"
	PDFOutcomeTooLarge      = "too_large"
	PDFOutcomeAnchorMissing = "anchor_missing"
)

// EstimateMetrics counts estimate flow events.
type EstimateMetrics struct {
	estimatesGenerated  prometheus.Counter
	pdfExports          *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	handoffs            *prometheus.CounterVec
}

var _ interfaces.IMetrics = (*EstimateMetrics)(nil)

// New registers the collectors on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer, serviceName string) *EstimateMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	constLabels := prometheus.Labels{"service": strings.TrimSpace(serviceName)}

	m := &EstimateMetrics{
		estimatesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "web_estimate",
			Name:        "estimates_generated_total",
			Help:        "Estimate documents generated.",
			ConstLabels: constLabels,
		}),
		pdfExports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "web_estimate",
			Name:        "pdf_exports_total",
			Help:        "PDF export attempts by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		persistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "web_estimate",
			Name:        "state_persistence_failures_total",
			Help:        "Best-effort selection persistence failures by operation.",
			ConstLabels: constLabels,
		}, []string{"op"}),
		handoffs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "web_estimate",
			Name:        "handoffs_total",
			Help:        "Estimate PDF handoffs by operation.",
			ConstLabels: constLabels,
		}, []string{"op"}),
	}
	reg.MustRegister(m.estimatesGenerated, m.pdfExports, m.persistenceFailures, m.handoffs)
	return m
}

func (m *EstimateMetrics) EstimateGenerated() {
	m.estimatesGenerated.Inc()
}

func (m *EstimateMetrics) PDFExport(outcome string) {
	m.pdfExports.WithLabelValues(outcome).Inc()
}

func (m *EstimateMetrics) PersistenceFailure(op string) {
	m.persistenceFailures.WithLabelValues(op).Inc()
}

func (m *EstimateMetrics) Handoff(op string) {
	m.handoffs.WithLabelValues(op).Inc()
}
