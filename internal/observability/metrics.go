package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the document host.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	documentsGenerated *prometheus.CounterVec
	webhookDeliveries  *prometheus.CounterVec
	pdfRequests        *prometheus.CounterVec
	unknownTokens      prometheus.Counter
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		documentsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docgen_documents_generated_total",
				Help: "Documents generated, by document kind.",
			},
			[]string{"kind"},
		),
		webhookDeliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docgen_webhook_deliveries_total",
				Help: "Webhook delivery attempts, by outcome.",
			},
			[]string{"status"},
		),
		pdfRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docgen_pdf_requests_total",
				Help: "External PDF conversion requests, by outcome.",
			},
			[]string{"status"},
		),
		unknownTokens: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "docgen_unknown_tokens_total",
				Help: "Placeholder tokens left unresolved in generated output.",
			},
		),
	}
}

// IncrDocumentGenerated counts one generated document of the given kind.
func (m *Metrics) IncrDocumentGenerated(kind string) {
	m.documentsGenerated.WithLabelValues(kind).Inc()
}

// IncrWebhookDelivery counts one webhook delivery attempt.
func (m *Metrics) IncrWebhookDelivery(status string) {
	m.webhookDeliveries.WithLabelValues(status).Inc()
}

// IncrPDFRequest counts one PDF conversion attempt.
func (m *Metrics) IncrPDFRequest(status string) {
	m.pdfRequests.WithLabelValues(status).Inc()
}

// AddUnknownTokens records unresolved placeholder tokens.
func (m *Metrics) AddUnknownTokens(n int) {
	if n > 0 {
		m.unknownTokens.Add(float64(n))
	}
}
