package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pnrcheck_validations_total",
		Help: "Total number of personnummer validations by result",
	}, []string{"result"})

	tokensIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pnrcheck_tokens_issued_total",
		Help: "Total number of auth tokens issued",
	})
)

// Metrics holds all Prometheus metrics for the service
type Metrics struct {
	ValidationsTotal *prometheus.CounterVec
	TokensIssued     prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		ValidationsTotal: validationsTotal,
		TokensIssued:     tokensIssued,
	}
}

func (m *Metrics) ObserveValidation(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.ValidationsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncrementTokensIssued() {
	m.TokensIssued.Inc()
}
