package apierror

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts formatted errors by class name and code. Errors that are
// not structured are counted with empty labels.
type Metrics struct {
	formatted *prometheus.CounterVec
}

// NewMetrics registers the apierror_formatted_total counter with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	formatted := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apierror",
			Name:      "formatted_total",
			Help:      "Total number of GraphQL errors formatted for clients",
		},
		[]string{"name", "code"},
	)
	if err := reg.Register(formatted); err != nil {
		return nil, fmt.Errorf("failed to register apierror metrics: %w", err)
	}
	return &Metrics{formatted: formatted}, nil
}

func (m *Metrics) observe(err *Error) {
	if err == nil {
		m.formatted.WithLabelValues("", "").Inc()
		return
	}
	m.formatted.WithLabelValues(err.Name(), string(err.Code())).Inc()
}
