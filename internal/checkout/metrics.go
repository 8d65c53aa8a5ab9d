package checkout

import (
	"github.com/nikolayk812/possale/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	completed *prometheus.CounterVec
	revenue   *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	abandoned prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		completed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_orders_completed_total",
			Help: "Completed sales by payment method",
		}, []string{"payment_method"}),
		revenue: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_revenue_total",
			Help: "Final totals of completed sales",
		}, []string{"currency", "payment_method"}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_order_completions_rejected_total",
			Help: "Completion attempts rejected before commit",
		}, []string{"reason"}),
		abandoned: f.NewCounter(prometheus.CounterOpts{
			Name: "pos_orders_abandoned_total",
			Help: "Checkouts cancelled without completion",
		}),
	}
}

func (m *Metrics) orderCompleted(summary domain.OrderSummary) {
	if m == nil {
		return
	}
	method := string(summary.PaymentMethod)
	m.completed.WithLabelValues(method).Inc()
	m.revenue.WithLabelValues(summary.FinalTotal.Currency.String(), method).Add(summary.FinalTotal.Amount.InexactFloat64())
}

func (m *Metrics) completionRejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) orderAbandoned() {
	if m == nil {
		return
	}
	m.abandoned.Inc()
}

func (m *Metrics) CompletedCounter(method domain.PaymentMethod) prometheus.Counter {
	return m.completed.WithLabelValues(string(method))
}

func (m *Metrics) RejectedCounter(reason string) prometheus.Counter {
	return m.rejected.WithLabelValues(reason)
}
