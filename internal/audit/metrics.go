package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Drop reasons used as the "reason" label.
const (
	DropBreakerOpen = "breaker_open"
	DropBufferFull  = "buffer_full"
)

// Metrics holds Prometheus metrics for admin audit publishing.
type Metrics struct {
	RecordsEmitted *prometheus.CounterVec
	WriteFailures  *prometheus.CounterVec
	RecordsDropped *prometheus.CounterVec
	BreakerOpen    *prometheus.GaugeVec
}

// NewMetrics registers the audit metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "taskhub_admin_audit_records_emitted_total",
			Help: "Total number of admin audit records handed to the publisher",
		}, []string{"kind", "group"}),
		WriteFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "taskhub_admin_audit_sink_write_failures_total",
			Help: "Total number of failed admin audit sink writes",
		}, []string{"sink"}),
		RecordsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "taskhub_admin_audit_records_dropped_total",
			Help: "Total number of admin audit records dropped without a write attempt",
		}, []string{"sink", "reason"}),
		BreakerOpen: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "taskhub_admin_audit_sink_breaker_open",
			Help: "Circuit breaker state per sink (0=closed/healthy, 1=open/unhealthy)",
		}, []string{"sink"}),
	}
}

func (m *Metrics) incEmitted(kind Kind, group string) {
	if m == nil {
		return
	}
	m.RecordsEmitted.WithLabelValues(string(kind), group).Inc()
}

func (m *Metrics) incWriteFailure(sink string) {
	if m == nil {
		return
	}
	m.WriteFailures.WithLabelValues(sink).Inc()
}

func (m *Metrics) incDropped(sink, reason string) {
	if m == nil {
		return
	}
	m.RecordsDropped.WithLabelValues(sink, reason).Inc()
}

func (m *Metrics) setBreakerOpen(sink string, open bool) {
	if m == nil {
		return
	}
	if open {
		m.BreakerOpen.WithLabelValues(sink).Set(1)
	} else {
		m.BreakerOpen.WithLabelValues(sink).Set(0)
	}
}
