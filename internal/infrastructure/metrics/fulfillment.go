// Package metrics exposes Prometheus collectors for the fulfillment queue.
package metrics

import (
	"design_studio/internal/domain/fulfillment"

	"github.com/prometheus/client_golang/prometheus"
)

// FulfillmentMetrics records what the operator queue last rendered and the
// lifecycle transitions applied. A nil *FulfillmentMetrics is a no-op.
type FulfillmentMetrics struct {
	openOrders    *prometheus.GaugeVec
	unknownStatus prometheus.Gauge
	transitions   *prometheus.CounterVec
}

func NewFulfillmentMetrics(reg prometheus.Registerer) *FulfillmentMetrics {
	m := &FulfillmentMetrics{
		openOrders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "design_orders",
			Name:      "open_orders",
			Help:      "Open orders in the last rendered operator queue, by urgency tier.",
		}, []string{"tier"}),
		unknownStatus: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "design_orders",
			Name:      "unknown_status_orders",
			Help:      "Orders with an unrecognized status in the last rendered operator queue.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "design_orders",
			Name:      "transitions_total",
			Help:      "Lifecycle transitions applied, by target status.",
		}, []string{"status"}),
	}
	reg.MustRegister(m.openOrders, m.unknownStatus, m.transitions)
	return m
}

// ObserveQueue replaces the per-tier and unknown-status gauges with one
// snapshot's counts.
func (m *FulfillmentMetrics) ObserveQueue(counts map[fulfillment.Tier]int, unknown int) {
	if m == nil {
		return
	}
	for _, tier := range []fulfillment.Tier{fulfillment.TierNormal, fulfillment.TierUrgent, fulfillment.TierOverdue} {
		m.openOrders.WithLabelValues(string(tier)).Set(float64(counts[tier]))
	}
	m.unknownStatus.Set(float64(unknown))
}

func (m *FulfillmentMetrics) IncTransition(status string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(status).Inc()
}
