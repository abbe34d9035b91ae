package interfaces

import "design_studio/internal/domain/fulfillment"

// IFulfillmentMetrics receives queue and lifecycle observations.
type IFulfillmentMetrics interface {
	ObserveQueue(counts map[fulfillment.Tier]int, unknown int)
	IncTransition(status string)
}

// NopFulfillmentMetrics discards every observation.
type NopFulfillmentMetrics struct{}

func (NopFulfillmentMetrics) ObserveQueue(map[fulfillment.Tier]int, int) {}
func (NopFulfillmentMetrics) IncTransition(string)                       {}
