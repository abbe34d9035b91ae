package fulfillment

import "design_studio/internal/domain/entities"

// DisplayStatusCompleted is the display-only label for finished orders.
const DisplayStatusCompleted = "completed"

// IsComplete reports whether the order should be shown as finished: it was
// approved, or its final delivery went out with no revision cycles left.
// Cancelled and unknown statuses are never complete.
func IsComplete(o entities.DesignOrder) bool {
	switch o.Status {
	case entities.OrderStatusApproved:
		return true
	case entities.OrderStatusDelivered:
		return o.RevisionsUsed >= o.EffectiveMaxRevisions()
	default:
		return false
	}
}

// IsInactive reports whether no more production work is expected.
func IsInactive(o entities.DesignOrder) bool {
	return IsComplete(o) || o.Status == entities.OrderStatusCancelled
}

// DisplayStatus is the label both the operator and the customer views show.
func DisplayStatus(o entities.DesignOrder) string {
	if IsComplete(o) {
		return DisplayStatusCompleted
	}
	return string(o.Status)
}
