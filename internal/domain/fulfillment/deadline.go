package fulfillment

import (
	"math"
	"time"

	"design_studio/internal/domain/entities"
)

const day = 24 * time.Hour

// Deadline is the target completion instant and the SLA window it closes.
type Deadline struct {
	At     time.Time     `json:"at"`
	Window time.Duration `json:"window"`
}

// ComputeDeadline derives the SLA deadline of an open order.
//
// The second result is false when the order is not deadline-eligible:
// complete, approved, cancelled, or carrying an unknown status. Revision
// cycles are anchored on UpdatedAt (when the revision was requested) and get
// a share of the original estimate, floored at the policy's minimum hours.
// Anchors later than now are clamped to now.
func ComputeDeadline(o entities.DesignOrder, pkg *entities.DesignPackage, cfg *entities.SLAConfig, now time.Time) (Deadline, bool) {
	policy := cfg.Resolve()
	estimated := estimatedDays(pkg, policy)

	var anchor time.Time
	var days float64
	switch o.Status {
	case entities.OrderStatusApproved, entities.OrderStatusCancelled:
		return Deadline{}, false
	case entities.OrderStatusRevisionRequested:
		anchor = o.UpdatedAt
		if anchor.IsZero() {
			anchor = o.CreatedAt
		}
		days = math.Max(estimated*policy.PercentOfOriginal/100, policy.MinHours/24)
	case entities.OrderStatusPending, entities.OrderStatusInProgress, entities.OrderStatusDelivered:
		if IsComplete(o) {
			return Deadline{}, false
		}
		anchor = o.CreatedAt
		days = estimated
	default:
		return Deadline{}, false
	}

	if anchor.After(now) {
		anchor = now
	}
	window := daysToDuration(days)
	return Deadline{At: anchor.Add(window), Window: window}, true
}

func estimatedDays(pkg *entities.DesignPackage, policy entities.ResolvedSLAConfig) float64 {
	if !policy.UsePackageEstimate {
		return policy.DefaultDays
	}
	if pkg != nil && pkg.EstimatedDays != nil && *pkg.EstimatedDays > 0 {
		return float64(*pkg.EstimatedDays)
	}
	return entities.DefaultPackageEstimateDays
}

func daysToDuration(days float64) time.Duration {
	return time.Duration(math.Round(days * float64(day)))
}
