package fulfillment

import (
	"time"

	"design_studio/internal/domain/entities"
)

// Assessment bundles the derived state of one order for a single `now`.
// Deadline and Urgency are nil when the order is not deadline-eligible.
type Assessment struct {
	KnownStatus   bool      `json:"known_status"`
	Complete      bool      `json:"complete"`
	Inactive      bool      `json:"inactive"`
	DisplayStatus string    `json:"display_status"`
	Deadline      *Deadline `json:"deadline,omitempty"`
	Urgency       *Urgency  `json:"urgency,omitempty"`
}

// Evaluate runs completion, deadline and urgency for one order.
func Evaluate(o entities.DesignOrder, pkg *entities.DesignPackage, cfg *entities.SLAConfig, now time.Time) Assessment {
	a := Assessment{
		KnownStatus:   IsKnownStatus(o.Status),
		Complete:      IsComplete(o),
		Inactive:      IsInactive(o),
		DisplayStatus: DisplayStatus(o),
	}
	if d, ok := ComputeDeadline(o, pkg, cfg, now); ok {
		u := ClassifyUrgency(d.At, d.Window, now)
		a.Deadline = &d
		a.Urgency = &u
	}
	return a
}
