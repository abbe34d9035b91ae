package fulfillment

import "time"

// Tier is the escalation level shown for an open order.
type Tier string

const (
	TierNormal  Tier = "normal"
	TierUrgent  Tier = "urgent"
	TierOverdue Tier = "overdue"
)

// UrgentFraction is the tail of the SLA window classified as urgent.
const UrgentFraction = 0.25

type Urgency struct {
	Tier      Tier          `json:"tier"`
	Remaining time.Duration `json:"remaining"`
}

// ClassifyUrgency maps a deadline and its window to a tier. The urgent
// threshold is strict: exactly a quarter of the window left is still normal.
func ClassifyUrgency(deadline time.Time, window time.Duration, now time.Time) Urgency {
	remaining := deadline.Sub(now)
	switch {
	case remaining < 0:
		return Urgency{Tier: TierOverdue, Remaining: remaining}
	case float64(remaining) < UrgentFraction*float64(window):
		return Urgency{Tier: TierUrgent, Remaining: remaining}
	default:
		return Urgency{Tier: TierNormal, Remaining: remaining}
	}
}
