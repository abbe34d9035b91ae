package fulfillment

import (
	"strings"

	"design_studio/internal/domain/entities"
)

// Filter selects a tab of the operator queue.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterRevision  Filter = "revision"
	FilterCompleted Filter = "completed"
)

// ParseFilter normalizes a raw query value. Empty means FilterAll.
func ParseFilter(raw string) Filter {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return FilterAll
	}
	return Filter(v)
}

// IsValid reports whether f is a named tab or a stored status.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterRevision, FilterCompleted:
		return true
	}
	return IsKnownStatus(entities.OrderStatus(f))
}

// Matches reports whether o belongs to the tab. Any other value is compared
// with the stored status.
func (f Filter) Matches(o entities.DesignOrder) bool {
	switch f {
	case FilterAll, "":
		return true
	case FilterActive:
		return !IsInactive(o)
	case FilterRevision:
		return o.Status == entities.OrderStatusRevisionRequested
	case FilterCompleted:
		return IsComplete(o)
	default:
		return o.Status == entities.OrderStatus(f)
	}
}
