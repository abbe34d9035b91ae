package fulfillment

import (
	"errors"
	"fmt"
	"time"

	"design_studio/internal/domain/entities"
)

var (
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrRevisionsExhausted = errors.New("no revisions remaining")
)

var transitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.OrderStatusPending:           {entities.OrderStatusInProgress},
	entities.OrderStatusInProgress:        {entities.OrderStatusDelivered},
	entities.OrderStatusDelivered:         {entities.OrderStatusRevisionRequested, entities.OrderStatusApproved},
	entities.OrderStatusRevisionRequested: {entities.OrderStatusInProgress},
	entities.OrderStatusApproved:          nil,
	entities.OrderStatusCancelled:         nil,
}

// IsKnownStatus reports whether s is one of the stored lifecycle statuses.
func IsKnownStatus(s entities.OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether s accepts no further transitions.
func IsTerminal(s entities.OrderStatus) bool {
	return s == entities.OrderStatusApproved || s == entities.OrderStatusCancelled
}

// CanTransition reports whether from -> to is a legal lifecycle edge.
//
// Cancellation is an operator action allowed from any non-terminal status.
func CanTransition(from, to entities.OrderStatus) bool {
	next, ok := transitions[from]
	if !ok || !IsKnownStatus(to) {
		return false
	}
	if to == entities.OrderStatusCancelled {
		return !IsTerminal(from)
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// CanRequestRevision reports whether the client may ask for another revision
// cycle on a delivered order.
func CanRequestRevision(o entities.DesignOrder) bool {
	return o.Status == entities.OrderStatusDelivered && o.RevisionsUsed < o.EffectiveMaxRevisions()
}

// ApplyTransition returns a copy of o moved to status `to`. It does not
// persist anything; the caller must store the result with a compare-and-set
// on o.Status.
func ApplyTransition(o entities.DesignOrder, to entities.OrderStatus, now time.Time) (entities.DesignOrder, error) {
	if !IsKnownStatus(o.Status) {
		return entities.DesignOrder{}, fmt.Errorf("%w: %q", ErrUnknownStatus, o.Status)
	}
	if !CanTransition(o.Status, to) {
		return entities.DesignOrder{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}
	if to == entities.OrderStatusRevisionRequested {
		if !CanRequestRevision(o) {
			return entities.DesignOrder{}, ErrRevisionsExhausted
		}
		o.RevisionsUsed++
	}
	o.Status = to
	o.UpdatedAt = now
	return o, nil
}
