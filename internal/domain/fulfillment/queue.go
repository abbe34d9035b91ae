package fulfillment

import (
	"cmp"
	"slices"

	"design_studio/internal/domain/entities"
)

// queuePriority returns a sort priority for open orders (lower = first).
func queuePriority(s entities.OrderStatus) int {
	switch s {
	case entities.OrderStatusRevisionRequested:
		return 0
	case entities.OrderStatusPending:
		return 1
	default:
		return 2
	}
}

// CompareQueue orders two orders for the operator queue:
// 1. Open orders before complete ones
// 2. Open: revision_requested, then pending, then the rest
// 3. Open, same priority: oldest first
// 4. Complete: newest first
func CompareQueue(a, b entities.DesignOrder) int {
	ca, cb := IsComplete(a), IsComplete(b)
	if ca != cb {
		if ca {
			return 1
		}
		return -1
	}
	if ca {
		return b.CreatedAt.Compare(a.CreatedAt)
	}
	if c := cmp.Compare(queuePriority(a.Status), queuePriority(b.Status)); c != 0 {
		return c
	}
	return a.CreatedAt.Compare(b.CreatedAt)
}

// SortQueue returns a stably sorted copy of orders. The input is not modified.
func SortQueue(orders []entities.DesignOrder) []entities.DesignOrder {
	return SortQueueBy(orders, func(o entities.DesignOrder) entities.DesignOrder { return o })
}

// SortQueueBy sorts any queue item that wraps an order, using CompareQueue.
func SortQueueBy[T any](items []T, order func(T) entities.DesignOrder) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return CompareQueue(order(a), order(b))
	})
	return out
}
