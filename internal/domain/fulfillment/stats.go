package fulfillment

import "design_studio/internal/domain/entities"

// Stats are the operator dashboard counters. Every order lands in exactly one
// bucket; delivered orders with no revisions left count as completed.
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Delivered  int `json:"delivered"`
	Revision   int `json:"revision"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	Unknown    int `json:"unknown"`
}

func Summarize(orders []entities.DesignOrder) Stats {
	var s Stats
	for _, o := range orders {
		s.Total++
		if IsComplete(o) {
			s.Completed++
			continue
		}
		switch o.Status {
		case entities.OrderStatusPending:
			s.Pending++
		case entities.OrderStatusInProgress:
			s.InProgress++
		case entities.OrderStatusDelivered:
			s.Delivered++
		case entities.OrderStatusRevisionRequested:
			s.Revision++
		case entities.OrderStatusCancelled:
			s.Cancelled++
		default:
			s.Unknown++
		}
	}
	return s
}
