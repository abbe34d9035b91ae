package response

import (
	"time"

	"design_studio/internal/domain/fulfillment"
	"design_studio/internal/usecase"
)

// DeadlineResponse is present only for orders under SLA tracking.
type DeadlineResponse struct {
	DueAt            time.Time `json:"due_at"`
	WindowSeconds    int64     `json:"window_seconds"`
	RemainingSeconds int64     `json:"remaining_seconds"`
	Urgency          string    `json:"urgency"`
}

type OrderViewResponse struct {
	Order       DesignOrderResponse `json:"order"`
	PackageName string              `json:"package_name,omitempty"`
	Complete    bool                `json:"complete"`
	Inactive    bool                `json:"inactive"`
	Deadline    *DeadlineResponse   `json:"deadline,omitempty"`
}

type OrderQueueResponse struct {
	EvaluatedAt time.Time           `json:"evaluated_at"`
	Orders      []OrderViewResponse `json:"orders"`
	Stats       fulfillment.Stats   `json:"stats"`
}

type CustomerStatusResponse struct {
	EvaluatedAt time.Time `json:"evaluated_at"`
	OrderViewResponse
}

func FromOrderView(v usecase.OrderView) OrderViewResponse {
	res := OrderViewResponse{
		Order:    FromDesignOrder(v.Order),
		Complete: v.Assessment.Complete,
		Inactive: v.Assessment.Inactive,
	}
	if v.Package != nil {
		res.PackageName = v.Package.Name
	}
	if d, u := v.Assessment.Deadline, v.Assessment.Urgency; d != nil && u != nil {
		res.Deadline = &DeadlineResponse{
			DueAt:            d.At,
			WindowSeconds:    int64(d.Window / time.Second),
			RemainingSeconds: int64(u.Remaining / time.Second),
			Urgency:          string(u.Tier),
		}
	}
	return res
}

func FromQueueSnapshot(s usecase.QueueSnapshot) OrderQueueResponse {
	orders := make([]OrderViewResponse, 0, len(s.Orders))
	for _, v := range s.Orders {
		orders = append(orders, FromOrderView(v))
	}
	return OrderQueueResponse{
		EvaluatedAt: s.EvaluatedAt,
		Orders:      orders,
		Stats:       s.Stats,
	}
}

func FromCustomerStatus(s usecase.CustomerStatus) CustomerStatusResponse {
	return CustomerStatusResponse{
		EvaluatedAt:       s.EvaluatedAt,
		OrderViewResponse: FromOrderView(s.View),
	}
}
