package response

import (
	"design_studio/internal/domain/entities"
	"time"
)

type OrderPaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		PaymentID:    p.ID,
		OrderID:      p.OrderID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromOrderPayments(ps []entities.OrderPayment) []OrderPaymentResponse {
	out := make([]OrderPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromOrderPayment(p))
	}
	return out
}
