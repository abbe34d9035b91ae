package response

import (
	"design_studio/internal/domain/entities"
	"design_studio/internal/domain/fulfillment"
	"time"
)

type DesignOrderResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	PackageID     string    `json:"package_id"`
	Status        string    `json:"status"`
	DisplayStatus string    `json:"display_status"`
	PaymentStatus string    `json:"payment_status"`
	RevisionsUsed int       `json:"revisions_used"`
	MaxRevisions  int       `json:"max_revisions"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromDesignOrder(o entities.DesignOrder) DesignOrderResponse {
	return DesignOrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		PackageID:     o.PackageID,
		Status:        string(o.Status),
		DisplayStatus: fulfillment.DisplayStatus(o),
		PaymentStatus: string(o.PaymentStatus),
		RevisionsUsed: o.RevisionsUsed,
		MaxRevisions:  o.EffectiveMaxRevisions(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
