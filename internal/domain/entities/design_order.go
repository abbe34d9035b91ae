package entities

import "time"

// OrderStatus is the stored lifecycle status of a design order.
//
// "completed" is never stored: it is a display state derived by the
// fulfillment package (see fulfillment.DisplayStatus).
type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "pending"
	OrderStatusInProgress        OrderStatus = "in_progress"
	OrderStatusDelivered         OrderStatus = "delivered"
	OrderStatusRevisionRequested OrderStatus = "revision_requested"
	OrderStatusApproved          OrderStatus = "approved"
	OrderStatusCancelled         OrderStatus = "cancelled"
)

// OrderPaymentStatus tracks checkout state, independent from production status.
type OrderPaymentStatus string

const (
	OrderPaymentPending OrderPaymentStatus = "pending"
	OrderPaymentPaid    OrderPaymentStatus = "paid"
	OrderPaymentFailed  OrderPaymentStatus = "failed"
)

// DefaultMaxRevisions is the number of revision cycles included with a package.
const DefaultMaxRevisions = 2

// DesignOrder is a paid design-production order.
//
// Storage model (DynamoDB):
//   - PK: id
//
// RevisionsUsed is incremented by the revision transition only.
type DesignOrder struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id"`
	PackageID     string             `json:"package_id"`
	Status        OrderStatus        `json:"status"`
	PaymentStatus OrderPaymentStatus `json:"payment_status"`
	RevisionsUsed int                `json:"revisions_used"`
	MaxRevisions  int                `json:"max_revisions"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// EffectiveMaxRevisions returns MaxRevisions, or the product default when the
// stored value is missing or non-positive.
func (o DesignOrder) EffectiveMaxRevisions() int {
	if o.MaxRevisions <= 0 {
		return DefaultMaxRevisions
	}
	return o.MaxRevisions
}
