package interfaces

//go:generate mockgen -source=order_payment_repository_interface.go -destination=mocks/order_payment_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"design_studio/internal/domain/entities"
)

// IOrderPaymentRepository abstracts DynamoDB persistence for OrderPayment.

type IOrderPaymentRepository interface {
	Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}
