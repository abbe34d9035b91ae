package interfaces

//go:generate mockgen -source=design_order_repository_interface.go -destination=mocks/design_order_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"design_studio/internal/domain/entities"
)

// IDesignOrderRepository abstracts DynamoDB persistence for DesignOrder.
//
// TransitionStatus is a compare-and-set: it writes next only while the stored
// status and revisions_used still equal those of current. A lost race returns
// ok=false and no error.
//
// UpdatePaymentStatus returns an empty order when the order is missing or
// already carries status.

type IDesignOrderRepository interface {
	Create(ctx context.Context, o entities.DesignOrder) (entities.DesignOrder, error)
	GetByID(ctx context.Context, id string) (entities.DesignOrder, error)
	List(ctx context.Context) ([]entities.DesignOrder, error)
	TransitionStatus(ctx context.Context, current, next entities.DesignOrder) (updated entities.DesignOrder, ok bool, err error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.OrderPaymentStatus) (entities.DesignOrder, error)
}
