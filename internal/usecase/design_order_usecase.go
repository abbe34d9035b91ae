package usecase

//go:generate mockgen -source=design_order_usecase.go -destination=../adapter/http/handlers/mocks/design_order_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"design_studio/internal/domain/entities"
	"design_studio/internal/domain/fulfillment"
	"design_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound    = errors.New("design order not found")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidPackageID = errors.New("invalid package id")
	ErrPackageNotFound  = errors.New("design package not found")
	ErrOrderConflict    = errors.New("order status changed concurrently")
)

// IDesignOrderUseCase exposes order creation and the lifecycle transitions.
//
// Transitions are validated by fulfillment.ApplyTransition and stored with a
// compare-and-set on the status that was loaded, so two operators acting on
// the same delivered order cannot both win.

type IDesignOrderUseCase interface {
	CreateOrder(ctx context.Context, customerID, packageID string) (entities.DesignOrder, error)
	GetByID(ctx context.Context, id string) (entities.DesignOrder, error)
	StartProduction(ctx context.Context, id string) (entities.DesignOrder, error)
	Deliver(ctx context.Context, id string) (entities.DesignOrder, error)
	RequestRevision(ctx context.Context, id string) (entities.DesignOrder, error)
	Approve(ctx context.Context, id string) (entities.DesignOrder, error)
	Cancel(ctx context.Context, id string) (entities.DesignOrder, error)
}

type DesignOrderUseCase struct {
	repo        interfaces.IDesignOrderRepository
	packageRepo interfaces.IDesignPackageRepository
	clock       interfaces.IClock
	metrics     interfaces.IFulfillmentMetrics
	log         *zap.Logger
}

var _ IDesignOrderUseCase = (*DesignOrderUseCase)(nil)

func NewDesignOrderUseCase(
	repo interfaces.IDesignOrderRepository,
	packageRepo interfaces.IDesignPackageRepository,
	clock interfaces.IClock,
	metrics interfaces.IFulfillmentMetrics,
	log *zap.Logger,
) *DesignOrderUseCase {
	if metrics == nil {
		metrics = interfaces.NopFulfillmentMetrics{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DesignOrderUseCase{
		repo:        repo,
		packageRepo: packageRepo,
		clock:       clock,
		metrics:     metrics,
		log:         log.Named("order.usecase"),
	}
}

func (u *DesignOrderUseCase) CreateOrder(ctx context.Context, customerID, packageID string) (entities.DesignOrder, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return entities.DesignOrder{}, ErrInvalidPackageID
	}

	pkg, err := u.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return entities.DesignOrder{}, err
	}
	if pkg.ID == "" {
		return entities.DesignOrder{}, ErrPackageNotFound
	}

	now := u.clock.Now()
	o := entities.DesignOrder{
		ID:            uuid.NewString(),
		CustomerID:    strings.TrimSpace(customerID),
		PackageID:     pkg.ID,
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.OrderPaymentPending,
		MaxRevisions:  entities.DefaultMaxRevisions,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.DesignOrder{}, err
	}
	u.log.Info("order created", zap.String("order_id", created.ID), zap.String("package_id", created.PackageID))
	return created, nil
}

func (u *DesignOrderUseCase) GetByID(ctx context.Context, id string) (entities.DesignOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DesignOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DesignOrder{}, err
	}
	if o.ID == "" {
		return entities.DesignOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *DesignOrderUseCase) StartProduction(ctx context.Context, id string) (entities.DesignOrder, error) {
	return u.transition(ctx, id, entities.OrderStatusInProgress)
}

func (u *DesignOrderUseCase) Deliver(ctx context.Context, id string) (entities.DesignOrder, error) {
	return u.transition(ctx, id, entities.OrderStatusDelivered)
}

func (u *DesignOrderUseCase) RequestRevision(ctx context.Context, id string) (entities.DesignOrder, error) {
	return u.transition(ctx, id, entities.OrderStatusRevisionRequested)
}

func (u *DesignOrderUseCase) Approve(ctx context.Context, id string) (entities.DesignOrder, error) {
	return u.transition(ctx, id, entities.OrderStatusApproved)
}

func (u *DesignOrderUseCase) Cancel(ctx context.Context, id string) (entities.DesignOrder, error) {
	return u.transition(ctx, id, entities.OrderStatusCancelled)
}

func (u *DesignOrderUseCase) transition(ctx context.Context, id string, to entities.OrderStatus) (entities.DesignOrder, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.DesignOrder{}, err
	}

	next, err := fulfillment.ApplyTransition(current, to, u.clock.Now())
	if err != nil {
		u.log.Info("transition rejected",
			zap.String("order_id", current.ID),
			zap.String("from", string(current.Status)),
			zap.String("to", string(to)),
			zap.Error(err))
		return entities.DesignOrder{}, err
	}

	updated, ok, err := u.repo.TransitionStatus(ctx, current, next)
	if err != nil {
		return entities.DesignOrder{}, err
	}
	if !ok {
		u.log.Warn("transition lost compare-and-set",
			zap.String("order_id", current.ID),
			zap.String("expected", string(current.Status)),
			zap.Int("expected_revisions", current.RevisionsUsed),
			zap.String("to", string(to)))
		return entities.DesignOrder{}, ErrOrderConflict
	}

	u.metrics.IncTransition(string(to))
	u.log.Info("order transitioned",
		zap.String("order_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
		zap.Int("revisions_used", updated.RevisionsUsed))
	return updated, nil
}
