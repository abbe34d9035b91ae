package usecase

//go:generate mockgen -source=order_tracking_usecase.go -destination=../adapter/http/handlers/mocks/order_tracking_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"design_studio/internal/domain/entities"
	"design_studio/internal/domain/fulfillment"
	"design_studio/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrInvalidQueueFilter = errors.New("invalid queue filter")

// OrderView is one order with its derived state for a single `now`.
type OrderView struct {
	Order      entities.DesignOrder
	Package    *entities.DesignPackage
	Assessment fulfillment.Assessment
}

// QueueSnapshot is what the operator dashboard renders. Stats always cover
// every order, regardless of the filter applied to Orders.
type QueueSnapshot struct {
	EvaluatedAt time.Time
	Orders      []OrderView
	Stats       fulfillment.Stats
}

// CustomerStatus is what the customer order page renders.
type CustomerStatus struct {
	EvaluatedAt time.Time
	View        OrderView
}

// IOrderTrackingUseCase serves the two read paths of the fulfillment engine:
// the operator queue and the customer status page. Both go through
// fulfillment.Evaluate so they can never disagree on completion or deadlines.

type IOrderTrackingUseCase interface {
	OperatorQueue(ctx context.Context, filter string) (QueueSnapshot, error)
	CustomerStatus(ctx context.Context, orderID string) (CustomerStatus, error)
	Stats(ctx context.Context) (fulfillment.Stats, error)
}

type OrderTrackingUseCase struct {
	orders   interfaces.IDesignOrderRepository
	packages interfaces.IDesignPackageRepository
	sla      interfaces.ISLAConfigRepository
	clock    interfaces.IClock
	metrics  interfaces.IFulfillmentMetrics
	log      *zap.Logger
}

var _ IOrderTrackingUseCase = (*OrderTrackingUseCase)(nil)

func NewOrderTrackingUseCase(
	orders interfaces.IDesignOrderRepository,
	packages interfaces.IDesignPackageRepository,
	sla interfaces.ISLAConfigRepository,
	clock interfaces.IClock,
	metrics interfaces.IFulfillmentMetrics,
	log *zap.Logger,
) *OrderTrackingUseCase {
	if metrics == nil {
		metrics = interfaces.NopFulfillmentMetrics{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderTrackingUseCase{
		orders:   orders,
		packages: packages,
		sla:      sla,
		clock:    clock,
		metrics:  metrics,
		log:      log.Named("tracking.usecase"),
	}
}

func (u *OrderTrackingUseCase) OperatorQueue(ctx context.Context, filter string) (QueueSnapshot, error) {
	f := fulfillment.ParseFilter(filter)
	if !f.IsValid() {
		return QueueSnapshot{}, ErrInvalidQueueFilter
	}

	orders, err := u.orders.List(ctx)
	if err != nil {
		return QueueSnapshot{}, err
	}
	cfg, err := u.sla.Get(ctx)
	if err != nil {
		return QueueSnapshot{}, err
	}
	pkgs, err := u.packages.ListByIDs(ctx, packageIDs(orders))
	if err != nil {
		return QueueSnapshot{}, err
	}

	now := u.clock.Now()
	tiers := map[fulfillment.Tier]int{}
	var unknown []string
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		v := u.evaluate(o, pkgs, cfg, now)
		if v.Assessment.Urgency != nil {
			tiers[v.Assessment.Urgency.Tier]++
		}
		if !fulfillment.IsKnownStatus(o.Status) {
			unknown = append(unknown, o.ID)
		}
		if f.Matches(o) {
			views = append(views, v)
		}
	}
	u.metrics.ObserveQueue(tiers, len(unknown))
	if len(unknown) > 0 {
		u.log.Warn("orders with unknown status excluded from deadline tracking",
			zap.Int("count", len(unknown)),
			zap.Strings("order_ids", unknown))
	}

	return QueueSnapshot{
		EvaluatedAt: now,
		Orders:      fulfillment.SortQueueBy(views, func(v OrderView) entities.DesignOrder { return v.Order }),
		Stats:       fulfillment.Summarize(orders),
	}, nil
}

func (u *OrderTrackingUseCase) CustomerStatus(ctx context.Context, orderID string) (CustomerStatus, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return CustomerStatus{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return CustomerStatus{}, err
	}
	if o.ID == "" {
		return CustomerStatus{}, ErrOrderNotFound
	}
	cfg, err := u.sla.Get(ctx)
	if err != nil {
		return CustomerStatus{}, err
	}
	pkgs, err := u.packages.ListByIDs(ctx, packageIDs([]entities.DesignOrder{o}))
	if err != nil {
		return CustomerStatus{}, err
	}

	if !fulfillment.IsKnownStatus(o.Status) {
		u.log.Debug("customer status for order with unknown status",
			zap.String("order_id", o.ID),
			zap.String("status", string(o.Status)))
	}

	now := u.clock.Now()
	return CustomerStatus{EvaluatedAt: now, View: u.evaluate(o, pkgs, cfg, now)}, nil
}

func (u *OrderTrackingUseCase) Stats(ctx context.Context) (fulfillment.Stats, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return fulfillment.Stats{}, err
	}
	return fulfillment.Summarize(orders), nil
}

func (u *OrderTrackingUseCase) evaluate(o entities.DesignOrder, pkgs map[string]entities.DesignPackage, cfg *entities.SLAConfig, now time.Time) OrderView {
	var pkg *entities.DesignPackage
	if p, ok := pkgs[o.PackageID]; ok {
		pkg = &p
	}
	return OrderView{
		Order:      o,
		Package:    pkg,
		Assessment: fulfillment.Evaluate(o, pkg, cfg, now),
	}
}

func packageIDs(orders []entities.DesignOrder) []string {
	seen := make(map[string]struct{}, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.PackageID == "" {
			continue
		}
		if _, ok := seen[o.PackageID]; ok {
			continue
		}
		seen[o.PackageID] = struct{}{}
		ids = append(ids, o.PackageID)
	}
	return ids
}
