package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"design_studio/internal/domain/entities"
	"design_studio/internal/domain/fulfillment"
	mock_interfaces "design_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type trackingMocks struct {
	orders   *mock_interfaces.MockIDesignOrderRepository
	packages *mock_interfaces.MockIDesignPackageRepository
	sla      *mock_interfaces.MockISLAConfigRepository
}

func newTrackingUseCase(t *testing.T, metrics *recordingMetrics, log *zap.Logger) (*OrderTrackingUseCase, trackingMocks) {
	ctrl := gomock.NewController(t)
	m := trackingMocks{
		orders:   mock_interfaces.NewMockIDesignOrderRepository(ctrl),
		packages: mock_interfaces.NewMockIDesignPackageRepository(ctrl),
		sla:      mock_interfaces.NewMockISLAConfigRepository(ctrl),
	}
	var rec = metrics
	if rec == nil {
		rec = &recordingMetrics{}
	}
	return NewOrderTrackingUseCase(m.orders, m.packages, m.sla, fixedClock{testNow}, rec, log), m
}

func queueOrders() []entities.DesignOrder {
	day := 24 * time.Hour
	return []entities.DesignOrder{
		{ID: "A", PackageID: "pkg-10", Status: entities.OrderStatusApproved, MaxRevisions: 2, CreatedAt: testNow.Add(-1 * day), UpdatedAt: testNow.Add(-1 * day)},
		{ID: "B", PackageID: "pkg-10", Status: entities.OrderStatusRevisionRequested, RevisionsUsed: 1, MaxRevisions: 2, CreatedAt: testNow.Add(-20 * day), UpdatedAt: testNow.Add(-6 * day)},
		{ID: "C", PackageID: "pkg-10", Status: entities.OrderStatusPending, MaxRevisions: 2, CreatedAt: testNow.Add(-9 * day), UpdatedAt: testNow.Add(-9 * day)},
		{ID: "D", PackageID: "pkg-missing", Status: entities.OrderStatusPending, MaxRevisions: 2, CreatedAt: testNow.Add(-2 * day), UpdatedAt: testNow.Add(-2 * day)},
	}
}

func queueIDs(views []OrderView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Order.ID)
	}
	return out
}

func TestOrderTrackingUseCase_OperatorQueue(t *testing.T) {
	pkgs := map[string]entities.DesignPackage{"pkg-10": {ID: "pkg-10", EstimatedDays: ptr(10)}}

	t.Run("sorted with derived state", func(t *testing.T) {
		metrics := &recordingMetrics{}
		uc, m := newTrackingUseCase(t, metrics, nil)
		m.orders.EXPECT().List(gomock.Any()).Return(queueOrders(), nil)
		m.sla.EXPECT().Get(gomock.Any()).Return(nil, nil)
		m.packages.EXPECT().ListByIDs(gomock.Any(), []string{"pkg-10", "pkg-missing"}).Return(pkgs, nil)

		snap, err := uc.OperatorQueue(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := queueIDs(snap.Orders)
		want := []string{"B", "C", "D", "A"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
		if !snap.EvaluatedAt.Equal(testNow) {
			t.Fatalf("expected evaluated at clock time, got %v", snap.EvaluatedAt)
		}

		// B: revision window 5d from UpdatedAt (6 days ago) -> overdue by 1 day.
		b := snap.Orders[0].Assessment
		if b.Urgency == nil || b.Urgency.Tier != fulfillment.TierOverdue {
			t.Fatalf("expected B overdue, got %+v", b.Urgency)
		}
		// C: 10d window from 9 days ago -> 1 day left, urgent.
		c := snap.Orders[1].Assessment
		if c.Urgency == nil || c.Urgency.Tier != fulfillment.TierUrgent {
			t.Fatalf("expected C urgent, got %+v", c.Urgency)
		}
		// D: unknown package falls back to 5 days, 3 left -> normal.
		d := snap.Orders[2].Assessment
		if d.Deadline == nil || d.Deadline.Window != 5*24*time.Hour || d.Urgency.Tier != fulfillment.TierNormal {
			t.Fatalf("unexpected D assessment: %+v", d)
		}
		if snap.Orders[2].Package != nil {
			t.Fatalf("expected no package for D")
		}
		// A: approved, complete, no deadline.
		a := snap.Orders[3].Assessment
		if !a.Complete || a.Deadline != nil || a.DisplayStatus != fulfillment.DisplayStatusCompleted {
			t.Fatalf("unexpected A assessment: %+v", a)
		}

		if snap.Stats.Total != 4 || snap.Stats.Pending != 2 || snap.Stats.Revision != 1 || snap.Stats.Completed != 1 {
			t.Fatalf("unexpected stats: %+v", snap.Stats)
		}
		if metrics.tiers[fulfillment.TierOverdue] != 1 || metrics.tiers[fulfillment.TierUrgent] != 1 || metrics.tiers[fulfillment.TierNormal] != 1 {
			t.Fatalf("unexpected tier metrics: %+v", metrics.tiers)
		}
	})

	t.Run("filter keeps global stats", func(t *testing.T) {
		uc, m := newTrackingUseCase(t, nil, nil)
		m.orders.EXPECT().List(gomock.Any()).Return(queueOrders(), nil)
		m.sla.EXPECT().Get(gomock.Any()).Return(nil, nil)
		m.packages.EXPECT().ListByIDs(gomock.Any(), gomock.Any()).Return(pkgs, nil)

		snap, err := uc.OperatorQueue(context.Background(), "revision")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Orders) != 1 || snap.Orders[0].Order.ID != "B" {
			t.Fatalf("unexpected filtered queue: %v", queueIDs(snap.Orders))
		}
		if snap.Stats.Total != 4 {
			t.Fatalf("expected stats over all orders, got %+v", snap.Stats)
		}
	})

	t.Run("policy from settings", func(t *testing.T) {
		uc, m := newTrackingUseCase(t, nil, nil)
		cfg := &entities.SLAConfig{DesignNew: entities.NewOrderPolicy{UsePackageEstimate: ptr(false), DefaultDays: ptr(3.0)}}
		m.orders.EXPECT().List(gomock.Any()).Return(queueOrders()[2:3], nil)
		m.sla.EXPECT().Get(gomock.Any()).Return(cfg, nil)
		m.packages.EXPECT().ListByIDs(gomock.Any(), gomock.Any()).Return(pkgs, nil)

		snap, err := uc.OperatorQueue(context.Background(), "all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		a := snap.Orders[0].Assessment
		if a.Deadline.Window != 3*24*time.Hour || a.Urgency.Tier != fulfillment.TierOverdue {
			t.Fatalf("expected 3 day policy window overdue, got %+v", a)
		}
	})

	t.Run("unknown status is logged and skipped", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		metrics := &recordingMetrics{}
		uc, m := newTrackingUseCase(t, metrics, zap.New(core))
		orders := []entities.DesignOrder{{ID: "X", Status: "pending_payment", CreatedAt: testNow}}
		m.orders.EXPECT().List(gomock.Any()).Return(orders, nil)
		m.sla.EXPECT().Get(gomock.Any()).Return(nil, nil)
		m.packages.EXPECT().ListByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		snap, err := uc.OperatorQueue(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Orders[0].Assessment.Deadline != nil {
			t.Fatalf("expected no deadline for unknown status")
		}
		warned := logs.FilterMessage("orders with unknown status excluded from deadline tracking").All()
		if len(warned) != 1 || warned[0].ContextMap()["count"] != int64(1) {
			t.Fatalf("expected one warning for the snapshot, got %v", logs.All())
		}
		if metrics.unknown != 1 || metrics.observed != 1 || snap.Stats.Unknown != 1 {
			t.Fatalf("expected unknown status counted once, metrics=%+v stats=%+v", metrics, snap.Stats)
		}
	})

	t.Run("customer views do not count unknown statuses", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		metrics := &recordingMetrics{}
		uc, m := newTrackingUseCase(t, metrics, zap.New(core))
		o := entities.DesignOrder{ID: "X", Status: "pending_payment", CreatedAt: testNow}
		m.orders.EXPECT().GetByID(gomock.Any(), "X").Return(o, nil).Times(3)
		m.sla.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(3)
		m.packages.EXPECT().ListByIDs(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

		for i := 0; i < 3; i++ {
			status, err := uc.CustomerStatus(context.Background(), "X")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status.View.Assessment.Deadline != nil {
				t.Fatalf("expected no deadline for unknown status")
			}
		}
		if metrics.observed != 0 || logs.Len() != 0 {
			t.Fatalf("expected no metrics or warnings from customer views, observed=%d logs=%v", metrics.observed, logs.All())
		}
	})

	t.Run("invalid filter", func(t *testing.T) {
		uc, _ := newTrackingUseCase(t, nil, nil)
		_, err := uc.OperatorQueue(context.Background(), "bogus")
		if !errors.Is(err, ErrInvalidQueueFilter) {
			t.Fatalf("expected ErrInvalidQueueFilter, got %v", err)
		}
	})

	t.Run("repository errors", func(t *testing.T) {
		uc, m := newTrackingUseCase(t, nil, nil)
		m.orders.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))
		if _, err := uc.OperatorQueue(context.Background(), ""); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}

		uc, m = newTrackingUseCase(t, nil, nil)
		m.orders.EXPECT().List(gomock.Any()).Return(queueOrders(), nil)
		m.sla.EXPECT().Get(gomock.Any()).Return(nil, errors.New("settings"))
		if _, err := uc.OperatorQueue(context.Background(), ""); err == nil || err.Error() != "settings" {
			t.Fatalf("expected settings error, got %v", err)
		}
	})
}

func TestOrderTrackingUseCase_CustomerStatus(t *testing.T) {
	pkgs := map[string]entities.DesignPackage{"pkg-10": {ID: "pkg-10", EstimatedDays: ptr(10)}}

	t.Run("matches the operator queue", func(t *testing.T) {
		orders := queueOrders()
		uc, m := newTrackingUseCase(t, nil, nil)
		m.orders.EXPECT().List(gomock.Any()).Return(orders, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "C").Return(orders[2], nil)
		m.sla.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(2)
		m.packages.EXPECT().ListByIDs(gomock.Any(), gomock.Any()).Return(pkgs, nil).Times(2)

		snap, err := uc.OperatorQueue(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		status, err := uc.CustomerStatus(context.Background(), " C ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var fromQueue fulfillment.Assessment
		for _, v := range snap.Orders {
			if v.Order.ID == "C" {
				fromQueue = v.Assessment
			}
		}
		got := status.View.Assessment
		if got.DisplayStatus != fromQueue.DisplayStatus || got.Complete != fromQueue.Complete {
			t.Fatalf("views disagree: %+v vs %+v", got, fromQueue)
		}
		if !got.Deadline.At.Equal(fromQueue.Deadline.At) || got.Urgency.Tier != fromQueue.Urgency.Tier {
			t.Fatalf("deadlines disagree: %+v vs %+v", got, fromQueue)
		}
	})

	t.Run("final delivery shows completed", func(t *testing.T) {
		uc, m := newTrackingUseCase(t, nil, nil)
		o := entities.DesignOrder{ID: "F", PackageID: "pkg-10", Status: entities.OrderStatusDelivered, RevisionsUsed: 2, MaxRevisions: 2, CreatedAt: testNow}
		m.orders.EXPECT().GetByID(gomock.Any(), "F").Return(o, nil)
		m.sla.EXPECT().Get(gomock.Any()).Return(nil, nil)
		m.packages.EXPECT().ListByIDs(gomock.Any(), []string{"pkg-10"}).Return(pkgs, nil)

		status, err := uc.CustomerStatus(context.Background(), "F")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.View.Assessment.DisplayStatus != fulfillment.DisplayStatusCompleted || status.View.Assessment.Deadline != nil {
			t.Fatalf("unexpected assessment: %+v", status.View.Assessment)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newTrackingUseCase(t, nil, nil)
		_, err := uc.CustomerStatus(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newTrackingUseCase(t, nil, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.DesignOrder{}, nil)
		_, err := uc.CustomerStatus(context.Background(), "nope")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderTrackingUseCase_Stats(t *testing.T) {
	uc, m := newTrackingUseCase(t, nil, nil)
	m.orders.EXPECT().List(gomock.Any()).Return(queueOrders(), nil)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 4 || stats.Completed != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestPackageIDs(t *testing.T) {
	got := packageIDs([]entities.DesignOrder{{PackageID: "a"}, {PackageID: ""}, {PackageID: "b"}, {PackageID: "a"}})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected ids: %v", got)
	}
}
