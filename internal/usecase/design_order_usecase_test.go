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
)

func TestDesignOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("invalid package id", func(t *testing.T) {
		uc := NewDesignOrderUseCase(nil, nil, fixedClock{testNow}, nil, nil)
		_, err := uc.CreateOrder(context.Background(), "cust-1", "  ")
		if !errors.Is(err, ErrInvalidPackageID) {
			t.Fatalf("expected ErrInvalidPackageID, got %v", err)
		}
	})

	t.Run("package repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pkgs := mock_interfaces.NewMockIDesignPackageRepository(ctrl)
		uc := NewDesignOrderUseCase(nil, pkgs, fixedClock{testNow}, nil, nil)

		pkgs.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.DesignPackage{}, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), "cust-1", "pkg-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("package not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pkgs := mock_interfaces.NewMockIDesignPackageRepository(ctrl)
		uc := NewDesignOrderUseCase(nil, pkgs, fixedClock{testNow}, nil, nil)

		pkgs.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.DesignPackage{}, nil)

		_, err := uc.CreateOrder(context.Background(), "cust-1", "pkg-1")
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDesignOrderRepository(ctrl)
		pkgs := mock_interfaces.NewMockIDesignPackageRepository(ctrl)
		uc := NewDesignOrderUseCase(repo, pkgs, fixedClock{testNow}, nil, nil)

		pkgs.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.DesignPackage{ID: "pkg-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.DesignOrder{})).DoAndReturn(
			func(_ context.Context, o entities.DesignOrder) (entities.DesignOrder, error) {
				if o.ID == "" || o.PackageID != "pkg-1" || o.CustomerID != "cust-1" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Status != entities.OrderStatusPending || o.PaymentStatus != entities.OrderPaymentPending {
					t.Fatalf("unexpected statuses: %+v", o)
				}
				if o.MaxRevisions != entities.DefaultMaxRevisions || o.RevisionsUsed != 0 {
					t.Fatalf("unexpected revision counters: %+v", o)
				}
				if !o.CreatedAt.Equal(testNow) || !o.UpdatedAt.Equal(testNow) {
					t.Fatalf("expected clock timestamps, got %+v", o)
				}
				return o, nil
			},
		)

		res, err := uc.CreateOrder(context.Background(), " cust-1 ", " pkg-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestDesignOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDesignOrderUseCase(nil, nil, fixedClock{testNow}, nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDesignOrderRepository(ctrl)
		uc := NewDesignOrderUseCase(repo, nil, fixedClock{testNow}, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.DesignOrder{}, nil)

		_, err := uc.GetByID(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestDesignOrderUseCase_Transitions(t *testing.T) {
	created := testNow.Add(-72 * time.Hour)
	cases := []struct {
		name        string
		call        func(uc *DesignOrderUseCase, ctx context.Context, id string) (entities.DesignOrder, error)
		from        entities.OrderStatus
		to          entities.OrderStatus
		wantRevUsed int
	}{
		{name: "start", call: (*DesignOrderUseCase).StartProduction, from: entities.OrderStatusPending, to: entities.OrderStatusInProgress},
		{name: "deliver", call: (*DesignOrderUseCase).Deliver, from: entities.OrderStatusInProgress, to: entities.OrderStatusDelivered},
		{name: "request revision", call: (*DesignOrderUseCase).RequestRevision, from: entities.OrderStatusDelivered, to: entities.OrderStatusRevisionRequested, wantRevUsed: 1},
		{name: "approve", call: (*DesignOrderUseCase).Approve, from: entities.OrderStatusDelivered, to: entities.OrderStatusApproved},
		{name: "cancel", call: (*DesignOrderUseCase).Cancel, from: entities.OrderStatusInProgress, to: entities.OrderStatusCancelled},
		{name: "resume after revision", call: (*DesignOrderUseCase).StartProduction, from: entities.OrderStatusRevisionRequested, to: entities.OrderStatusInProgress},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIDesignOrderRepository(ctrl)
			metrics := &recordingMetrics{}
			uc := NewDesignOrderUseCase(repo, nil, fixedClock{testNow}, metrics, nil)

			current := entities.DesignOrder{ID: "ord-1", Status: tc.from, MaxRevisions: 2, CreatedAt: created, UpdatedAt: created}
			repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(current, nil)
			repo.EXPECT().TransitionStatus(gomock.Any(), current, gomock.AssignableToTypeOf(entities.DesignOrder{})).DoAndReturn(
				func(_ context.Context, _ entities.DesignOrder, next entities.DesignOrder) (entities.DesignOrder, bool, error) {
					if next.Status != tc.to || next.RevisionsUsed != tc.wantRevUsed || !next.UpdatedAt.Equal(testNow) {
						t.Fatalf("unexpected next order: %+v", next)
					}
					return next, true, nil
				},
			)

			res, err := tc.call(uc, context.Background(), " ord-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.to {
				t.Fatalf("expected %s got %s", tc.to, res.Status)
			}
			if len(metrics.transitions) != 1 || metrics.transitions[0] != string(tc.to) {
				t.Fatalf("expected transition metric, got %v", metrics.transitions)
			}
		})

		t.Run(tc.name+" lost race", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIDesignOrderRepository(ctrl)
			uc := NewDesignOrderUseCase(repo, nil, fixedClock{testNow}, nil, nil)

			loaded := entities.DesignOrder{ID: "ord-1", Status: tc.from, MaxRevisions: 2}
			repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(loaded, nil)
			repo.EXPECT().TransitionStatus(gomock.Any(), loaded, gomock.Any()).Return(entities.DesignOrder{}, false, nil)

			_, err := tc.call(uc, context.Background(), "ord-1")
			if !errors.Is(err, ErrOrderConflict) {
				t.Fatalf("expected ErrOrderConflict, got %v", err)
			}
		})
	}

	t.Run("illegal transition never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDesignOrderRepository(ctrl)
		uc := NewDesignOrderUseCase(repo, nil, fixedClock{testNow}, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.DesignOrder{ID: "ord-1", Status: entities.OrderStatusPending}, nil)

		_, err := uc.Approve(context.Background(), "ord-1")
		if !errors.Is(err, fulfillment.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("revision after exhausting revisions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDesignOrderRepository(ctrl)
		uc := NewDesignOrderUseCase(repo, nil, fixedClock{testNow}, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.DesignOrder{ID: "ord-1", Status: entities.OrderStatusDelivered, RevisionsUsed: 2, MaxRevisions: 2}, nil)

		_, err := uc.RequestRevision(context.Background(), "ord-1")
		if !errors.Is(err, fulfillment.ErrRevisionsExhausted) {
			t.Fatalf("expected ErrRevisionsExhausted, got %v", err)
		}
	})

	t.Run("stale revision count is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDesignOrderRepository(ctrl)
		uc := NewDesignOrderUseCase(repo, nil, fixedClock{testNow}, nil, nil)

		// Read says one revision left; storage already holds delivered 2/2.
		stale := entities.DesignOrder{ID: "ord-1", Status: entities.OrderStatusDelivered, RevisionsUsed: 1, MaxRevisions: 2, CreatedAt: created}
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(stale, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), stale, gomock.Any()).DoAndReturn(
			func(_ context.Context, current, next entities.DesignOrder) (entities.DesignOrder, bool, error) {
				stored := entities.DesignOrder{Status: entities.OrderStatusDelivered, RevisionsUsed: 2}
				if current.Status != stored.Status || current.RevisionsUsed != stored.RevisionsUsed {
					return entities.DesignOrder{}, false, nil
				}
				return next, true, nil
			},
		)

		_, err := uc.RequestRevision(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderConflict) {
			t.Fatalf("expected ErrOrderConflict, got %v", err)
		}
	})

	t.Run("repository error on compare-and-set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDesignOrderRepository(ctrl)
		uc := NewDesignOrderUseCase(repo, nil, fixedClock{testNow}, nil, nil)
		loaded := entities.DesignOrder{ID: "ord-1", Status: entities.OrderStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(loaded, nil)
		repo.EXPECT().TransitionStatus(gomock.Any(), loaded, gomock.Any()).Return(entities.DesignOrder{}, false, errors.New("db"))

		_, err := uc.StartProduction(context.Background(), "ord-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
