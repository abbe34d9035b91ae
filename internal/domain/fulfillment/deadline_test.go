package fulfillment

import (
	"testing"
	"time"

	"design_studio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revisionConfig(percent, minHours float64) *entities.SLAConfig {
	return &entities.SLAConfig{
		DesignNew:      entities.NewOrderPolicy{UsePackageEstimate: ptr(true)},
		DesignRevision: entities.RevisionPolicy{PercentOfOriginal: ptr(percent), MinHours: ptr(minHours)},
	}
}

func TestComputeDeadline_Eligibility(t *testing.T) {
	now := t0.Add(time.Hour)
	pkg := &entities.DesignPackage{EstimatedDays: ptr(10)}

	for _, s := range []entities.OrderStatus{entities.OrderStatusApproved, entities.OrderStatusCancelled, "pending_payment", ""} {
		t.Run(string(s), func(t *testing.T) {
			_, ok := ComputeDeadline(order("o", s, t0), pkg, nil, now)
			assert.False(t, ok)
		})
	}

	t.Run("final delivery", func(t *testing.T) {
		o := order("o", entities.OrderStatusDelivered, t0)
		o.RevisionsUsed = 2
		assert.True(t, IsComplete(o))
		_, ok := ComputeDeadline(o, pkg, nil, now)
		assert.False(t, ok)
	})

	for _, s := range []entities.OrderStatus{entities.OrderStatusPending, entities.OrderStatusInProgress, entities.OrderStatusDelivered} {
		t.Run("open "+string(s), func(t *testing.T) {
			d, ok := ComputeDeadline(order("o", s, t0), pkg, nil, now)
			require.True(t, ok)
			assert.Equal(t, t0.Add(days(10)), d.At)
		})
	}
}

func TestComputeDeadline_NewOrder(t *testing.T) {
	now := t0.Add(time.Hour)

	t.Run("package estimate", func(t *testing.T) {
		cfg := &entities.SLAConfig{DesignNew: entities.NewOrderPolicy{UsePackageEstimate: ptr(true)}}
		d, ok := ComputeDeadline(order("a", entities.OrderStatusPending, t0), &entities.DesignPackage{EstimatedDays: ptr(10)}, cfg, now)
		require.True(t, ok)
		assert.Equal(t, t0.Add(days(10)), d.At)
		assert.Equal(t, days(10), d.Window)
	})

	t.Run("missing package estimate falls back to five days", func(t *testing.T) {
		d, ok := ComputeDeadline(order("a", entities.OrderStatusPending, t0), &entities.DesignPackage{}, nil, now)
		require.True(t, ok)
		assert.Equal(t, days(5), d.Window)

		d, ok = ComputeDeadline(order("a", entities.OrderStatusPending, t0), nil, nil, now)
		require.True(t, ok)
		assert.Equal(t, days(5), d.Window)

		d, ok = ComputeDeadline(order("a", entities.OrderStatusPending, t0), &entities.DesignPackage{EstimatedDays: ptr(0)}, nil, now)
		require.True(t, ok)
		assert.Equal(t, days(5), d.Window)
	})

	t.Run("policy default days ignores package", func(t *testing.T) {
		cfg := &entities.SLAConfig{DesignNew: entities.NewOrderPolicy{UsePackageEstimate: ptr(false), DefaultDays: ptr(3.0)}}
		d, ok := ComputeDeadline(order("a", entities.OrderStatusInProgress, t0), &entities.DesignPackage{EstimatedDays: ptr(10)}, cfg, now)
		require.True(t, ok)
		assert.Equal(t, t0.Add(days(3)), d.At)
	})

	t.Run("created in the future is clamped to now", func(t *testing.T) {
		future := now.Add(6 * time.Hour)
		d, ok := ComputeDeadline(order("a", entities.OrderStatusPending, future), &entities.DesignPackage{EstimatedDays: ptr(10)}, nil, now)
		require.True(t, ok)
		assert.Equal(t, now.Add(days(10)), d.At)
		assert.LessOrEqual(t, d.At.Sub(now), d.Window)
	})
}

func TestComputeDeadline_Revision(t *testing.T) {
	t1 := t0.Add(days(12))
	now := t1.Add(time.Hour)

	cases := []struct {
		name     string
		estimate int
		percent  float64
		minHours float64
		wantDays float64
	}{
		{"percentage wins", 10, 50, 24, 5},
		{"floor wins", 1, 10, 48, 2},
		{"zero percent uses floor", 10, 0, 24, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := order("b", entities.OrderStatusRevisionRequested, t0)
			o.UpdatedAt = t1
			o.RevisionsUsed = 1
			d, ok := ComputeDeadline(o, &entities.DesignPackage{EstimatedDays: ptr(tc.estimate)}, revisionConfig(tc.percent, tc.minHours), now)
			require.True(t, ok)
			assert.Equal(t, days(tc.wantDays), d.Window)
			assert.Equal(t, t1.Add(days(tc.wantDays)), d.At)
		})
	}

	t.Run("revisions exhausted still gets a revision deadline", func(t *testing.T) {
		o := order("b", entities.OrderStatusRevisionRequested, t0)
		o.UpdatedAt = t1
		o.RevisionsUsed = 3
		d, ok := ComputeDeadline(o, &entities.DesignPackage{EstimatedDays: ptr(10)}, nil, now)
		require.True(t, ok)
		assert.Equal(t, t1.Add(days(5)), d.At)
	})

	t.Run("missing updatedAt anchors on createdAt", func(t *testing.T) {
		o := order("b", entities.OrderStatusRevisionRequested, t0)
		o.UpdatedAt = time.Time{}
		d, ok := ComputeDeadline(o, &entities.DesignPackage{EstimatedDays: ptr(10)}, nil, now)
		require.True(t, ok)
		assert.Equal(t, t0.Add(days(5)), d.At)
	})

	t.Run("updatedAt after now is clamped", func(t *testing.T) {
		o := order("b", entities.OrderStatusRevisionRequested, t0)
		o.UpdatedAt = now.Add(time.Hour)
		d, ok := ComputeDeadline(o, &entities.DesignPackage{EstimatedDays: ptr(10)}, nil, now)
		require.True(t, ok)
		assert.Equal(t, now.Add(days(5)), d.At)
	})
}
