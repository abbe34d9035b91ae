package fulfillment

import (
	"testing"
	"time"

	"design_studio/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	pkg := &entities.DesignPackage{EstimatedDays: ptr(4)}

	t.Run("open order in its last quarter", func(t *testing.T) {
		now := t0.Add(days(3.5))
		a := Evaluate(order("o", entities.OrderStatusInProgress, t0), pkg, nil, now)
		require.NotNil(t, a.Deadline)
		require.NotNil(t, a.Urgency)
		assert.True(t, a.KnownStatus)
		assert.False(t, a.Complete)
		assert.Equal(t, TierUrgent, a.Urgency.Tier)
		assert.Equal(t, days(0.5), a.Urgency.Remaining)
		assert.Equal(t, "in_progress", a.DisplayStatus)
	})

	t.Run("complete order has no deadline", func(t *testing.T) {
		a := Evaluate(order("o", entities.OrderStatusApproved, t0), pkg, nil, t0)
		assert.True(t, a.Complete)
		assert.True(t, a.Inactive)
		assert.Nil(t, a.Deadline)
		assert.Nil(t, a.Urgency)
		assert.Equal(t, DisplayStatusCompleted, a.DisplayStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		a := Evaluate(order("o", "pending_payment", t0), pkg, nil, t0)
		assert.False(t, a.KnownStatus)
		assert.Nil(t, a.Deadline)
	})

	t.Run("identical inputs give identical outputs", func(t *testing.T) {
		o := order("o", entities.OrderStatusRevisionRequested, t0)
		o.UpdatedAt = t0.Add(time.Hour)
		now := t0.Add(2 * time.Hour)
		assert.Equal(t, Evaluate(o, pkg, nil, now), Evaluate(o, pkg, nil, now))
	})
}

func TestScenarios(t *testing.T) {
	pkg := &entities.DesignPackage{EstimatedDays: ptr(10)}
	cfg := revisionConfig(50, 24)

	t.Run("A pending order", func(t *testing.T) {
		d, ok := ComputeDeadline(order("a", entities.OrderStatusPending, t0), pkg, cfg, t0)
		require.True(t, ok)
		assert.Equal(t, t0.Add(days(10)), d.At)
	})

	t.Run("B revision requested", func(t *testing.T) {
		t1 := t0.Add(days(11))
		o := order("b", entities.OrderStatusRevisionRequested, t0)
		o.UpdatedAt = t1
		d, ok := ComputeDeadline(o, pkg, cfg, t1)
		require.True(t, ok)
		assert.Equal(t, t1.Add(days(5)), d.At)
	})

	t.Run("C final delivery", func(t *testing.T) {
		c := order("c", entities.OrderStatusDelivered, t0.Add(days(1)))
		c.RevisionsUsed = 2
		p := order("p", entities.OrderStatusPending, t0)
		assert.True(t, IsComplete(c))
		got := SortQueue([]entities.DesignOrder{c, p})
		assert.Equal(t, "c", got[1].ID)
	})
}
