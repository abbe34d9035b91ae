package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestSLAConfig_Resolve(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		var cfg *SLAConfig
		got := cfg.Resolve()
		assert.Equal(t, ResolvedSLAConfig{
			UsePackageEstimate: true,
			DefaultDays:        5,
			PercentOfOriginal:  50,
			MinHours:           24,
		}, got)
	})

	t.Run("partial config fills missing fields", func(t *testing.T) {
		cfg := &SLAConfig{DesignRevision: RevisionPolicy{MinHours: ptr(48.0)}}
		got := cfg.Resolve()
		assert.True(t, got.UsePackageEstimate)
		assert.Equal(t, 5.0, got.DefaultDays)
		assert.Equal(t, 50.0, got.PercentOfOriginal)
		assert.Equal(t, 48.0, got.MinHours)
	})

	t.Run("explicit false and zero percent are kept", func(t *testing.T) {
		cfg := &SLAConfig{
			DesignNew:      NewOrderPolicy{UsePackageEstimate: ptr(false), DefaultDays: ptr(7.0)},
			DesignRevision: RevisionPolicy{PercentOfOriginal: ptr(0.0)},
		}
		got := cfg.Resolve()
		assert.False(t, got.UsePackageEstimate)
		assert.Equal(t, 7.0, got.DefaultDays)
		assert.Equal(t, 0.0, got.PercentOfOriginal)
	})

	t.Run("out of range values", func(t *testing.T) {
		cfg := &SLAConfig{
			DesignNew:      NewOrderPolicy{DefaultDays: ptr(-3.0)},
			DesignRevision: RevisionPolicy{PercentOfOriginal: ptr(150.0), MinHours: ptr(0.0)},
		}
		got := cfg.Resolve()
		assert.Equal(t, 5.0, got.DefaultDays)
		assert.Equal(t, 100.0, got.PercentOfOriginal)
		assert.Equal(t, 24.0, got.MinHours)
	})

	t.Run("round trip through Config", func(t *testing.T) {
		r := ResolvedSLAConfig{UsePackageEstimate: false, DefaultDays: 3, PercentOfOriginal: 25, MinHours: 12}
		cfg := r.Config()
		assert.Equal(t, r, cfg.Resolve())
	})
}

func TestDesignOrder_EffectiveMaxRevisions(t *testing.T) {
	assert.Equal(t, 2, DesignOrder{}.EffectiveMaxRevisions())
	assert.Equal(t, 2, DesignOrder{MaxRevisions: -1}.EffectiveMaxRevisions())
	assert.Equal(t, 4, DesignOrder{MaxRevisions: 4}.EffectiveMaxRevisions())
}
