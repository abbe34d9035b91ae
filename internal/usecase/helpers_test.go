package usecase

import (
	"time"

	"design_studio/internal/domain/fulfillment"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type recordingMetrics struct {
	tiers       map[fulfillment.Tier]int
	unknown     int
	observed    int
	transitions []string
}

func (m *recordingMetrics) ObserveQueue(counts map[fulfillment.Tier]int, unknown int) {
	m.tiers = counts
	m.unknown = unknown
	m.observed++
}
func (m *recordingMetrics) IncTransition(status string) {
	m.transitions = append(m.transitions, status)
}

var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }
