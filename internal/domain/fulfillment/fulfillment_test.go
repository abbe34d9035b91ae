package fulfillment

import (
	"time"

	"design_studio/internal/domain/entities"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func order(id string, status entities.OrderStatus, createdAt time.Time) entities.DesignOrder {
	return entities.DesignOrder{
		ID:           id,
		Status:       status,
		MaxRevisions: 2,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func days(n float64) time.Duration {
	return time.Duration(n * float64(24*time.Hour))
}
