package request

import (
	"strings"

	"design_studio/internal/domain/entities"
)

type DesignPackageRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" binding:"required"`
	CategoryID    string  `json:"category_id"`
	Price         float64 `json:"price"`
	EstimatedDays *int    `json:"estimated_days"`
}

func (r DesignPackageRequest) ToEntity() entities.DesignPackage {
	return entities.DesignPackage{
		ID:            strings.TrimSpace(r.ID),
		Name:          strings.TrimSpace(r.Name),
		CategoryID:    strings.TrimSpace(r.CategoryID),
		Price:         r.Price,
		EstimatedDays: r.EstimatedDays,
	}
}
