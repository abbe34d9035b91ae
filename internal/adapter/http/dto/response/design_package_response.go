package response

import "design_studio/internal/domain/entities"

type DesignPackageResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CategoryID    string  `json:"category_id,omitempty"`
	Price         float64 `json:"price"`
	EstimatedDays *int    `json:"estimated_days,omitempty"`
}

func FromDesignPackage(p entities.DesignPackage) DesignPackageResponse {
	return DesignPackageResponse{
		ID:            p.ID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		Price:         p.Price,
		EstimatedDays: p.EstimatedDays,
	}
}
