package entities

// DesignPackage is a catalog entry an order is bought from.
//
// EstimatedDays is optional; nil means the catalog has no production estimate.
type DesignPackage struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CategoryID    string  `json:"category_id"`
	Price         float64 `json:"price"`
	EstimatedDays *int    `json:"estimated_days,omitempty"`
}
