package request

import "strings"

// DesignOrderCreateRequest opens an order for a catalog package.
type DesignOrderCreateRequest struct {
	CustomerID string `json:"customer_id"`
	PackageID  string `json:"package_id" binding:"required"`
}

func (r DesignOrderCreateRequest) ResolvePackageID() string {
	return strings.TrimSpace(r.PackageID)
}

func (r DesignOrderCreateRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}
