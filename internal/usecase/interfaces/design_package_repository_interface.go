package interfaces

//go:generate mockgen -source=design_package_repository_interface.go -destination=mocks/design_package_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"design_studio/internal/domain/entities"
)

// IDesignPackageRepository is the package catalog. The fulfillment engine only
// reads from it.

type IDesignPackageRepository interface {
	Upsert(ctx context.Context, p entities.DesignPackage) (entities.DesignPackage, error)
	GetByID(ctx context.Context, id string) (entities.DesignPackage, error)
	ListByIDs(ctx context.Context, ids []string) (map[string]entities.DesignPackage, error)
}
