package interfaces

//go:generate mockgen -source=sla_config_repository_interface.go -destination=mocks/sla_config_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"design_studio/internal/domain/entities"
)

// ISLAConfigRepository reads and writes the "sla_config" settings document.
// Get returns nil when nothing has been saved yet.

type ISLAConfigRepository interface {
	Get(ctx context.Context) (*entities.SLAConfig, error)
	Save(ctx context.Context, cfg entities.SLAConfig) error
}
