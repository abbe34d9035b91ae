package usecase

//go:generate mockgen -source=sla_config_usecase.go -destination=../adapter/http/handlers/mocks/sla_config_usecase_mock.go -package=mocks

import (
	"context"
	"errors"

	"design_studio/internal/domain/entities"
	"design_studio/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrInvalidSLAConfig = errors.New("invalid sla config")

// maxPolicyDays bounds admin input; the dashboard slider stops at 30.
const maxPolicyDays = 365

// ISLAConfigUseCase reads and edits the SLA policy. Get always returns a
// fully resolved policy, using defaults when nothing is stored.

type ISLAConfigUseCase interface {
	Get(ctx context.Context) (entities.ResolvedSLAConfig, error)
	Update(ctx context.Context, patch entities.SLAConfig) (entities.ResolvedSLAConfig, error)
}

type SLAConfigUseCase struct {
	repo interfaces.ISLAConfigRepository
	log  *zap.Logger
}

var _ ISLAConfigUseCase = (*SLAConfigUseCase)(nil)

func NewSLAConfigUseCase(repo interfaces.ISLAConfigRepository, log *zap.Logger) *SLAConfigUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SLAConfigUseCase{repo: repo, log: log.Named("sla.usecase")}
}

func (u *SLAConfigUseCase) Get(ctx context.Context) (entities.ResolvedSLAConfig, error) {
	cfg, err := u.repo.Get(ctx)
	if err != nil {
		return entities.ResolvedSLAConfig{}, err
	}
	return cfg.Resolve(), nil
}

// Update merges the fields present in patch over the stored policy and saves
// the fully resolved result.
func (u *SLAConfigUseCase) Update(ctx context.Context, patch entities.SLAConfig) (entities.ResolvedSLAConfig, error) {
	if err := validateSLAPatch(patch); err != nil {
		return entities.ResolvedSLAConfig{}, err
	}

	current, err := u.repo.Get(ctx)
	if err != nil {
		return entities.ResolvedSLAConfig{}, err
	}
	merged := current.Resolve().Config()
	if v := patch.DesignNew.UsePackageEstimate; v != nil {
		merged.DesignNew.UsePackageEstimate = v
	}
	if v := patch.DesignNew.DefaultDays; v != nil {
		merged.DesignNew.DefaultDays = v
	}
	if v := patch.DesignRevision.PercentOfOriginal; v != nil {
		merged.DesignRevision.PercentOfOriginal = v
	}
	if v := patch.DesignRevision.MinHours; v != nil {
		merged.DesignRevision.MinHours = v
	}

	resolved := merged.Resolve()
	if err := u.repo.Save(ctx, resolved.Config()); err != nil {
		return entities.ResolvedSLAConfig{}, err
	}
	u.log.Info("sla config updated",
		zap.Bool("use_package_estimate", resolved.UsePackageEstimate),
		zap.Float64("default_days", resolved.DefaultDays),
		zap.Float64("percent_of_original", resolved.PercentOfOriginal),
		zap.Float64("min_hours", resolved.MinHours))
	return resolved, nil
}

func validateSLAPatch(p entities.SLAConfig) error {
	if v := p.DesignNew.DefaultDays; v != nil && (*v <= 0 || *v > maxPolicyDays) {
		return ErrInvalidSLAConfig
	}
	if v := p.DesignRevision.PercentOfOriginal; v != nil && (*v < 0 || *v > 100) {
		return ErrInvalidSLAConfig
	}
	if v := p.DesignRevision.MinHours; v != nil && (*v <= 0 || *v > maxPolicyDays*24) {
		return ErrInvalidSLAConfig
	}
	return nil
}
