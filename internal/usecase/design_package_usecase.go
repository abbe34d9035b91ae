package usecase

//go:generate mockgen -source=design_package_usecase.go -destination=../adapter/http/handlers/mocks/design_package_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"design_studio/internal/domain/entities"
	"design_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidPackage = errors.New("invalid design package")

// IDesignPackageUseCase maintains the package catalog read by the SLA engine.

type IDesignPackageUseCase interface {
	Upsert(ctx context.Context, p entities.DesignPackage) (entities.DesignPackage, error)
	GetByID(ctx context.Context, id string) (entities.DesignPackage, error)
}

type DesignPackageUseCase struct {
	repo interfaces.IDesignPackageRepository
}

var _ IDesignPackageUseCase = (*DesignPackageUseCase)(nil)

func NewDesignPackageUseCase(repo interfaces.IDesignPackageRepository) *DesignPackageUseCase {
	return &DesignPackageUseCase{repo: repo}
}

func (u *DesignPackageUseCase) Upsert(ctx context.Context, p entities.DesignPackage) (entities.DesignPackage, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price < 0 {
		return entities.DesignPackage{}, ErrInvalidPackage
	}
	if p.EstimatedDays != nil && *p.EstimatedDays <= 0 {
		return entities.DesignPackage{}, ErrInvalidPackage
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return u.repo.Upsert(ctx, p)
}

func (u *DesignPackageUseCase) GetByID(ctx context.Context, id string) (entities.DesignPackage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DesignPackage{}, ErrInvalidPackageID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DesignPackage{}, err
	}
	if p.ID == "" {
		return entities.DesignPackage{}, ErrPackageNotFound
	}
	return p, nil
}
