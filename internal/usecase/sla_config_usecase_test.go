package usecase

import (
	"context"
	"errors"
	"testing"

	"design_studio/internal/domain/entities"
	mock_interfaces "design_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSLAConfigUseCase_Get(t *testing.T) {
	t.Run("defaults when nothing stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISLAConfigRepository(ctrl)
		uc := NewSLAConfigUseCase(repo, nil)
		repo.EXPECT().Get(gomock.Any()).Return(nil, nil)

		got, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.UsePackageEstimate || got.DefaultDays != 5 || got.PercentOfOriginal != 50 || got.MinHours != 24 {
			t.Fatalf("unexpected defaults: %+v", got)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISLAConfigRepository(ctrl)
		uc := NewSLAConfigUseCase(repo, nil)
		repo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Get(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSLAConfigUseCase_Update(t *testing.T) {
	invalid := []struct {
		name  string
		patch entities.SLAConfig
	}{
		{"zero default days", entities.SLAConfig{DesignNew: entities.NewOrderPolicy{DefaultDays: ptr(0.0)}}},
		{"percent above 100", entities.SLAConfig{DesignRevision: entities.RevisionPolicy{PercentOfOriginal: ptr(101.0)}}},
		{"negative percent", entities.SLAConfig{DesignRevision: entities.RevisionPolicy{PercentOfOriginal: ptr(-1.0)}}},
		{"negative min hours", entities.SLAConfig{DesignRevision: entities.RevisionPolicy{MinHours: ptr(-4.0)}}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewSLAConfigUseCase(nil, nil)
			_, err := uc.Update(context.Background(), tc.patch)
			if !errors.Is(err, ErrInvalidSLAConfig) {
				t.Fatalf("expected ErrInvalidSLAConfig, got %v", err)
			}
		})
	}

	t.Run("merges patch over stored policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISLAConfigRepository(ctrl)
		uc := NewSLAConfigUseCase(repo, nil)

		stored := &entities.SLAConfig{DesignNew: entities.NewOrderPolicy{UsePackageEstimate: ptr(false), DefaultDays: ptr(7.0)}}
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.SLAConfig{})).DoAndReturn(
			func(_ context.Context, cfg entities.SLAConfig) error {
				if cfg.DesignNew.UsePackageEstimate == nil || *cfg.DesignNew.UsePackageEstimate {
					t.Fatalf("expected stored usePackageEstimate=false to be kept")
				}
				if cfg.DesignRevision.MinHours == nil || *cfg.DesignRevision.MinHours != 48 {
					t.Fatalf("expected patched minHours, got %+v", cfg.DesignRevision)
				}
				if cfg.DesignRevision.PercentOfOriginal == nil || *cfg.DesignRevision.PercentOfOriginal != 50 {
					t.Fatalf("expected default percent filled in, got %+v", cfg.DesignRevision)
				}
				return nil
			},
		)

		got, err := uc.Update(context.Background(), entities.SLAConfig{DesignRevision: entities.RevisionPolicy{MinHours: ptr(48.0)}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UsePackageEstimate || got.DefaultDays != 7 || got.MinHours != 48 {
			t.Fatalf("unexpected resolved policy: %+v", got)
		}
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISLAConfigRepository(ctrl)
		uc := NewSLAConfigUseCase(repo, nil)
		repo.EXPECT().Get(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.Update(context.Background(), entities.SLAConfig{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
