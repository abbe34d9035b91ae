package request

import "design_studio/internal/domain/entities"

// SLAConfigRequest is a partial update of the SLA policy. Omitted fields keep
// their current value.
type SLAConfigRequest struct {
	DesignNew struct {
		UsePackageEstimate *bool    `json:"usePackageEstimate"`
		DefaultDays        *float64 `json:"defaultDays"`
	} `json:"design_new"`
	DesignRevision struct {
		PercentOfOriginal *float64 `json:"percentOfOriginal"`
		MinHours          *float64 `json:"minHours"`
	} `json:"design_revision"`
}

func (r SLAConfigRequest) ToEntity() entities.SLAConfig {
	return entities.SLAConfig{
		DesignNew: entities.NewOrderPolicy{
			UsePackageEstimate: r.DesignNew.UsePackageEstimate,
			DefaultDays:        r.DesignNew.DefaultDays,
		},
		DesignRevision: entities.RevisionPolicy{
			PercentOfOriginal: r.DesignRevision.PercentOfOriginal,
			MinHours:          r.DesignRevision.MinHours,
		},
	}
}
