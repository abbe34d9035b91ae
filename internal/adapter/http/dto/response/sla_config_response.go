package response

import "design_studio/internal/domain/entities"

// SLAConfigResponse mirrors the stored settings document with every default
// filled in.
type SLAConfigResponse struct {
	DesignNew struct {
		UsePackageEstimate bool    `json:"usePackageEstimate"`
		DefaultDays        float64 `json:"defaultDays"`
	} `json:"design_new"`
	DesignRevision struct {
		PercentOfOriginal float64 `json:"percentOfOriginal"`
		MinHours          float64 `json:"minHours"`
	} `json:"design_revision"`
}

func FromResolvedSLAConfig(c entities.ResolvedSLAConfig) SLAConfigResponse {
	var res SLAConfigResponse
	res.DesignNew.UsePackageEstimate = c.UsePackageEstimate
	res.DesignNew.DefaultDays = c.DefaultDays
	res.DesignRevision.PercentOfOriginal = c.PercentOfOriginal
	res.DesignRevision.MinHours = c.MinHours
	return res
}
