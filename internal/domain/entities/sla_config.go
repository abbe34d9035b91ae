package entities

// SLA policy defaults. These apply to every field missing from a stored
// configuration and to the whole policy when no configuration exists.
const (
	DefaultUsePackageEstimate  = true
	DefaultNewOrderDays        = 5.0
	DefaultRevisionPercent     = 50.0
	DefaultRevisionMinHours    = 24.0
	DefaultPackageEstimateDays = 5
)

// SLAConfig is the admin-editable deadline policy, stored under the
// "sla_config" settings key.
//
// Fields are pointers so a partially filled document can be told apart from
// explicit zero values.
type SLAConfig struct {
	DesignNew      NewOrderPolicy `json:"design_new"`
	DesignRevision RevisionPolicy `json:"design_revision"`
}

type NewOrderPolicy struct {
	UsePackageEstimate *bool    `json:"usePackageEstimate,omitempty"`
	DefaultDays        *float64 `json:"defaultDays,omitempty"`
}

type RevisionPolicy struct {
	PercentOfOriginal *float64 `json:"percentOfOriginal,omitempty"`
	MinHours          *float64 `json:"minHours,omitempty"`
}

// ResolvedSLAConfig is an SLAConfig with every default applied.
type ResolvedSLAConfig struct {
	UsePackageEstimate bool    `json:"use_package_estimate"`
	DefaultDays        float64 `json:"default_days"`
	PercentOfOriginal  float64 `json:"percent_of_original"`
	MinHours           float64 `json:"min_hours"`
}

// Resolve applies defaults. A nil receiver resolves to the full default policy.
// Non-positive day/hour values fall back to their defaults and the revision
// percentage is clamped to [0, 100].
func (c *SLAConfig) Resolve() ResolvedSLAConfig {
	out := ResolvedSLAConfig{
		UsePackageEstimate: DefaultUsePackageEstimate,
		DefaultDays:        DefaultNewOrderDays,
		PercentOfOriginal:  DefaultRevisionPercent,
		MinHours:           DefaultRevisionMinHours,
	}
	if c == nil {
		return out
	}
	if v := c.DesignNew.UsePackageEstimate; v != nil {
		out.UsePackageEstimate = *v
	}
	if v := c.DesignNew.DefaultDays; v != nil && *v > 0 {
		out.DefaultDays = *v
	}
	if v := c.DesignRevision.PercentOfOriginal; v != nil {
		switch {
		case *v < 0:
			out.PercentOfOriginal = 0
		case *v > 100:
			out.PercentOfOriginal = 100
		default:
			out.PercentOfOriginal = *v
		}
	}
	if v := c.DesignRevision.MinHours; v != nil && *v > 0 {
		out.MinHours = *v
	}
	return out
}

// Config converts a resolved policy back into a fully populated SLAConfig.
func (r ResolvedSLAConfig) Config() SLAConfig {
	use, days, pct, hours := r.UsePackageEstimate, r.DefaultDays, r.PercentOfOriginal, r.MinHours
	return SLAConfig{
		DesignNew:      NewOrderPolicy{UsePackageEstimate: &use, DefaultDays: &days},
		DesignRevision: RevisionPolicy{PercentOfOriginal: &pct, MinHours: &hours},
	}
}
