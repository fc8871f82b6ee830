package theme

import "petroflow/internal/config"

// Policy bundles the scoring constants applied during validation. The values
// are product policy rather than anything mandated by WCAG, so they are kept
// injectable instead of being buried in the validator.
type Policy struct {
	PenaltyHigh      int
	PenaltyMedium    int
	PenaltyLow       int
	ComplianceCutoff int
}

// DefaultPolicy returns the stock scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		PenaltyHigh:      15,
		PenaltyMedium:    8,
		PenaltyLow:       3,
		ComplianceCutoff: 70,
	}
}

// PolicyFromConfig builds a Policy from the runtime configuration, falling
// back to defaults for non-positive values.
func PolicyFromConfig(cfg config.ThemeConfig) Policy {
	policy := DefaultPolicy()
	if cfg.PenaltyHigh > 0 {
		policy.PenaltyHigh = cfg.PenaltyHigh
	}
	if cfg.PenaltyMedium > 0 {
		policy.PenaltyMedium = cfg.PenaltyMedium
	}
	if cfg.PenaltyLow > 0 {
		policy.PenaltyLow = cfg.PenaltyLow
	}
	if cfg.ComplianceCutoff > 0 {
		policy.ComplianceCutoff = cfg.ComplianceCutoff
	}
	return policy
}

func (p Policy) penalty(severity Severity) int {
	switch severity {
	case SeverityHigh:
		return p.PenaltyHigh
	case SeverityMedium:
		return p.PenaltyMedium
	default:
		return p.PenaltyLow
	}
}
