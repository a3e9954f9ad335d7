package policy

import (
	"fmt"
	"strings"
)

// Tier is a policy tier. The set is closed and defined at process start.
type Tier string

const (
	TierSimple   Tier = "Simple"
	TierAdvanced Tier = "Advanced"
	TierPremium  Tier = "Premium"
)

// UnknownTierError reports a tier string outside the known set.
type UnknownTierError struct {
	Tier string
}

func (e UnknownTierError) Error() string {
	return fmt.Sprintf("Unknown tier: %s. Valid tiers are: Simple, Advanced, Premium", e.Tier)
}

// ParseTier normalizes a raw tier string (trim, capitalize first letter)
// and matches it against the known tiers.
func ParseTier(raw string) (Tier, error) {
	normalized := capitalize(strings.TrimSpace(raw))
	switch Tier(normalized) {
	case TierSimple, TierAdvanced, TierPremium:
		return Tier(normalized), nil
	default:
		return "", UnknownTierError{Tier: normalized}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
