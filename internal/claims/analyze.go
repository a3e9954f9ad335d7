package claims

import (
	"fmt"
	"strings"

	"github.com/apex-assurance/claims-backend/internal/models"
	"github.com/apex-assurance/claims-backend/internal/policy"
)

var (
	rideshareKeywords   = []string{"uber", "lyft", "doordash", "delivery"}
	racingKeywords      = []string{"racing", "track", "competition"}
	intentionalKeywords = []string{"intentional", "on purpose", "deliberately"}
	totalLossKeywords   = []string{"total", "totaled"}
)

// AnalyzeCoverage decides whether a described incident is covered under
// a tier, which deductible or limit applies, and what the policyholder
// should do next. Exclusion scans run before the bucket table; racing
// and intentional acts short-circuit the whole analysis.
func AnalyzeCoverage(rawTier, claimType, claimDetails string) (models.CoverageAnalysisResult, error) {
	tier, err := policy.ParseTier(rawTier)
	if err != nil {
		return models.CoverageAnalysisResult{}, err
	}
	coverage := policy.Profile(tier)
	bucket := ClassifyClaimType(claimType)
	detailsLower := strings.ToLower(claimDetails)

	result := models.CoverageAnalysisResult{
		Tier:      string(tier),
		ClaimType: claimType,
		Analysis:  []string{},
		Warnings:  []string{},
		NextSteps: []string{},
	}

	if containsAny(detailsLower, rideshareKeywords) {
		result.Warnings = append(result.Warnings, "ALERT: Ridesharing/delivery use detected. This may void coverage unless specific endorsement was purchased.")
	}
	if containsAny(detailsLower, racingKeywords) {
		result.Analysis = append(result.Analysis, "EXCLUDED: Racing or competitive events are not covered under any tier.")
		return result, nil
	}
	if containsAny(detailsLower, intentionalKeywords) {
		result.Analysis = append(result.Analysis, "EXCLUDED: Intentional acts are not covered under any tier.")
		return result, nil
	}

	switch bucket {
	case BucketCollision:
		if tier == policy.TierSimple {
			result.Analysis = append(result.Analysis,
				"Collision coverage is NOT included in the Simple tier.",
				"The policyholder is responsible for all vehicle damage from collisions.")
			result.Warnings = append(result.Warnings, "Consider upgrading to Advanced tier for collision coverage.")
		} else {
			result.Covered = true
			result.Deductible = &coverage.CollisionDeductible
			result.Analysis = append(result.Analysis, fmt.Sprintf("Collision coverage is included with %s deductible.", coverage.CollisionDeductible))
			if tier == policy.TierPremium {
				result.Analysis = append(result.Analysis,
					"Diminished Value protection is included.",
					"OEM parts will be used for all repairs.")
			}
		}

	case BucketTheft:
		result.Covered = true
		result.Deductible = &coverage.ComprehensiveDeductible
		result.Analysis = append(result.Analysis,
			"Theft is covered under comprehensive coverage.",
			fmt.Sprintf("Deductible: %s", coverage.ComprehensiveDeductible))
		if tier == policy.TierSimple {
			result.Analysis = append(result.Analysis, "Note: Simple tier covers theft as a named peril.")
		}

	case BucketFire:
		result.Covered = true
		result.Deductible = &coverage.ComprehensiveDeductible
		result.Analysis = append(result.Analysis,
			"Fire damage is covered under all tiers.",
			fmt.Sprintf("Deductible: %s", coverage.ComprehensiveDeductible))

	case BucketVandalism:
		if tier == policy.TierSimple {
			result.Analysis = append(result.Analysis,
				"Vandalism is NOT covered under the Simple tier.",
				"Simple tier only covers: Fire, Lightning, Theft, Attempted Theft.")
		} else {
			result.Covered = true
			result.Deductible = &coverage.ComprehensiveDeductible
			result.Analysis = append(result.Analysis, fmt.Sprintf("Vandalism is covered with %s deductible.", coverage.ComprehensiveDeductible))
		}

	case BucketWeather:
		if tier == policy.TierSimple {
			result.Analysis = append(result.Analysis, "Weather damage (hail, flood) is NOT covered under the Simple tier.")
		} else {
			result.Covered = true
			result.Deductible = &coverage.ComprehensiveDeductible
			result.Analysis = append(result.Analysis, fmt.Sprintf("Weather damage is covered with %s deductible.", coverage.ComprehensiveDeductible))
		}

	case BucketGlass:
		switch tier {
		case policy.TierSimple:
			result.Analysis = append(result.Analysis, "Glass damage is NOT covered unless caused by a named peril (fire, theft).")
		case policy.TierAdvanced:
			result.Covered = true
			deductible := "$100 for full replacement, $0 for chip repair"
			result.Deductible = &deductible
			result.Analysis = append(result.Analysis, "Chip repairs are FREE. Full replacement has $100 deductible.")
		default:
			result.Covered = true
			deductible := "$0"
			result.Deductible = &deductible
			result.Analysis = append(result.Analysis, "Full glass coverage with $0 deductible.")
		}

	case BucketBodilyInjury:
		result.Covered = true
		result.CoverageLimit = &coverage.BodilyInjuryLiability
		result.Analysis = append(result.Analysis,
			fmt.Sprintf("Bodily injury liability coverage: %s", coverage.BodilyInjuryLiability),
			fmt.Sprintf("Medical payments coverage: %s", coverage.MedicalPayments))

	case BucketPropertyDamage:
		result.Covered = true
		result.CoverageLimit = &coverage.PropertyDamageLiability
		result.Analysis = append(result.Analysis, fmt.Sprintf("Property damage liability coverage: %s", coverage.PropertyDamageLiability))

	case BucketUninsured:
		result.Covered = true
		result.CoverageLimit = &coverage.UninsuredMotorist
		result.Analysis = append(result.Analysis, fmt.Sprintf("Uninsured motorist coverage: %s", coverage.UninsuredMotorist))

	case BucketAnimal:
		if tier == policy.TierSimple {
			result.Analysis = append(result.Analysis, "Animal strikes are NOT covered under the Simple tier.")
		} else {
			result.Covered = true
			result.Deductible = &coverage.ComprehensiveDeductible
			result.Analysis = append(result.Analysis, fmt.Sprintf("Animal strikes are covered with %s deductible.", coverage.ComprehensiveDeductible))
		}

	default:
		result.Analysis = append(result.Analysis, fmt.Sprintf("Claim type '%s' needs manual review.", claimType))
		result.Warnings = append(result.Warnings, "Unable to automatically determine coverage. Please consult policy details.")
	}

	if result.Covered {
		switch tier {
		case policy.TierPremium:
			result.NextSteps = append(result.NextSteps, "Contact 24/7 Concierge Claims Line for priority service.")
			if containsAny(detailsLower, totalLossKeywords) {
				result.Analysis = append(result.Analysis,
					"Gap Insurance is included if vehicle is totaled.",
					"New Car Replacement available if within first 3 years.")
			}
		case policy.TierAdvanced:
			result.NextSteps = append(result.NextSteps,
				"File claim via App or Web Portal.",
				"Digital inspection available for faster processing.")
		default:
			result.NextSteps = append(result.NextSteps, "File claim via App or Web Portal.")
		}
	}

	if result.Covered && (bucket == BucketCollision || bucket == BucketTheft) {
		if coverage.RentalCarReimbursement != "Not Included" {
			result.Analysis = append(result.Analysis, fmt.Sprintf("Rental car reimbursement: %s", coverage.RentalCarReimbursement))
		}
	}

	return result, nil
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
