package policy

import "github.com/apex-assurance/claims-backend/internal/models"

// GeneralExclusions apply to every tier.
var GeneralExclusions = []string{
	"Ridesharing (Uber, Lyft, delivery services) - unless specific endorsement purchased",
	"Intentional Acts - damage caused on purpose by the insured",
	"Racing - any loss while vehicle used on track or competitive event",
	"Wear and Tear - mechanical breakdown, rust, tire wear, electrical failure not caused by accident",
}

// catalog holds exactly one CoverageProfile per tier. Read-only after
// initialization; callers receive copies.
var catalog = map[Tier]models.CoverageProfile{
	TierSimple: {
		TierName:                "Simple (Basic Liability & Catastrophe)",
		BodilyInjuryLiability:   "$25k per person / $50k per accident",
		PropertyDamageLiability: "$25,000",
		CollisionCoverage:       "Not Included",
		Comprehensive:           "Fire & Theft Only",
		ComprehensiveDeductible: "$1,500",
		UninsuredMotorist:       "$25k / $50k",
		MedicalPayments:         "$1,000",
		RoadsideAssistance:      "Pay-per-use",
		RentalCarReimbursement:  "Not Included",
		NewCarReplacement:       "Not Included",
		PersonalEffects:         "Not Included",
		GlassCoverage:           "Not covered unless caused by named peril",
		Restrictions: []string{
			"Only designated drivers listed on policy are covered (No Permissive Use)",
			"Glass damage not covered unless caused by named peril",
		},
		CoveredPerils:  []string{"Fire", "Lightning", "Theft", "Attempted Theft"},
		ExcludedPerils: []string{"Hail", "Flood", "Falling Objects", "Collision", "Vandalism"},
	},
	TierAdvanced: {
		TierName:                "Advanced (Standard Comprehensive)",
		BodilyInjuryLiability:   "$100k per person / $300k per accident",
		PropertyDamageLiability: "$100,000",
		CollisionCoverage:       "Included ($1,000 deductible)",
		CollisionDeductible:     "$1,000",
		Comprehensive:           "Full (Fire, Theft, Vandalism, Weather)",
		ComprehensiveDeductible: "$500",
		UninsuredMotorist:       "$100k / $300k",
		MedicalPayments:         "$5,000",
		RoadsideAssistance:      "Included (15-mile tow limit)",
		RentalCarReimbursement:  "$30/day (Max 30 days)",
		NewCarReplacement:       "Not Included",
		PersonalEffects:         "Up to $200",
		WindshieldRepair:        "Chip repairs free, full replacement $100 deductible",
		CoveredPerils:           []string{"Fire", "Lightning", "Theft", "Attempted Theft", "Flood", "Hail", "Animal Strikes", "Vandalism"},
		ExcludedPerils:          []string{"Standard wear and tear"},
	},
	TierPremium: {
		TierName:                "Premium (All-Inclusive Elite)",
		BodilyInjuryLiability:   "$500k per person / $1M per accident",
		PropertyDamageLiability: "$250,000",
		CollisionCoverage:       "Included ($250 deductible)",
		CollisionDeductible:     "$250",
		Comprehensive:           "Full + Zero Deductible Glass",
		ComprehensiveDeductible: "$250",
		UninsuredMotorist:       "$500k / $1M",
		MedicalPayments:         "$25,000",
		RoadsideAssistance:      "Included (100-mile tow limit + Trip Interruption)",
		RentalCarReimbursement:  "$75/day (Max 45 days) or Valet Service",
		NewCarReplacement:       "Included (First 3 Years)",
		PersonalEffects:         "Up to $1,500",
		GlassCoverage:           "$0 deductible on windshield replacement",
		GapInsurance:            "Included",
		OEMPartsGuarantee:       "Always OEM parts, never aftermarket",
		PetInjuryCoverage:       "Up to $1,000",
		WorldwideCoverage:       "Up to 30 days in foreign countries",
		ValetService:            "Included",
		DiminishedValue:         "Included",
		ConciergeClaims:         "24/7 Dedicated Concierge Claims Line",
		CoveredPerils:           []string{"All Perils"},
		ExcludedPerils:          []string{"Standard wear and tear"},
	},
}

// CoverageDetails returns the coverage profile for a raw tier string,
// with the shared general exclusions attached. The returned profile is a
// copy so callers cannot corrupt the catalog.
func CoverageDetails(rawTier string) (models.CoverageProfile, error) {
	tier, err := ParseTier(rawTier)
	if err != nil {
		return models.CoverageProfile{}, err
	}
	return Profile(tier), nil
}

// Profile returns a deep copy of the tier's profile, general exclusions
// included. The tier must be one of the known constants.
func Profile(tier Tier) models.CoverageProfile {
	p := catalog[tier]
	p.Restrictions = copyStrings(p.Restrictions)
	p.CoveredPerils = copyStrings(p.CoveredPerils)
	p.ExcludedPerils = copyStrings(p.ExcludedPerils)
	p.GeneralExclusions = copyStrings(GeneralExclusions)
	return p
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
