package models

// ClientRecord is one row of the client dataset. Sourced from a
// read-only directory (CSV file or clients table) and never mutated.
type ClientRecord struct {
	ID           int64  `json:"client_id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Address      string `json:"address"`
	Country      string `json:"country"`
	Tier         string `json:"tier"`
	PolicyNumber string `json:"policy_number"`
}

// CoverageProfile holds the coverage terms of a single policy tier.
// Tier-specific benefits are omitted from JSON when the tier lacks them.
type CoverageProfile struct {
	TierName                string   `json:"tier_name"`
	BodilyInjuryLiability   string   `json:"bodily_injury_liability"`
	PropertyDamageLiability string   `json:"property_damage_liability"`
	CollisionCoverage       string   `json:"collision_coverage"`
	CollisionDeductible     string   `json:"collision_deductible,omitempty"`
	Comprehensive           string   `json:"comprehensive"`
	ComprehensiveDeductible string   `json:"comprehensive_deductible"`
	UninsuredMotorist       string   `json:"uninsured_motorist"`
	MedicalPayments         string   `json:"medical_payments"`
	RoadsideAssistance      string   `json:"roadside_assistance"`
	RentalCarReimbursement  string   `json:"rental_car_reimbursement"`
	NewCarReplacement       string   `json:"new_car_replacement"`
	PersonalEffects         string   `json:"personal_effects"`
	GlassCoverage           string   `json:"glass_coverage,omitempty"`
	WindshieldRepair        string   `json:"windshield_repair,omitempty"`
	GapInsurance            string   `json:"gap_insurance,omitempty"`
	OEMPartsGuarantee       string   `json:"oem_parts_guarantee,omitempty"`
	PetInjuryCoverage       string   `json:"pet_injury_coverage,omitempty"`
	WorldwideCoverage       string   `json:"worldwide_coverage,omitempty"`
	ValetService            string   `json:"valet_service,omitempty"`
	DiminishedValue         string   `json:"diminished_value_protection,omitempty"`
	ConciergeClaims         string   `json:"concierge_claims,omitempty"`
	Restrictions            []string `json:"restrictions,omitempty"`
	CoveredPerils           []string `json:"covered_perils"`
	ExcludedPerils          []string `json:"excluded_perils"`
	GeneralExclusions       []string `json:"general_exclusions,omitempty"`
}

// ExtractedEntities maps entity categories to deduplicated token lists.
// Each list has set semantics: membership matters, order does not.
type ExtractedEntities struct {
	PolicyNumbers []string `json:"policy_numbers"`
	Dates         []string `json:"dates"`
	Amounts       []string `json:"amounts"`
	Names         []string `json:"names"`
	Locations     []string `json:"locations"`
	VehicleInfo   []string `json:"vehicle_info"`
	PhoneNumbers  []string `json:"phone_numbers"`
	Emails        []string `json:"emails"`
}

// CoverageAnalysisResult is produced fresh by each coverage analysis
// call and never mutated afterward.
type CoverageAnalysisResult struct {
	Tier          string   `json:"tier"`
	ClaimType     string   `json:"claim_type"`
	Covered       bool     `json:"covered"`
	Deductible    *string  `json:"deductible"`
	CoverageLimit *string  `json:"coverage_limit"`
	Analysis      []string `json:"analysis"`
	Warnings      []string `json:"warnings"`
	NextSteps     []string `json:"next_steps"`
}

type RiskAssessment struct {
	RiskLevel       string   `json:"risk_level"`
	RiskScore       int      `json:"risk_score"`
	RiskFactors     []string `json:"risk_factors"`
	Recommendations []string `json:"recommendations"`
	RequiresSIU     bool     `json:"requires_siu"`
}

type InvestigationChecklist struct {
	RequiredDocuments  []string          `json:"required_documents"`
	InvestigationSteps []string          `json:"investigation_steps"`
	FollowUpQuestions  []string          `json:"follow_up_questions"`
	Timeline           map[string]string `json:"timeline"`
}

type CompletenessReport struct {
	MissingRequired        []string `json:"missing_required"`
	MissingOptional        []string `json:"missing_optional"`
	QuestionsToAsk         []string `json:"questions_to_ask"`
	IsComplete             bool     `json:"is_complete"`
	CompletenessPercentage int      `json:"completeness_percentage"`
}
