package claims

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/apex-assurance/claims-backend/internal/models"
)

// ValidationError reports a malformed field value in a tool argument.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return "validation error: " + e.Msg
}

// Amount accepts either a JSON number or a currency string like
// "$60,000" / "1,250.00". Anything else is a ValidationError rather than
// a guessed parse.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*a = 0
		return nil
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		*a = Amount(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ValidationError{Msg: fmt.Sprintf("estimated_amount must be a number or currency string, got %s", trimmed)}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ValidationError{Msg: fmt.Sprintf("malformed estimated_amount %q", s)}
	}
	*a = Amount(v)
	return nil
}

// RiskSignals is the bag of optional inputs to risk scoring. Absent
// fields default to zero values.
type RiskSignals struct {
	EstimatedAmount   Amount `json:"estimated_amount"`
	ClaimType         string `json:"claim_type"`
	InjuriesReported  bool   `json:"injuries_reported"`
	PoliceReport      bool   `json:"police_report"`
	Witnesses         bool   `json:"witnesses"`
	PhotosProvided    bool   `json:"photos_provided"`
	Description       string `json:"description"`
	DaysSinceIncident int    `json:"days_since_incident"`
}

var suspiciousKeywords = []string{"total loss", "totaled", "stolen", "break-in", "hit and run", "unwitnessed"}

// Buckets whose claims warrant a police report, and those where missing
// witnesses raise the score.
var (
	policeReportBuckets = map[ClaimBucket]bool{
		BucketTheft:     true,
		BucketVandalism: true,
		BucketCollision: true,
		BucketUninsured: true,
	}
	witnessBuckets = map[ClaimBucket]bool{
		BucketCollision: true,
		BucketUninsured: true,
	}
)

// AssessRisk scores a claim's fraud/complexity risk. Scoring is strictly
// additive; the order below only fixes factor/recommendation ordering.
func AssessRisk(signals RiskSignals) models.RiskAssessment {
	score := 0
	factors := []string{}
	recommendations := []string{}

	amount := float64(signals.EstimatedAmount)
	switch {
	case amount > 50000:
		score += 30
		factors = append(factors, "High-value claim (>$50,000)")
		recommendations = append(recommendations, "Requires senior adjuster review")
	case amount > 20000:
		score += 20
		factors = append(factors, "Significant claim amount ($20,000-$50,000)")
	case amount > 10000:
		score += 10
		factors = append(factors, "Moderate claim amount ($10,000-$20,000)")
	}

	if signals.InjuriesReported {
		score += 25
		factors = append(factors, "Injuries reported")
		recommendations = append(recommendations,
			"Coordinate with medical review team",
			"Request medical documentation")
	}

	bucket := ClassifyClaimType(signals.ClaimType)
	if !signals.PoliceReport && policeReportBuckets[bucket] {
		score += 15
		factors = append(factors, "No police report filed")
		recommendations = append(recommendations, "Request police report number")
	}

	if !signals.PhotosProvided {
		score += 10
		factors = append(factors, "No photos provided")
		recommendations = append(recommendations, "Request photos of damage")
	}

	if !signals.Witnesses && witnessBuckets[bucket] {
		score += 5
		factors = append(factors, "No witnesses identified")
		recommendations = append(recommendations, "Request witness contact information if available")
	}

	switch {
	case signals.DaysSinceIncident > 30:
		score += 20
		factors = append(factors, "Claim filed more than 30 days after incident")
		recommendations = append(recommendations, "Investigate reason for delayed reporting")
	case signals.DaysSinceIncident > 7:
		score += 10
		factors = append(factors, "Claim filed more than 7 days after incident")
	}

	description := strings.ToLower(signals.Description)
	for _, kw := range suspiciousKeywords {
		if strings.Contains(description, kw) {
			score += 5
		}
	}

	var level string
	switch {
	case score >= 50:
		level = "HIGH"
		recommendations = append([]string{"Flag for Special Investigation Unit (SIU) review"}, recommendations...)
	case score >= 30:
		level = "MEDIUM"
		recommendations = append([]string{"Standard investigation with additional documentation"}, recommendations...)
	default:
		level = "LOW"
		recommendations = append([]string{"Standard processing pathway"}, recommendations...)
	}

	return models.RiskAssessment{
		RiskLevel:       level,
		RiskScore:       score,
		RiskFactors:     factors,
		Recommendations: recommendations,
		RequiresSIU:     score >= 50,
	}
}
