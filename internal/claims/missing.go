package claims

import (
	"math"
	"strings"

	"github.com/apex-assurance/claims-backend/internal/models"
)

// ClaimData is the working claim record assembled over the conversation.
// Loosely-typed fields (any) accept whatever shape the orchestrator has
// collected so far; a field counts as present only if it is truthy.
type ClaimData struct {
	PolicyNumber     any `json:"policy_number"`
	IncidentDate     any `json:"incident_date"`
	IncidentLocation any `json:"incident_location"`
	ClaimType        any `json:"claim_type"`
	Description      any `json:"description"`
	EstimatedDamage  any `json:"estimated_damage"`
	Injuries         any `json:"injuries"`
	PoliceReport     any `json:"police_report"`
	Photos           any `json:"photos"`
	Witnesses        any `json:"witnesses"`
	OtherPartyInfo   any `json:"other_party_info"`
}

type requiredField struct {
	name     string
	question string
	value    func(ClaimData) any
}

var requiredFields = []requiredField{
	{"policy_number", "What is your policy number?", func(c ClaimData) any { return c.PolicyNumber }},
	{"incident_date", "When did the incident occur?", func(c ClaimData) any { return c.IncidentDate }},
	{"incident_location", "Where did the incident occur?", func(c ClaimData) any { return c.IncidentLocation }},
	{"claim_type", "What type of incident was this (collision, theft, vandalism, etc.)?", func(c ClaimData) any { return c.ClaimType }},
	{"description", "Can you describe what happened?", func(c ClaimData) any { return c.Description }},
	{"estimated_damage", "Do you have an estimate of the damage amount?", func(c ClaimData) any { return c.EstimatedDamage }},
	{"injuries", "Were there any injuries?", func(c ClaimData) any { return c.Injuries }},
}

var optionalFields = []requiredField{
	{"police_report", "Was a police report filed? If so, what is the report number?", func(c ClaimData) any { return c.PoliceReport }},
	{"photos", "Do you have photos of the damage?", func(c ClaimData) any { return c.Photos }},
	{"witnesses", "Were there any witnesses?", func(c ClaimData) any { return c.Witnesses }},
	{"other_party_info", "If another party was involved, do you have their contact/insurance information?", func(c ClaimData) any { return c.OtherPartyInfo }},
}

// CheckCompleteness reports which required and optional claim fields are
// still missing and how complete the record is.
func CheckCompleteness(data ClaimData) models.CompletenessReport {
	report := models.CompletenessReport{
		MissingRequired: []string{},
		MissingOptional: []string{},
		QuestionsToAsk:  []string{},
	}

	for _, f := range requiredFields {
		if !truthy(f.value(data)) {
			report.MissingRequired = append(report.MissingRequired, f.name)
			report.QuestionsToAsk = append(report.QuestionsToAsk, f.question)
		}
	}
	for _, f := range optionalFields {
		if !truthy(f.value(data)) {
			report.MissingOptional = append(report.MissingOptional, f.name)
		}
	}

	report.IsComplete = len(report.MissingRequired) == 0
	ratio := 1 - float64(len(report.MissingRequired))/float64(len(requiredFields))
	report.CompletenessPercentage = int(math.Round(ratio * 100))
	return report
}

// truthy mirrors the presence rule: a field counts only when it exists
// and is non-empty/non-zero/non-false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return strings.TrimSpace(t) != ""
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
