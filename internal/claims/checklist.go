package claims

import (
	"github.com/apex-assurance/claims-backend/internal/models"
	"github.com/apex-assurance/claims-backend/internal/policy"
)

// ChecklistSignals carries the claim facts the checklist cares about.
type ChecklistSignals struct {
	InjuriesReported bool `json:"injuries_reported"`
}

var baselineDocuments = []string{
	"Completed claim form",
	"Copy of driver's license",
	"Copy of vehicle registration",
	"Photos of damage (minimum 4 angles)",
}

// BuildChecklist produces the documents, investigation steps, follow-up
// questions, and SLA timeline for a claim. Glass claims replace the
// baseline document list; every other bucket extends it.
func BuildChecklist(claimType, rawTier string, signals ChecklistSignals) models.InvestigationChecklist {
	bucket := ClassifyClaimType(claimType)

	checklist := models.InvestigationChecklist{
		RequiredDocuments: append([]string{}, baselineDocuments...),
	}

	switch bucket {
	case BucketCollision:
		checklist.RequiredDocuments = append(checklist.RequiredDocuments,
			"Police report (if applicable)",
			"Other driver's insurance information",
			"Witness statements",
			"Repair estimate from approved shop")
		checklist.InvestigationSteps = []string{
			"Verify policy was active at time of incident",
			"Confirm driver was authorized under policy",
			"Review accident description for coverage determination",
			"Obtain repair estimates from network shop",
			"Verify no exclusions apply (racing, rideshare, etc.)",
		}
		checklist.FollowUpQuestions = []string{
			"What was the exact date and time of the accident?",
			"What was the location (street address/intersection)?",
			"Who was driving the vehicle?",
			"Was anyone injured?",
			"Were there any witnesses?",
			"Was a police report filed? If so, what is the report number?",
			"Has the vehicle been moved from the accident scene?",
			"What is the extent of damage to your vehicle?",
			"Was the other driver at fault? Do you have their information?",
		}

	case BucketTheft:
		checklist.RequiredDocuments = append(checklist.RequiredDocuments,
			"Police report (REQUIRED)",
			"Proof of ownership",
			"List of personal items in vehicle (if applicable)",
			"Last known location documentation")
		checklist.InvestigationSteps = []string{
			"Verify police report filed",
			"Confirm all keys accounted for",
			"Review for any suspicious circumstances",
			"Check if vehicle had tracking device",
			"Verify no prior theft claims",
		}
		checklist.FollowUpQuestions = []string{
			"When did you last see the vehicle?",
			"Where was the vehicle parked?",
			"Were all keys in your possession?",
			"Did the vehicle have an alarm or tracking system?",
			"Were there any signs of forced entry?",
			"What personal items were in the vehicle?",
		}

	case BucketVandalism:
		checklist.RequiredDocuments = append(checklist.RequiredDocuments,
			"Police report (recommended)",
			"Photos showing extent of vandalism",
			"Witness statements if available")
		checklist.InvestigationSteps = []string{
			"Review photos for damage assessment",
			"Check for security camera footage",
			"Verify no disputes with neighbors/others",
			"Obtain repair estimate",
		}
		checklist.FollowUpQuestions = []string{
			"When did you discover the vandalism?",
			"Where was the vehicle when vandalized?",
			"Are there security cameras in the area?",
			"Do you know of anyone who might have done this?",
			"Have you experienced vandalism before?",
		}

	case BucketFire:
		checklist.RequiredDocuments = append(checklist.RequiredDocuments,
			"Fire department report",
			"Police report",
			"Photos of fire damage")
		checklist.InvestigationSteps = []string{
			"Obtain fire marshal report if available",
			"Determine origin and cause of fire",
			"Verify no arson indicators",
			"Assess total loss vs. repairable",
		}
		checklist.FollowUpQuestions = []string{
			"How did the fire start?",
			"Where was the vehicle when the fire occurred?",
			"Was the vehicle running or parked?",
			"When was the last maintenance performed?",
			"Was there anyone in or near the vehicle?",
		}

	case BucketGlass:
		checklist.RequiredDocuments = []string{
			"Photos of glass damage",
			"Repair/replacement estimate",
		}
		checklist.InvestigationSteps = []string{
			"Determine if damage is chip or full replacement",
			"Verify approved glass repair vendor",
			"Confirm coverage based on tier",
		}
		checklist.FollowUpQuestions = []string{
			"How did the glass get damaged?",
			"Is this a chip or crack?",
			"What is the size of the damage?",
			"Is the damage in the driver's line of sight?",
		}

	case BucketWeather:
		checklist.RequiredDocuments = append(checklist.RequiredDocuments,
			"Weather report for date of incident",
			"Photos of weather-related damage")
		checklist.InvestigationSteps = []string{
			"Verify weather event occurred in area",
			"Assess extent of damage",
			"Determine repair vs. total loss",
		}
		checklist.FollowUpQuestions = []string{
			"What date did the weather event occur?",
			"Where was the vehicle during the event?",
			"Was the vehicle in a covered or open area?",
			"What type of damage occurred (dents, flooding, etc.)?",
		}

	default:
		checklist.InvestigationSteps = []string{
			"Gather complete incident details",
			"Determine applicable coverage",
			"Request supporting documentation",
		}
		checklist.FollowUpQuestions = []string{
			"What type of incident occurred?",
			"When did it happen?",
			"Where did it happen?",
			"What is the extent of the damage?",
			"Was anyone injured?",
		}
	}

	if tier, err := policy.ParseTier(rawTier); err == nil && tier == policy.TierPremium {
		checklist.InvestigationSteps = append([]string{"Assign to Concierge Claims team"}, checklist.InvestigationSteps...)
		if bucket == BucketCollision || bucket == BucketTheft {
			checklist.InvestigationSteps = append(checklist.InvestigationSteps, "Coordinate Valet Service if requested")
		}
	}

	if signals.InjuriesReported {
		checklist.Timeline = map[string]string{
			"initial_contact":        "Within 4 hours",
			"documentation_deadline": "5 business days",
			"investigation_complete": "15-30 business days",
			"resolution_target":      "30-45 business days",
		}
	} else {
		checklist.Timeline = map[string]string{
			"initial_contact":        "Within 24 hours",
			"documentation_deadline": "7 business days",
			"investigation_complete": "7-14 business days",
			"resolution_target":      "14-21 business days",
		}
	}

	return checklist
}
