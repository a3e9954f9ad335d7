package claims

// ToolDefinition declares one tool's name and argument schema for the
// orchestrator's model call.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

func objectSchema(required []string, props map[string]any) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func objectProp(description string) map[string]any {
	return map[string]any{"type": "object", "description": description}
}

// Definitions enumerates the full tool surface in dispatch order.
func Definitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        ToolLookupClientByPolicy,
			Description: "Look up a client in the database using their policy number. Returns client information including name, tier, address, and country.",
			InputSchema: objectSchema([]string{"policy_number"}, map[string]any{
				"policy_number": stringProp("The policy number to search for (e.g., POL-12345678-A)"),
			}),
		},
		{
			Name:        ToolLookupClientByName,
			Description: "Look up a client in the database using their name. Can search by first name, last name, or full name.",
			InputSchema: objectSchema([]string{"name"}, map[string]any{
				"name": stringProp("The client's name to search for"),
			}),
		},
		{
			Name:        ToolGetCoverageDetails,
			Description: "Get detailed coverage information for a specific policy tier (Simple, Advanced, or Premium). Returns all coverage limits, deductibles, and included benefits.",
			InputSchema: objectSchema([]string{"tier"}, map[string]any{
				"tier": stringProp("The policy tier (Simple, Advanced, or Premium)"),
			}),
		},
		{
			Name:        ToolAnalyzeCoverage,
			Description: "Analyze whether a specific claim is covered under the policy based on the tier and claim type. Returns coverage determination, applicable deductibles, and next steps.",
			InputSchema: objectSchema([]string{"tier", "claim_type", "claim_details"}, map[string]any{
				"tier":          stringProp("The policy tier (Simple, Advanced, or Premium)"),
				"claim_type":    stringProp("Type of claim (e.g., collision, theft, vandalism, fire, glass, weather, bodily injury)"),
				"claim_details": stringProp("Description of the incident and claim"),
			}),
		},
		{
			Name:        ToolExtractEntities,
			Description: "Extract key entities from text including policy numbers, dates, dollar amounts, phone numbers, and email addresses.",
			InputSchema: objectSchema([]string{"text"}, map[string]any{
				"text": stringProp("The text to extract entities from"),
			}),
		},
		{
			Name:        ToolAssessRisk,
			Description: "Assess the risk level of a claim based on various factors. Returns risk score, risk factors, and recommendations.",
			InputSchema: objectSchema([]string{"claim_details"}, map[string]any{
				"claim_details": objectProp("Object containing claim details including: estimated_amount, claim_type, injuries_reported, police_report, witnesses, photos_provided, description, days_since_incident"),
			}),
		},
		{
			Name:        ToolGenerateChecklist,
			Description: "Generate a customized investigation checklist based on the claim type and tier. Includes required documents, investigation steps, follow-up questions, and timeline.",
			InputSchema: objectSchema([]string{"claim_type", "tier", "claim_details"}, map[string]any{
				"claim_type":    stringProp("Type of claim (e.g., collision, theft, vandalism)"),
				"tier":          stringProp("The policy tier (Simple, Advanced, or Premium)"),
				"claim_details": objectProp("Object with claim details including injuries_reported"),
			}),
		},
		{
			Name:        ToolGetMissingInformation,
			Description: "Identify what information is still needed to process a claim. Returns list of missing required and optional fields with questions to ask.",
			InputSchema: objectSchema([]string{"claim_data"}, map[string]any{
				"claim_data": objectProp("Object with current claim information"),
			}),
		},
	}
}
