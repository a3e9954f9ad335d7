package claims

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/apex-assurance/claims-backend/internal/directory"
	"github.com/apex-assurance/claims-backend/internal/policy"
)

// Stable tool name identifiers consumed by the orchestrator.
const (
	ToolLookupClientByPolicy  = "lookup_client_by_policy"
	ToolLookupClientByName    = "lookup_client_by_name"
	ToolGetCoverageDetails    = "get_coverage_details"
	ToolAnalyzeCoverage       = "analyze_coverage_applicability"
	ToolExtractEntities       = "extract_entities"
	ToolAssessRisk            = "assess_risk"
	ToolGenerateChecklist     = "generate_investigation_checklist"
	ToolGetMissingInformation = "get_missing_information"
)

// Dispatcher routes named tool invocations to the claims components and
// folds an allow-listed subset of results into the session's Context.
// Every failure inside a tool body becomes an error document; nothing
// escapes to the orchestrator as a Go error or panic.
type Dispatcher struct {
	Directory directory.Directory
	Logger    zerolog.Logger
}

// errorDoc is the wire shape for dispatch failures.
func errorDoc(format string, args ...any) map[string]any {
	return map[string]any{"error": fmt.Sprintf(format, args...)}
}

// Dispatch executes the named tool. The returned value is always a
// JSON-serializable document; results with an "error" key indicate
// failure. claim is the session's accumulator and must not be nil.
func (d *Dispatcher) Dispatch(ctx context.Context, claim *Context, name string, args json.RawMessage) (result any) {
	defer func() {
		if r := recover(); r != nil {
			d.Logger.Error().Str("tool", name).Interface("panic", r).Msg("tool panicked")
			result = errorDoc("Tool execution error: %v", r)
		}
	}()

	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case ToolLookupClientByPolicy:
		var in struct {
			PolicyNumber string `json:"policy_number"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return errorDoc("Tool execution error: %v", err)
		}
		res, err := d.Directory.LookupByPolicy(ctx, in.PolicyNumber)
		if err != nil {
			d.Logger.Error().Err(err).Str("tool", name).Msg("directory read failed")
			return directory.DatabaseErrorResult(err)
		}
		if res.Found {
			claim.Client = &res
		}
		return res

	case ToolLookupClientByName:
		var in struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return errorDoc("Tool execution error: %v", err)
		}
		res, err := d.Directory.LookupByName(ctx, in.Name)
		if err != nil {
			d.Logger.Error().Err(err).Str("tool", name).Msg("directory read failed")
			return directory.DatabaseErrorResult(err)
		}
		if res.Found && !res.MultipleMatches {
			claim.Client = &res
		}
		return res

	case ToolGetCoverageDetails:
		var in struct {
			Tier string `json:"tier"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return errorDoc("Tool execution error: %v", err)
		}
		profile, err := policy.CoverageDetails(in.Tier)
		if err != nil {
			return errorDoc("%v", err)
		}
		return profile

	case ToolAnalyzeCoverage:
		var in struct {
			Tier         string `json:"tier"`
			ClaimType    string `json:"claim_type"`
			ClaimDetails string `json:"claim_details"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return errorDoc("Tool execution error: %v", err)
		}
		analysis, err := AnalyzeCoverage(in.Tier, in.ClaimType, in.ClaimDetails)
		if err != nil {
			return errorDoc("%v", err)
		}
		claim.CoverageAnalysis = &analysis
		return analysis

	case ToolExtractEntities:
		var in struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return errorDoc("Tool execution error: %v", err)
		}
		entities := ExtractEntities(in.Text)
		claim.ExtractedEntities = &entities
		return entities

	case ToolAssessRisk:
		var in struct {
			ClaimDetails RiskSignals `json:"claim_details"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return errorDoc("%v", err)
		}
		assessment := AssessRisk(in.ClaimDetails)
		claim.RiskAssessment = &assessment
		return assessment

	case ToolGenerateChecklist:
		var in struct {
			ClaimType    string           `json:"claim_type"`
			Tier         string           `json:"tier"`
			ClaimDetails ChecklistSignals `json:"claim_details"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return errorDoc("Tool execution error: %v", err)
		}
		return BuildChecklist(in.ClaimType, in.Tier, in.ClaimDetails)

	case ToolGetMissingInformation:
		var in struct {
			ClaimData ClaimData `json:"claim_data"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return errorDoc("Tool execution error: %v", err)
		}
		return CheckCompleteness(in.ClaimData)

	default:
		return errorDoc("Unknown tool: %s", name)
	}
}
