package claims

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/apex-assurance/claims-backend/internal/directory"
	"github.com/apex-assurance/claims-backend/internal/models"
)

// fakeDirectory serves scripted lookups without a backing dataset.
type fakeDirectory struct {
	byPolicy map[string]directory.LookupResult
	byName   map[string]directory.LookupResult
	err      error
}

func (f *fakeDirectory) LookupByPolicy(ctx context.Context, policyNumber string) (directory.LookupResult, error) {
	if f.err != nil {
		return directory.LookupResult{}, f.err
	}
	if res, ok := f.byPolicy[directory.NormalizePolicyNumber(policyNumber)]; ok {
		return res, nil
	}
	return directory.LookupResult{Found: false, Error: "No client found"}, nil
}

func (f *fakeDirectory) LookupByName(ctx context.Context, name string) (directory.LookupResult, error) {
	if f.err != nil {
		return directory.LookupResult{}, f.err
	}
	if res, ok := f.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return res, nil
	}
	return directory.LookupResult{Found: false, Error: "No client found"}, nil
}

func (f *fakeDirectory) Ping(ctx context.Context) error { return f.err }
func (f *fakeDirectory) Close()                         {}

func newTestDispatcher(dir directory.Directory) *Dispatcher {
	return &Dispatcher{Directory: dir, Logger: zerolog.Nop()}
}

func TestDispatchUnknownTool(t *testing.T) {
	d := newTestDispatcher(&fakeDirectory{})
	res := d.Dispatch(context.Background(), NewContext(), "warp_drive", nil)
	doc, ok := res.(map[string]any)
	if !ok || doc["error"] != "Unknown tool: warp_drive" {
		t.Fatalf("expected unknown-tool error document, got %#v", res)
	}
}

func TestDispatchContextOverwritePolicy(t *testing.T) {
	smith := directory.LookupResult{Found: true, ClientID: 1, Name: "John Smith", Tier: "Premium", PolicyNumber: "POL-12345678-A"}
	multi := directory.LookupResult{
		Found:           true,
		MultipleMatches: true,
		Count:           2,
		Clients: []directory.Candidate{
			{Name: "John Smith", PolicyNumber: "POL-12345678-A", Tier: "Premium"},
			{Name: "John Doe", PolicyNumber: "HME-34567890-C", Tier: "Simple"},
		},
	}
	d := newTestDispatcher(&fakeDirectory{
		byPolicy: map[string]directory.LookupResult{"POL-12345678-A": smith},
		byName:   map[string]directory.LookupResult{"john": multi},
	})
	claim := NewContext()
	ctx := context.Background()

	d.Dispatch(ctx, claim, ToolLookupClientByPolicy, json.RawMessage(`{"policy_number":"pol-12345678-a"}`))
	if claim.Client == nil || claim.Client.ClientID != 1 {
		t.Fatalf("found lookup must set the client slot, got %+v", claim.Client)
	}

	d.Dispatch(ctx, claim, ToolLookupClientByName, json.RawMessage(`{"name":"john"}`))
	if claim.Client == nil || claim.Client.MultipleMatches {
		t.Fatalf("multiple-matches result must not overwrite the client slot")
	}
	if claim.Client.ClientID != 1 {
		t.Fatalf("client slot changed unexpectedly: %+v", claim.Client)
	}

	d.Dispatch(ctx, claim, ToolLookupClientByPolicy, json.RawMessage(`{"policy_number":"NOPE-00000000-X"}`))
	if claim.Client == nil || claim.Client.ClientID != 1 {
		t.Fatalf("not-found lookup must not clear the client slot")
	}
}

func TestDispatchAlwaysWriteSlots(t *testing.T) {
	d := newTestDispatcher(&fakeDirectory{})
	claim := NewContext()
	ctx := context.Background()

	d.Dispatch(ctx, claim, ToolExtractEntities, json.RawMessage(`{"text":"nothing here"}`))
	if claim.ExtractedEntities == nil {
		t.Fatalf("extract_entities must always write its slot")
	}

	d.Dispatch(ctx, claim, ToolAnalyzeCoverage, json.RawMessage(`{"tier":"Advanced","claim_type":"collision","claim_details":"crash"}`))
	if claim.CoverageAnalysis == nil || !claim.CoverageAnalysis.Covered {
		t.Fatalf("coverage analysis slot not written: %+v", claim.CoverageAnalysis)
	}

	d.Dispatch(ctx, claim, ToolAssessRisk, json.RawMessage(`{"claim_details":{"estimated_amount":"$60,000","injuries_reported":true,"photos_provided":true}}`))
	if claim.RiskAssessment == nil || claim.RiskAssessment.RiskScore != 55 {
		t.Fatalf("risk assessment slot not written: %+v", claim.RiskAssessment)
	}

	before := *claim
	d.Dispatch(ctx, claim, ToolGenerateChecklist, json.RawMessage(`{"claim_type":"theft","tier":"Premium","claim_details":{}}`))
	d.Dispatch(ctx, claim, ToolGetMissingInformation, json.RawMessage(`{"claim_data":{}}`))
	d.Dispatch(ctx, claim, ToolGetCoverageDetails, json.RawMessage(`{"tier":"Simple"}`))
	if *claim != before {
		t.Fatalf("checklist, completeness, and coverage-details tools must not touch the context")
	}
}

func TestDispatchUnknownTierErrorDocument(t *testing.T) {
	d := newTestDispatcher(&fakeDirectory{})
	claim := NewContext()
	res := d.Dispatch(context.Background(), claim, ToolAnalyzeCoverage, json.RawMessage(`{"tier":"gold","claim_type":"collision","claim_details":"x"}`))
	doc, ok := res.(map[string]any)
	if !ok {
		t.Fatalf("expected error document, got %#v", res)
	}
	if !strings.Contains(doc["error"].(string), "Unknown tier") {
		t.Fatalf("unexpected error %v", doc["error"])
	}
	if claim.CoverageAnalysis != nil {
		t.Fatalf("failed analysis must not write the slot")
	}
}

func TestDispatchValidationErrorDocument(t *testing.T) {
	d := newTestDispatcher(&fakeDirectory{})
	res := d.Dispatch(context.Background(), NewContext(), ToolAssessRisk, json.RawMessage(`{"claim_details":{"estimated_amount":"lots"}}`))
	doc, ok := res.(map[string]any)
	if !ok || !strings.Contains(doc["error"].(string), "validation error") {
		t.Fatalf("malformed amount must yield a validation error document, got %#v", res)
	}
}

func TestDispatchDatabaseErrorDocument(t *testing.T) {
	d := newTestDispatcher(&fakeDirectory{err: errors.New("disk unplugged")})
	res := d.Dispatch(context.Background(), NewContext(), ToolLookupClientByPolicy, json.RawMessage(`{"policy_number":"POL-12345678-A"}`))
	doc, ok := res.(directory.LookupResult)
	if !ok || doc.Found || !strings.Contains(doc.Error, "Database error") {
		t.Fatalf("expected database error document, got %#v", res)
	}
}

func TestDispatchResultsSerialize(t *testing.T) {
	d := newTestDispatcher(&fakeDirectory{})
	for _, call := range []struct {
		name string
		args string
	}{
		{ToolGetCoverageDetails, `{"tier":"Premium"}`},
		{ToolAnalyzeCoverage, `{"tier":"Simple","claim_type":"theft","claim_details":"gone"}`},
		{ToolExtractEntities, `{"text":"POL-12345678-A"}`},
		{ToolAssessRisk, `{"claim_details":{}}`},
		{ToolGenerateChecklist, `{"claim_type":"fire","tier":"Simple","claim_details":{}}`},
		{ToolGetMissingInformation, `{"claim_data":{"claim_type":"fire"}}`},
	} {
		res := d.Dispatch(context.Background(), NewContext(), call.name, json.RawMessage(call.args))
		if _, err := json.Marshal(res); err != nil {
			t.Fatalf("%s result not serializable: %v", call.name, err)
		}
	}
}

func TestContextResetClearsEverySlot(t *testing.T) {
	claim := NewContext()
	claim.Client = &directory.LookupResult{Found: true}
	claim.RiskAssessment = &models.RiskAssessment{RiskScore: 55}
	claim.AddImages(3)

	claim.Reset()
	if claim.Client != nil || claim.RiskAssessment != nil || claim.ImagesUploaded != 0 {
		t.Fatalf("reset must clear all slots, got %+v", claim)
	}
}
