package claims

import (
	"errors"
	"strings"
	"testing"

	"github.com/apex-assurance/claims-backend/internal/policy"
)

func TestAnalyzeCoverageSimpleCollisionNotCovered(t *testing.T) {
	res, err := AnalyzeCoverage("Simple", "collision", "minor fender bender")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Covered {
		t.Fatalf("Simple tier must not cover collision")
	}
	if res.Deductible != nil {
		t.Fatalf("expected no deductible, got %v", *res.Deductible)
	}
	if len(res.Warnings) == 0 || !strings.Contains(res.Warnings[0], "upgrading") {
		t.Fatalf("expected upgrade warning, got %v", res.Warnings)
	}
	if len(res.NextSteps) != 0 {
		t.Fatalf("uncovered claim must have no next steps, got %v", res.NextSteps)
	}
}

func TestAnalyzeCoverageAdvancedCollisionDeductible(t *testing.T) {
	res, err := AnalyzeCoverage("Advanced", "collision", "rear-ended at a stop light")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !res.Covered {
		t.Fatalf("Advanced tier must cover collision")
	}
	if res.Deductible == nil || *res.Deductible != "$1,000" {
		t.Fatalf("expected $1,000 deductible, got %v", res.Deductible)
	}
	if !containsSubstring(res.Analysis, "Rental car reimbursement") {
		t.Fatalf("expected rental reimbursement note, got %v", res.Analysis)
	}
}

func TestAnalyzeCoveragePremiumTotaledMentionsGap(t *testing.T) {
	res, err := AnalyzeCoverage("Premium", "collision", "the car is totaled")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !res.Covered {
		t.Fatalf("Premium tier must cover collision")
	}
	if !containsSubstring(res.Analysis, "Gap Insurance") {
		t.Fatalf("expected Gap Insurance note, got %v", res.Analysis)
	}
	if !containsSubstring(res.NextSteps, "Concierge") {
		t.Fatalf("expected concierge next step, got %v", res.NextSteps)
	}
}

func TestAnalyzeCoverageRacingExcludedEveryTier(t *testing.T) {
	for _, tier := range []string{"Simple", "Advanced", "Premium"} {
		res, err := AnalyzeCoverage(tier, "racing", "lost control on the track")
		if err != nil {
			t.Fatalf("analyze(%s): %v", tier, err)
		}
		if res.Covered {
			t.Fatalf("racing must never be covered (tier %s)", tier)
		}
		if len(res.Analysis) != 1 || !strings.HasPrefix(res.Analysis[0], "EXCLUDED") {
			t.Fatalf("expected single EXCLUDED line, got %v", res.Analysis)
		}
		if len(res.NextSteps) != 0 {
			t.Fatalf("racing exclusion must short-circuit next steps, got %v", res.NextSteps)
		}
	}
}

func TestAnalyzeCoverageIntentionalExcluded(t *testing.T) {
	res, err := AnalyzeCoverage("Premium", "fire", "he set it on fire deliberately")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Covered || len(res.Analysis) != 1 {
		t.Fatalf("intentional acts must short-circuit, got %+v", res)
	}
}

func TestAnalyzeCoverageRideshareWarningDoesNotBlock(t *testing.T) {
	res, err := AnalyzeCoverage("Advanced", "collision", "crashed while driving for Uber")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !res.Covered {
		t.Fatalf("rideshare keyword must warn, not block analysis")
	}
	if !containsSubstring(res.Warnings, "Ridesharing") {
		t.Fatalf("expected rideshare warning, got %v", res.Warnings)
	}
}

func TestAnalyzeCoverageGlassTierBehaviors(t *testing.T) {
	simple, _ := AnalyzeCoverage("Simple", "windshield", "rock chip")
	if simple.Covered {
		t.Fatalf("Simple glass must be excluded")
	}

	advanced, _ := AnalyzeCoverage("Advanced", "windshield", "rock chip")
	if !advanced.Covered || advanced.Deductible == nil || !strings.Contains(*advanced.Deductible, "$100") {
		t.Fatalf("Advanced glass should carry the $100 replacement deductible, got %+v", advanced)
	}

	premium, _ := AnalyzeCoverage("Premium", "windshield", "rock chip")
	if !premium.Covered || premium.Deductible == nil || *premium.Deductible != "$0" {
		t.Fatalf("Premium glass should be $0 deductible, got %+v", premium)
	}
}

func TestAnalyzeCoverageLiabilityBucketsReportLimits(t *testing.T) {
	res, _ := AnalyzeCoverage("Simple", "bodily injury", "other driver hurt")
	if !res.Covered {
		t.Fatalf("liability claims are always covered")
	}
	if res.CoverageLimit == nil || *res.CoverageLimit != "$25k per person / $50k per accident" {
		t.Fatalf("expected limit, got %v", res.CoverageLimit)
	}
	if res.Deductible != nil {
		t.Fatalf("liability claims report a limit, not a deductible")
	}

	uninsured, _ := AnalyzeCoverage("Advanced", "hit and run", "they fled")
	if uninsured.CoverageLimit == nil || *uninsured.CoverageLimit != "$100k / $300k" {
		t.Fatalf("expected uninsured motorist limit, got %v", uninsured.CoverageLimit)
	}
}

func TestAnalyzeCoverageUnknownTypeManualReview(t *testing.T) {
	res, err := AnalyzeCoverage("Premium", "meteor strike", "a rock from space")
	if err != nil {
		t.Fatalf("unknown claim type must degrade, not fail: %v", err)
	}
	if res.Covered {
		t.Fatalf("unknown claim type must not auto-cover")
	}
	if !containsSubstring(res.Analysis, "manual review") || len(res.Warnings) == 0 {
		t.Fatalf("expected manual-review fallback, got %+v", res)
	}
}

func TestAnalyzeCoverageUnknownTier(t *testing.T) {
	_, err := AnalyzeCoverage("platinum", "collision", "crash")
	var ute policy.UnknownTierError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnknownTierError, got %v", err)
	}
}

func containsSubstring(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
