package claims

import (
	"strings"
	"testing"
)

func TestExtractEntitiesClaimSummary(t *testing.T) {
	e := ExtractEntities("Policy POL-12345678-A, $1,250.00 due 03/15/2024")
	if len(e.PolicyNumbers) != 1 || e.PolicyNumbers[0] != "POL-12345678-A" {
		t.Fatalf("policy numbers = %v", e.PolicyNumbers)
	}
	if !contains(e.Amounts, "$1,250.00") {
		t.Fatalf("amounts = %v", e.Amounts)
	}
	if !contains(e.Dates, "03/15/2024") {
		t.Fatalf("dates = %v", e.Dates)
	}
}

func TestExtractEntitiesWordedAmountsNormalized(t *testing.T) {
	e := ExtractEntities("the estimate came to 4,500 dollars or maybe 750 USD")
	if !contains(e.Amounts, "$4,500") {
		t.Fatalf("expected $4,500 in %v", e.Amounts)
	}
	if !contains(e.Amounts, "$750") {
		t.Fatalf("expected $750 in %v", e.Amounts)
	}
}

func TestExtractEntitiesDateShapes(t *testing.T) {
	e := ExtractEntities("reported 2024-03-15, happened March 12, 2024 or 3-12-24")
	for _, want := range []string{"2024-03-15", "March 12, 2024", "3-12-24"} {
		if !contains(e.Dates, want) {
			t.Fatalf("missing date %q in %v", want, e.Dates)
		}
	}
}

func TestExtractEntitiesContacts(t *testing.T) {
	e := ExtractEntities("call me at +1 555-123-4567 or write jane.doe@example.com")
	if len(e.PhoneNumbers) != 1 {
		t.Fatalf("phones = %v", e.PhoneNumbers)
	}
	if len(e.Emails) != 1 || e.Emails[0] != "jane.doe@example.com" {
		t.Fatalf("emails = %v", e.Emails)
	}
}

func TestExtractEntitiesVehicleInfo(t *testing.T) {
	e := ExtractEntities("My 2019 Honda Civic, parked outside, was hit.")
	if len(e.VehicleInfo) != 1 {
		t.Fatalf("vehicle info = %v", e.VehicleInfo)
	}
	if !strings.HasPrefix(e.VehicleInfo[0], "2019 Honda Civic") {
		t.Fatalf("vehicle slice must anchor at the year, got %q", e.VehicleInfo[0])
	}
	if strings.Contains(e.VehicleInfo[0], ",") {
		t.Fatalf("vehicle slice must truncate at the first comma, got %q", e.VehicleInfo[0])
	}
}

func TestExtractEntitiesDeduplicates(t *testing.T) {
	e := ExtractEntities("POL-12345678-A and again POL-12345678-A, plus $500 and $500")
	if len(e.PolicyNumbers) != 1 {
		t.Fatalf("duplicates must collapse, got %v", e.PolicyNumbers)
	}
	if len(e.Amounts) != 1 {
		t.Fatalf("duplicates must collapse, got %v", e.Amounts)
	}
}

func TestExtractEntitiesNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"\x00\xff\xfe",
		strings.Repeat("$", 10000),
		"日本語のテキスト 😀 ٩(◕‿◕)۶ ‮ reversed",
		"1999 Ford�, broken rune near year",
	}
	for _, in := range inputs {
		e := ExtractEntities(in)
		if e.PolicyNumbers == nil || e.Dates == nil || e.Amounts == nil ||
			e.PhoneNumbers == nil || e.Emails == nil || e.VehicleInfo == nil ||
			e.Names == nil || e.Locations == nil {
			t.Fatalf("categories must be well-formed lists for input %q", in)
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
