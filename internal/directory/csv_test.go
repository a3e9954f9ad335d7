package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const clientsFixture = "Id,Name,Surname,Address,Country,Tier,Policy Number\n" +
	"1,John,Smith,12 Oak St,USA,Premium,POL-12345678-A\n" +
	"2,Maria,Garcia,4 Elm Ave,Spain,Advanced,POL-23456789-B\n" +
	"3,John,Doe,9 Pine Rd,USA,Simple,HME-34567890-C\n"

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clients.csv")
	if err := os.WriteFile(path, []byte(clientsFixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadStripsByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.csv")
	if err := os.WriteFile(path, []byte("\uFEFF"+clientsFixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	d, err := NewCSVDirectory(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 clients, got %d", d.Len())
	}
	res, err := d.LookupByPolicy(context.Background(), "POL-12345678-A")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !res.Found || res.ClientID != 1 {
		t.Fatalf("BOM-prefixed header must still index the Id column, got %+v", res)
	}
}

func TestLookupByPolicyCaseInsensitive(t *testing.T) {
	d, err := NewCSVDirectory(writeFixture(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ctx := context.Background()

	lower, err := d.LookupByPolicy(ctx, "  pol-12345678-a ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	upper, err := d.LookupByPolicy(ctx, "POL-12345678-A")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !lower.Found || !upper.Found {
		t.Fatalf("expected both lookups found, got %+v / %+v", lower, upper)
	}
	if lower.ClientID != upper.ClientID || lower.ClientID != 1 {
		t.Fatalf("case-insensitive lookups disagree: %d vs %d", lower.ClientID, upper.ClientID)
	}
	if lower.Name != "John Smith" {
		t.Fatalf("unexpected name %q", lower.Name)
	}
}

func TestLookupByPolicyNotFoundHasFormatHint(t *testing.T) {
	d, err := NewCSVDirectory(writeFixture(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	res, err := d.LookupByPolicy(context.Background(), "POL-00000000-Z")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if res.Found {
		t.Fatalf("expected not found")
	}
	if res.Suggestion == "" {
		t.Fatalf("expected a policy number format hint")
	}
}

func TestLookupByNameSingleMatch(t *testing.T) {
	d, err := NewCSVDirectory(writeFixture(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	res, err := d.LookupByName(context.Background(), "garcia")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !res.Found || res.MultipleMatches {
		t.Fatalf("expected single match, got %+v", res)
	}
	if res.PolicyNumber != "POL-23456789-B" {
		t.Fatalf("unexpected policy %q", res.PolicyNumber)
	}
}

func TestLookupByNameMultipleMatches(t *testing.T) {
	d, err := NewCSVDirectory(writeFixture(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	res, err := d.LookupByName(context.Background(), "john")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !res.MultipleMatches {
		t.Fatalf("expected multiple matches, got %+v", res)
	}
	if res.Count != len(res.Clients) || res.Count != 2 {
		t.Fatalf("count %d must equal candidate list length %d (want 2)", res.Count, len(res.Clients))
	}
	for _, c := range res.Clients {
		if c.PolicyNumber == "" || c.Tier == "" {
			t.Fatalf("candidate missing disambiguation fields: %+v", c)
		}
	}
}

func TestLookupByNameNotFound(t *testing.T) {
	d, err := NewCSVDirectory(writeFixture(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	res, err := d.LookupByName(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if res.Found {
		t.Fatalf("expected not found, got %+v", res)
	}
}
