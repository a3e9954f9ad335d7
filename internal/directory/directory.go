package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex-assurance/claims-backend/internal/models"
)

// Directory is a read-only view over the client dataset. Implementations
// must never mutate records. Lookup errors mean the backing dataset
// could not be read; "no such client" is reported inside LookupResult.
type Directory interface {
	LookupByPolicy(ctx context.Context, policyNumber string) (LookupResult, error)
	LookupByName(ctx context.Context, name string) (LookupResult, error)
	Ping(ctx context.Context) error
	Close()
}

// Candidate is one row of a multiple-matches result, carrying just
// enough for the caller to disambiguate by policy number.
type Candidate struct {
	Name         string `json:"name"`
	PolicyNumber string `json:"policy_number"`
	Tier         string `json:"tier"`
}

// LookupResult is the wire document for both lookup entry points.
type LookupResult struct {
	Found           bool        `json:"found"`
	ClientID        int64       `json:"client_id,omitempty"`
	Name            string      `json:"name,omitempty"`
	Address         string      `json:"address,omitempty"`
	Country         string      `json:"country,omitempty"`
	Tier            string      `json:"tier,omitempty"`
	PolicyNumber    string      `json:"policy_number,omitempty"`
	MultipleMatches bool        `json:"multiple_matches,omitempty"`
	Count           int         `json:"count,omitempty"`
	Clients         []Candidate `json:"clients,omitempty"`
	Message         string      `json:"message,omitempty"`
	Error           string      `json:"error,omitempty"`
	Suggestion      string      `json:"suggestion,omitempty"`
}

// NormalizePolicyNumber applies the exact-match normalization used by
// every directory implementation.
func NormalizePolicyNumber(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func foundResult(rec models.ClientRecord) LookupResult {
	return LookupResult{
		Found:        true,
		ClientID:     rec.ID,
		Name:         rec.Name + " " + rec.Surname,
		Address:      rec.Address,
		Country:      rec.Country,
		Tier:         rec.Tier,
		PolicyNumber: rec.PolicyNumber,
	}
}

func policyNotFound(policyNumber string) LookupResult {
	return LookupResult{
		Found:      false,
		Error:      fmt.Sprintf("No client found with policy number: %s", policyNumber),
		Suggestion: "Please verify the policy number format (e.g., POL-12345678-A)",
	}
}

func nameNotFound(name string) LookupResult {
	return LookupResult{
		Found: false,
		Error: fmt.Sprintf("No client found with name matching: %s", name),
	}
}

// nameLookupResult folds substring matches into the single/multiple
// result shapes. Two or more matches require the caller to come back
// with a policy number.
func nameLookupResult(matches []models.ClientRecord, name string) LookupResult {
	switch len(matches) {
	case 0:
		return nameNotFound(name)
	case 1:
		return foundResult(matches[0])
	}
	clients := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		clients = append(clients, Candidate{
			Name:         m.Name + " " + m.Surname,
			PolicyNumber: m.PolicyNumber,
			Tier:         m.Tier,
		})
	}
	return LookupResult{
		Found:           true,
		MultipleMatches: true,
		Count:           len(clients),
		Clients:         clients,
		Message:         "Multiple clients found. Please specify the policy number.",
	}
}

// DatabaseErrorResult wraps a dataset read failure as a lookup document.
func DatabaseErrorResult(err error) LookupResult {
	return LookupResult{
		Found: false,
		Error: fmt.Sprintf("Database error: %v", err),
	}
}
