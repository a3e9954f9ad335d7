package directory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex-assurance/claims-backend/internal/models"
)

// CSVDirectory serves lookups from a clients CSV file loaded fully into
// memory at construction time. Expected columns: Id, Name, Surname,
// Address, Country, Tier, Policy Number.
type CSVDirectory struct {
	records  []models.ClientRecord
	byPolicy map[string]int
	path     string
}

func NewCSVDirectory(path string) (*CSVDirectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := parseClientsCSV(f)
	if err != nil {
		return nil, err
	}

	d := &CSVDirectory{
		records:  records,
		byPolicy: make(map[string]int, len(records)),
		path:     path,
	}
	for i, rec := range records {
		d.byPolicy[NormalizePolicyNumber(rec.PolicyNumber)] = i
	}
	return d, nil
}

func (d *CSVDirectory) LookupByPolicy(ctx context.Context, policyNumber string) (LookupResult, error) {
	normalized := NormalizePolicyNumber(policyNumber)
	if i, ok := d.byPolicy[normalized]; ok {
		return foundResult(d.records[i]), nil
	}
	return policyNotFound(normalized), nil
}

func (d *CSVDirectory) LookupByName(ctx context.Context, name string) (LookupResult, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	var matches []models.ClientRecord
	for _, rec := range d.records {
		if strings.Contains(strings.ToLower(rec.Name), needle) ||
			strings.Contains(strings.ToLower(rec.Surname), needle) {
			matches = append(matches, rec)
		}
	}
	return nameLookupResult(matches, name), nil
}

func (d *CSVDirectory) Ping(ctx context.Context) error {
	if len(d.records) == 0 {
		return fmt.Errorf("client dataset %s is empty", d.path)
	}
	return nil
}

func (d *CSVDirectory) Close() {}

// Len reports how many client records were loaded.
func (d *CSVDirectory) Len() int {
	return len(d.records)
}

func parseClientsCSV(r io.Reader) ([]models.ClientRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := headerIndex(headers)

	var out []models.ClientRecord
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		idStr := getFieldAny(rec, index, "id", "client_id")
		name := getFieldAny(rec, index, "name", "first_name")
		surname := getFieldAny(rec, index, "surname", "last_name")
		address := getFieldAny(rec, index, "address")
		country := getFieldAny(rec, index, "country")
		tier := getFieldAny(rec, index, "tier")
		policyNumber := getFieldAny(rec, index, "policy number", "policy_number")

		if policyNumber == "" {
			return nil, fmt.Errorf("client row %d has no policy number", len(out)+1)
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("client row %d has invalid id %q", len(out)+1, idStr)
		}

		out = append(out, models.ClientRecord{
			ID:           id,
			Name:         name,
			Surname:      surname,
			Address:      address,
			Country:      country,
			Tier:         tier,
			PolicyNumber: strings.TrimSpace(policyNumber),
		})
	}
	return out, nil
}

func headerIndex(headers []string) map[string]int {
	idx := map[string]int{}
	for i, h := range headers {
		idx[normalizeHeader(h)] = i
	}
	return idx
}

func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "\uFEFF", "")
	return strings.ToLower(strings.TrimSpace(h))
}

func getField(rec []string, idx map[string]int, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[pos])
}

func getFieldAny(rec []string, idx map[string]int, names ...string) string {
	for _, name := range names {
		if v := getField(rec, idx, normalizeHeader(name)); v != "" {
			return v
		}
	}
	return ""
}
