package directory

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apex-assurance/claims-backend/internal/models"
)

// PostgresDirectory serves lookups from a clients table with the same
// columns as the CSV dataset. Read-only: the pool never writes.
type PostgresDirectory struct {
	Pool *pgxpool.Pool
}

func NewPostgresDirectory(ctx context.Context, databaseURL string) (*PostgresDirectory, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &PostgresDirectory{Pool: pool}, nil
}

func (d *PostgresDirectory) LookupByPolicy(ctx context.Context, policyNumber string) (LookupResult, error) {
	normalized := NormalizePolicyNumber(policyNumber)
	row := d.Pool.QueryRow(ctx, `
		SELECT id, name, surname, address, country, tier, policy_number
		FROM clients
		WHERE UPPER(TRIM(policy_number)) = $1
	`, normalized)

	var rec models.ClientRecord
	err := row.Scan(&rec.ID, &rec.Name, &rec.Surname, &rec.Address, &rec.Country, &rec.Tier, &rec.PolicyNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return policyNotFound(normalized), nil
	}
	if err != nil {
		return LookupResult{}, err
	}
	return foundResult(rec), nil
}

func (d *PostgresDirectory) LookupByName(ctx context.Context, name string) (LookupResult, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, name, surname, address, country, tier, policy_number
		FROM clients
		WHERE name ILIKE '%' || $1 || '%' OR surname ILIKE '%' || $1 || '%'
		ORDER BY id ASC
	`, strings.TrimSpace(name))
	if err != nil {
		return LookupResult{}, err
	}
	defer rows.Close()

	var matches []models.ClientRecord
	for rows.Next() {
		var rec models.ClientRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Surname, &rec.Address, &rec.Country, &rec.Tier, &rec.PolicyNumber); err != nil {
			return LookupResult{}, err
		}
		matches = append(matches, rec)
	}
	if err := rows.Err(); err != nil {
		return LookupResult{}, err
	}
	return nameLookupResult(matches, name), nil
}

func (d *PostgresDirectory) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

func (d *PostgresDirectory) Close() {
	d.Pool.Close()
}
