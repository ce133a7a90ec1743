package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"clubraise/internal/entity/models"
	id "clubraise/pkg/domain"
	"clubraise/pkg/platform/sentinel"
)

// Schema is applied by deployments and integration tests. Kept here so the
// store and its tables evolve together.
const Schema = `
CREATE TABLE IF NOT EXISTS onboardings (
	org_id          UUID PRIMARY KEY,
	category        TEXT,
	status          TEXT NOT NULL,
	rejection_notes TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS entity_details (
	id                    UUID PRIMARY KEY,
	org_id                UUID NOT NULL UNIQUE,
	legal_name            TEXT NOT NULL,
	trading_names         TEXT[] NOT NULL DEFAULT '{}',
	description           TEXT NOT NULL DEFAULT '',
	founded_year          INT,
	address_line1         TEXT NOT NULL DEFAULT '',
	address_line2         TEXT NOT NULL DEFAULT '',
	city                  TEXT NOT NULL DEFAULT '',
	county                TEXT NOT NULL DEFAULT '',
	postal_code           TEXT NOT NULL DEFAULT '',
	jurisdiction          TEXT NOT NULL,
	legal_structure       TEXT NOT NULL DEFAULT '',
	registration          JSONB NOT NULL DEFAULT '{}',
	registration_verified BOOLEAN NOT NULL DEFAULT FALSE,
	verification_notes    TEXT NOT NULL DEFAULT '',
	verified_at           TIMESTAMPTZ,
	verified_by           TEXT NOT NULL DEFAULT '',
	created_at            TIMESTAMPTZ NOT NULL,
	updated_at            TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

// PostgresOnboardingStore persists onboarding progress in PostgreSQL.
// Execute wraps validate and apply in a transaction holding a row lock so
// two transitions for the same organization cannot interleave.
type PostgresOnboardingStore struct {
	db *sql.DB
}

func NewPostgresOnboardingStore(db *sql.DB) *PostgresOnboardingStore {
	return &PostgresOnboardingStore{db: db}
}

func (s *PostgresOnboardingStore) Create(ctx context.Context, o *models.Onboarding) error {
	var category sql.NullString
	if o.Category != nil {
		category = sql.NullString{String: string(*o.Category), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO onboardings (org_id, category, status, rejection_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.UUID(o.OrgID), category, string(o.Status), o.RejectionNotes, o.CreatedAt, o.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return sentinel.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("insert onboarding: %w", err)
	}
	return nil
}

func (s *PostgresOnboardingStore) FindByOrg(ctx context.Context, orgID id.OrgID) (*models.Onboarding, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT org_id, category, status, rejection_notes, created_at, updated_at
		FROM onboardings WHERE org_id = $1`, uuid.UUID(orgID))
	return scanOnboarding(row)
}

func (s *PostgresOnboardingStore) Execute(ctx context.Context, orgID id.OrgID,
	validate func(*models.Onboarding) error,
	apply func(*models.Onboarding)) (*models.Onboarding, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		SELECT org_id, category, status, rejection_notes, created_at, updated_at
		FROM onboardings WHERE org_id = $1 FOR UPDATE`, uuid.UUID(orgID))
	record, err := scanOnboarding(row)
	if err != nil {
		return nil, err
	}

	if validate != nil {
		if err := validate(record.Clone()); err != nil {
			return nil, err
		}
	}
	apply(record)

	var category sql.NullString
	if record.Category != nil {
		category = sql.NullString{String: string(*record.Category), Valid: true}
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE onboardings
		SET category = $2, status = $3, rejection_notes = $4, updated_at = $5
		WHERE org_id = $1`,
		uuid.UUID(record.OrgID), category, string(record.Status), record.RejectionNotes, record.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update onboarding: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit onboarding update: %w", err)
	}
	return record, nil
}

// PostgresEntityStore persists entity-details records in PostgreSQL. The
// registration union is stored as JSONB; the org_id unique constraint
// enforces at most one record per organization.
type PostgresEntityStore struct {
	db *sql.DB
}

func NewPostgresEntityStore(db *sql.DB) *PostgresEntityStore {
	return &PostgresEntityStore{db: db}
}

const entityColumns = `id, org_id, legal_name, trading_names, description, founded_year,
	address_line1, address_line2, city, county, postal_code,
	jurisdiction, legal_structure, registration,
	registration_verified, verification_notes, verified_at, verified_by,
	created_at, updated_at`

func (s *PostgresEntityStore) Create(ctx context.Context, d *models.EntityDetails) error {
	registration, err := json.Marshal(d.Registration)
	if err != nil {
		return fmt.Errorf("marshal registration: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entity_details (`+entityColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		uuid.UUID(d.ID), uuid.UUID(d.OrgID), d.LegalName, pq.Array(d.TradingNames), d.Description, d.FoundedYear,
		d.Address.Line1, d.Address.Line2, d.Address.City, d.Address.County, d.Address.PostalCode,
		string(d.Jurisdiction), string(d.LegalStructure), registration,
		d.RegistrationVerified, d.VerificationNotes, d.VerifiedAt, d.VerifiedBy,
		d.CreatedAt, d.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return sentinel.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("insert entity details: %w", err)
	}
	return nil
}

func (s *PostgresEntityStore) FindByOrg(ctx context.Context, orgID id.OrgID) (*models.EntityDetails, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entityColumns+` FROM entity_details WHERE org_id = $1`, uuid.UUID(orgID))
	return scanEntityDetails(row)
}

func (s *PostgresEntityStore) Delete(ctx context.Context, orgID id.OrgID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entity_details WHERE org_id = $1`, uuid.UUID(orgID))
	if err != nil {
		return fmt.Errorf("delete entity details: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete entity details: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresEntityStore) Execute(ctx context.Context, orgID id.OrgID,
	validate func(*models.EntityDetails) error,
	apply func(*models.EntityDetails)) (*models.EntityDetails, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		`SELECT `+entityColumns+` FROM entity_details WHERE org_id = $1 FOR UPDATE`, uuid.UUID(orgID))
	record, err := scanEntityDetails(row)
	if err != nil {
		return nil, err
	}

	if validate != nil {
		if err := validate(record.Clone()); err != nil {
			return nil, err
		}
	}
	apply(record)

	registration, err := json.Marshal(record.Registration)
	if err != nil {
		return nil, fmt.Errorf("marshal registration: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE entity_details
		SET legal_name = $2, trading_names = $3, description = $4, founded_year = $5,
			address_line1 = $6, address_line2 = $7, city = $8, county = $9, postal_code = $10,
			jurisdiction = $11, legal_structure = $12, registration = $13,
			registration_verified = $14, verification_notes = $15, verified_at = $16, verified_by = $17,
			updated_at = $18
		WHERE org_id = $1`,
		uuid.UUID(record.OrgID), record.LegalName, pq.Array(record.TradingNames), record.Description, record.FoundedYear,
		record.Address.Line1, record.Address.Line2, record.Address.City, record.Address.County, record.Address.PostalCode,
		string(record.Jurisdiction), string(record.LegalStructure), registration,
		record.RegistrationVerified, record.VerificationNotes, record.VerifiedAt, record.VerifiedBy,
		record.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update entity details: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit entity update: %w", err)
	}
	return record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOnboarding(row rowScanner) (*models.Onboarding, error) {
	var (
		orgID    uuid.UUID
		category sql.NullString
		status   string
		o        models.Onboarding
	)
	err := row.Scan(&orgID, &category, &status, &o.RejectionNotes, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan onboarding: %w", err)
	}
	o.OrgID = id.OrgID(orgID)
	o.Status = models.OnboardingStatus(status)
	if category.Valid {
		c := models.EntityCategory(category.String)
		o.Category = &c
	}
	return &o, nil
}

func scanEntityDetails(row rowScanner) (*models.EntityDetails, error) {
	var (
		entityID     uuid.UUID
		orgID        uuid.UUID
		jurisdiction string
		structure    string
		registration []byte
		d            models.EntityDetails
	)
	err := row.Scan(
		&entityID, &orgID, &d.LegalName, pq.Array(&d.TradingNames), &d.Description, &d.FoundedYear,
		&d.Address.Line1, &d.Address.Line2, &d.Address.City, &d.Address.County, &d.Address.PostalCode,
		&jurisdiction, &structure, &registration,
		&d.RegistrationVerified, &d.VerificationNotes, &d.VerifiedAt, &d.VerifiedBy,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan entity details: %w", err)
	}
	d.ID = id.EntityID(entityID)
	d.OrgID = id.OrgID(orgID)
	d.Jurisdiction = models.Jurisdiction(jurisdiction)
	d.LegalStructure = models.LegalStructure(structure)
	if err := json.Unmarshal(registration, &d.Registration); err != nil {
		return nil, fmt.Errorf("unmarshal registration: %w", err)
	}
	// Stored payloads predating a jurisdiction switch may carry the stale
	// variant; the discriminant always wins.
	d.Registration.Reset(d.Jurisdiction)
	return &d, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
