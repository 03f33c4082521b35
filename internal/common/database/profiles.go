// internal/common/database/profiles.go
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/models"
	"exhibitor-profile/internal/profile"
)

const profilesSchema = `
CREATE TABLE IF NOT EXISTS exhibitor_profiles (
	id           UUID PRIMARY KEY,
	company_name TEXT        NOT NULL,
	package_type TEXT        NOT NULL,
	version      BIGINT      NOT NULL,
	payload      JSONB       NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
)`

// ProfileStore persists whole profiles as JSONB and serializes writers with
// a compare-and-swap on the version column.
type ProfileStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// EnsureSchema creates the profiles table if it does not exist.
func (s *ProfileStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, profilesSchema); err != nil {
		return errors.NewProfileStoreFailedError(fmt.Errorf("ensure schema: %w", err))
	}
	return nil
}

// Create inserts p as version 1. An existing row with the same id is a
// version conflict.
func (s *ProfileStore) Create(ctx context.Context, p models.ExhibitorProfile) (models.ExhibitorProfile, error) {
	out := p.Clone()
	out.Version = 1
	out.UpdatedAt = s.now()

	payload, err := json.Marshal(out)
	if err != nil {
		return p, errors.NewProfileStoreFailedError(fmt.Errorf("encode profile: %w", err))
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO exhibitor_profiles (id, company_name, package_type, version, payload, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		out.ID, out.CompanyName, string(out.PackageType), out.Version, payload, out.UpdatedAt,
	)
	if err != nil {
		return p, errors.NewProfileStoreFailedError(fmt.Errorf("insert profile: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return p, errors.NewProfileStoreFailedError(err)
	}
	if n == 0 {
		return p, errors.NewProfileVersionConflictError(out.ID, 0)
	}
	return out, nil
}

// Get loads a profile. Version and UpdatedAt come from the row, not the payload.
// Ids that are not UUIDs cannot exist and are reported as not found. A stored
// payload that breaks the profile invariants is rejected as INVALID_PROFILE.
func (s *ProfileStore) Get(ctx context.Context, id string) (models.ExhibitorProfile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.ExhibitorProfile{}, errors.NewProfileNotFoundError(id)
	}

	var (
		payload   []byte
		version   int64
		updatedAt time.Time
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, version, updated_at FROM exhibitor_profiles WHERE id = $1`, id,
	).Scan(&payload, &version, &updatedAt)
	if err == sql.ErrNoRows {
		return models.ExhibitorProfile{}, errors.NewProfileNotFoundError(id)
	}
	if err != nil {
		return models.ExhibitorProfile{}, errors.NewProfileStoreFailedError(fmt.Errorf("select profile: %w", err))
	}

	var p models.ExhibitorProfile
	if err := json.Unmarshal(payload, &p); err != nil {
		return models.ExhibitorProfile{}, errors.NewProfileStoreFailedError(fmt.Errorf("decode profile %s: %w", id, err))
	}
	p.ID = id
	p.Version = version
	p.UpdatedAt = updatedAt

	p = profile.Normalize(p)
	if err := profile.Validate(p); err != nil {
		return models.ExhibitorProfile{}, errors.NewInvalidProfileError(
			fmt.Sprintf("stored profile %s: %s", id, errors.Normalize(err).Details))
	}
	return p, nil
}

// Save writes p if the stored version still equals expectedVersion and
// returns p with the bumped version.
func (s *ProfileStore) Save(ctx context.Context, p models.ExhibitorProfile, expectedVersion int64) (models.ExhibitorProfile, error) {
	if _, err := uuid.Parse(p.ID); err != nil {
		return p, errors.NewProfileNotFoundError(p.ID)
	}

	out := p.Clone()
	out.Version = expectedVersion + 1
	out.UpdatedAt = s.now()

	payload, err := json.Marshal(out)
	if err != nil {
		return p, errors.NewProfileStoreFailedError(fmt.Errorf("encode profile: %w", err))
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE exhibitor_profiles
		SET company_name = $2, package_type = $3, version = $4, payload = $5, updated_at = $6
		WHERE id = $1 AND version = $7`,
		out.ID, out.CompanyName, string(out.PackageType), out.Version, payload, out.UpdatedAt, expectedVersion,
	)
	if err != nil {
		return p, errors.NewProfileStoreFailedError(fmt.Errorf("update profile: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return p, errors.NewProfileStoreFailedError(err)
	}
	if n == 1 {
		return out, nil
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM exhibitor_profiles WHERE id = $1)`, out.ID,
	).Scan(&exists); err != nil {
		return p, errors.NewProfileStoreFailedError(fmt.Errorf("check profile: %w", err))
	}
	if !exists {
		return p, errors.NewProfileNotFoundError(out.ID)
	}
	return p, errors.NewProfileVersionConflictError(out.ID, expectedVersion)
}
