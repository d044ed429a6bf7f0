package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, owner_id, title, original_imported_json, ai_generated_json, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.OwnerID,
		resume.Title,
		nullableJSON(resume.OriginalImportedJSON),
		nullableJSON(resume.AIGeneratedJSON),
		resume.CreatedAt,
	)
	return err
}

const selectColumns = `id, owner_id, title, original_imported_json, ai_generated_json, created_at, updated_at`

// GetByID fetches a resume owned by the given user.
func (r *PGRepo) GetByID(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	const query = `
SELECT ` + selectColumns + `
FROM resumes
WHERE owner_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, ownerID, resumeID))
}

// GetAny fetches a resume by id without an ownership filter.
func (r *PGRepo) GetAny(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT ` + selectColumns + `
FROM resumes
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, resumeID))
}

// ListByOwner lists resumes newest-first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + selectColumns + `
FROM resumes
WHERE owner_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// UpdateTitle renames a resume.
func (r *PGRepo) UpdateTitle(ctx context.Context, ownerID, resumeID, title string) error {
	const query = `
UPDATE resumes
SET title = $1, updated_at = now()
WHERE owner_id = $2 AND id = $3 AND deleted_at IS NULL`
	return r.execExpectingRow(ctx, query, title, ownerID, resumeID)
}

// SetImportedJSON stores the raw imported snapshot.
func (r *PGRepo) SetImportedJSON(ctx context.Context, ownerID, resumeID string, doc json.RawMessage) error {
	const query = `
UPDATE resumes
SET original_imported_json = $1, updated_at = now()
WHERE owner_id = $2 AND id = $3 AND deleted_at IS NULL`
	return r.execExpectingRow(ctx, query, nullableJSON(doc), ownerID, resumeID)
}

// SetAIGeneratedJSON stores the AI-normalized snapshot.
func (r *PGRepo) SetAIGeneratedJSON(ctx context.Context, ownerID, resumeID string, doc json.RawMessage) error {
	const query = `
UPDATE resumes
SET ai_generated_json = $1, updated_at = now()
WHERE owner_id = $2 AND id = $3 AND deleted_at IS NULL`
	return r.execExpectingRow(ctx, query, nullableJSON(doc), ownerID, resumeID)
}

// SoftDelete marks a resume deleted.
func (r *PGRepo) SoftDelete(ctx context.Context, ownerID, resumeID string) error {
	const query = `
UPDATE resumes
SET deleted_at = now(), updated_at = now()
WHERE owner_id = $1 AND id = $2 AND deleted_at IS NULL`
	return r.execExpectingRow(ctx, query, ownerID, resumeID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Resume, error) {
	var resume Resume
	var imported []byte
	var generated []byte
	err := row.Scan(
		&resume.ID,
		&resume.OwnerID,
		&resume.Title,
		&imported,
		&generated,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if len(imported) > 0 {
		resume.OriginalImportedJSON = json.RawMessage(imported)
	}
	if len(generated) > 0 {
		resume.AIGeneratedJSON = json.RawMessage(generated)
	}
	return resume, nil
}

func (r *PGRepo) execExpectingRow(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableJSON(doc json.RawMessage) any {
	if len(doc) == 0 {
		return nil
	}
	return []byte(doc)
}

var _ Repo = (*PGRepo)(nil)
