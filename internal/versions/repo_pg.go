package versions

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

// Create inserts a new version.
func (r *PGRepo) Create(ctx context.Context, version ResumeVersion) error {
	const query = `
INSERT INTO resume_versions (id, resume_id, optimized_json, job_title, company_name, ats_score, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	var score sql.NullFloat64
	if version.ATSScore != nil {
		score = sql.NullFloat64{Float64: *version.ATSScore, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		version.ID,
		version.ResumeID,
		[]byte(version.OptimizedJSON),
		version.JobTitle,
		version.CompanyName,
		score,
		version.CreatedAt,
	)
	return err
}

// GetByID fetches a version by id.
func (r *PGRepo) GetByID(ctx context.Context, versionID string) (ResumeVersion, error) {
	const query = `
SELECT id, resume_id, optimized_json, job_title, company_name, ats_score, created_at
FROM resume_versions
WHERE id = $1
LIMIT 1`
	return scanVersion(r.DB.QueryRowContext(ctx, query, versionID))
}

// ListByResume lists versions for a resume, newest first.
func (r *PGRepo) ListByResume(ctx context.Context, resumeID string, limit, offset int) ([]ResumeVersion, error) {
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
SELECT id, resume_id, optimized_json, job_title, company_name, ats_score, created_at
FROM resume_versions
WHERE resume_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, resumeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ResumeVersion
	for rows.Next() {
		version, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, version)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVersion(row rowScanner) (ResumeVersion, error) {
	var version ResumeVersion
	var optimized []byte
	var jobTitle sql.NullString
	var companyName sql.NullString
	var score sql.NullFloat64
	err := row.Scan(
		&version.ID,
		&version.ResumeID,
		&optimized,
		&jobTitle,
		&companyName,
		&score,
		&version.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ResumeVersion{}, ErrNotFound
		}
		return ResumeVersion{}, err
	}
	if len(optimized) > 0 {
		version.OptimizedJSON = json.RawMessage(optimized)
	}
	if jobTitle.Valid {
		version.JobTitle = jobTitle.String
	}
	if companyName.Valid {
		version.CompanyName = companyName.String
	}
	if score.Valid {
		version.ATSScore = &score.Float64
	}
	return version, nil
}

var _ Repo = (*PGRepo)(nil)
