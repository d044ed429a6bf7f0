package links

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new public link.
func (r *PGRepo) Create(ctx context.Context, link PublicLink) error {
	const query = `
INSERT INTO public_links (id, slug, resume_id, version_id, template, is_active, view_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, 0, $7)`
	var versionID sql.NullString
	if link.VersionID != nil {
		versionID = sql.NullString{String: *link.VersionID, Valid: true}
	}
	template := link.Template
	if template == "" {
		template = DefaultTemplate
	}
	_, err := r.DB.ExecContext(ctx, query,
		link.ID,
		link.Slug,
		link.ResumeID,
		versionID,
		template,
		link.IsActive,
		link.CreatedAt,
	)
	return err
}

const selectColumns = `id, slug, resume_id, version_id, template, is_active, view_count, last_viewed_at, created_at`

// GetBySlug fetches a link by its public slug.
func (r *PGRepo) GetBySlug(ctx context.Context, slug string) (PublicLink, error) {
	const query = `
SELECT ` + selectColumns + `
FROM public_links
WHERE slug = $1
LIMIT 1`
	return scanLink(r.DB.QueryRowContext(ctx, query, slug))
}

// GetByID fetches a link by id.
func (r *PGRepo) GetByID(ctx context.Context, linkID string) (PublicLink, error) {
	const query = `
SELECT ` + selectColumns + `
FROM public_links
WHERE id = $1
LIMIT 1`
	return scanLink(r.DB.QueryRowContext(ctx, query, linkID))
}

// ListByResume lists links for a resume, newest first.
func (r *PGRepo) ListByResume(ctx context.Context, resumeID string) ([]PublicLink, error) {
	const query = `
SELECT ` + selectColumns + `
FROM public_links
WHERE resume_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PublicLink
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

// SetActive toggles a link.
func (r *PGRepo) SetActive(ctx context.Context, linkID string, active bool) error {
	const query = `
UPDATE public_links
SET is_active = $1
WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, active, linkID)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter atomically on the store side.
func (r *PGRepo) IncrementViews(ctx context.Context, linkID string, at time.Time) error {
	const query = `
UPDATE public_links
SET view_count = view_count + 1, last_viewed_at = $1
WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, at, linkID)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLink(row rowScanner) (PublicLink, error) {
	var link PublicLink
	var versionID sql.NullString
	var lastViewed sql.NullTime
	err := row.Scan(
		&link.ID,
		&link.Slug,
		&link.ResumeID,
		&versionID,
		&link.Template,
		&link.IsActive,
		&link.ViewCount,
		&lastViewed,
		&link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PublicLink{}, ErrNotFound
		}
		return PublicLink{}, err
	}
	if versionID.Valid {
		link.VersionID = &versionID.String
	}
	if lastViewed.Valid {
		link.LastViewedAt = &lastViewed.Time
	}
	return link, nil
}

var _ Repo = (*PGRepo)(nil)
