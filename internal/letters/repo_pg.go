package letters

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new deck.
func (r *PGRepo) Create(ctx context.Context, deck CoverLetterDeck) error {
	const query = `
INSERT INTO cover_letters (id, resume_id, content, created_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, deck.ID, deck.ResumeID, deck.Content, deck.CreatedAt)
	return err
}

// LatestByResume returns the most recent deck for a resume.
func (r *PGRepo) LatestByResume(ctx context.Context, resumeID string) (CoverLetterDeck, error) {
	const query = `
SELECT id, resume_id, content, created_at
FROM cover_letters
WHERE resume_id = $1
ORDER BY created_at DESC
LIMIT 1`
	var deck CoverLetterDeck
	err := r.DB.QueryRowContext(ctx, query, resumeID).Scan(
		&deck.ID,
		&deck.ResumeID,
		&deck.Content,
		&deck.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CoverLetterDeck{}, ErrNotFound
		}
		return CoverLetterDeck{}, err
	}
	return deck, nil
}

// ListByResume lists decks newest-first.
func (r *PGRepo) ListByResume(ctx context.Context, resumeID string, limit, offset int) ([]CoverLetterDeck, error) {
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
SELECT id, resume_id, content, created_at
FROM cover_letters
WHERE resume_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, resumeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CoverLetterDeck
	for rows.Next() {
		var deck CoverLetterDeck
		if err := rows.Scan(&deck.ID, &deck.ResumeID, &deck.Content, &deck.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, deck)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
