package letters

import "context"

// Repo defines persistence operations for cover-letter decks.
type Repo interface {
	Create(ctx context.Context, deck CoverLetterDeck) error
	LatestByResume(ctx context.Context, resumeID string) (CoverLetterDeck, error)
	ListByResume(ctx context.Context, resumeID string, limit, offset int) ([]CoverLetterDeck, error)
}
