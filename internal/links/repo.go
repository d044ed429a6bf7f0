package links

import (
	"context"
	"time"
)

// Repo defines persistence operations for public links.
type Repo interface {
	Create(ctx context.Context, link PublicLink) error
	GetBySlug(ctx context.Context, slug string) (PublicLink, error)
	GetByID(ctx context.Context, linkID string) (PublicLink, error)
	ListByResume(ctx context.Context, resumeID string) ([]PublicLink, error)
	SetActive(ctx context.Context, linkID string, active bool) error
	// IncrementViews bumps view_count by one and stamps last_viewed_at.
	// The increment happens store-side so concurrent viewers do not lose
	// updates.
	IncrementViews(ctx context.Context, linkID string, at time.Time) error
}
