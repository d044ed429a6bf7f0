package links

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]PublicLink
	bySlug map[string]string // slug -> linkID
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]PublicLink),
		bySlug: make(map[string]string),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, link PublicLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bySlug[link.Slug]; exists {
		return ErrInvalidInput
	}
	if link.Template == "" {
		link.Template = DefaultTemplate
	}
	r.byID[link.ID] = link
	r.bySlug[link.Slug] = link.ID
	return nil
}

func (r *MemoryRepo) GetBySlug(ctx context.Context, slug string) (PublicLink, error) {
	if err := ctx.Err(); err != nil {
		return PublicLink{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.bySlug[slug]
	if !ok {
		return PublicLink{}, ErrNotFound
	}
	return r.byID[id], nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, linkID string) (PublicLink, error) {
	if err := ctx.Err(); err != nil {
		return PublicLink{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	link, ok := r.byID[linkID]
	if !ok {
		return PublicLink{}, ErrNotFound
	}
	return link, nil
}

func (r *MemoryRepo) ListByResume(ctx context.Context, resumeID string) ([]PublicLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var out []PublicLink
	for _, link := range r.byID {
		if link.ResumeID == resumeID {
			out = append(out, link)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) SetActive(ctx context.Context, linkID string, active bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.byID[linkID]
	if !ok {
		return ErrNotFound
	}
	link.IsActive = active
	r.byID[linkID] = link
	return nil
}

func (r *MemoryRepo) IncrementViews(ctx context.Context, linkID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.byID[linkID]
	if !ok {
		return ErrNotFound
	}
	link.ViewCount++
	link.LastViewedAt = &at
	r.byID[linkID] = link
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
