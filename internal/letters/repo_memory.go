package letters

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	decks map[string][]CoverLetterDeck // resumeID -> decks
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{decks: make(map[string][]CoverLetterDeck)}
}

func (r *MemoryRepo) Create(ctx context.Context, deck CoverLetterDeck) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decks[deck.ResumeID] = append(r.decks[deck.ResumeID], deck)
	return nil
}

func (r *MemoryRepo) LatestByResume(ctx context.Context, resumeID string) (CoverLetterDeck, error) {
	decks, err := r.sorted(ctx, resumeID)
	if err != nil {
		return CoverLetterDeck{}, err
	}
	if len(decks) == 0 {
		return CoverLetterDeck{}, ErrNotFound
	}
	return decks[0], nil
}

func (r *MemoryRepo) ListByResume(ctx context.Context, resumeID string, limit, offset int) ([]CoverLetterDeck, error) {
	decks, err := r.sorted(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(decks) {
		return []CoverLetterDeck{}, nil
	}
	end := len(decks)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return decks[offset:end], nil
}

func (r *MemoryRepo) sorted(ctx context.Context, resumeID string) ([]CoverLetterDeck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	stored := r.decks[resumeID]
	r.mu.RUnlock()

	decks := make([]CoverLetterDeck, len(stored))
	copy(decks, stored)
	sort.Slice(decks, func(i, j int) bool {
		return decks[i].CreatedAt.After(decks[j].CreatedAt)
	})
	return decks, nil
}

var _ Repo = (*MemoryRepo)(nil)
