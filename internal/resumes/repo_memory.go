package resumes

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string]Resume // resumeID -> resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resumes: make(map[string]Resume)}
}

func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[resume.ID] = resume
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	resume, err := r.GetAny(ctx, resumeID)
	if err != nil {
		return Resume{}, err
	}
	if resume.OwnerID != ownerID {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

func (r *MemoryRepo) GetAny(ctx context.Context, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.DeletedAt != nil {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	var owned []Resume
	for _, resume := range r.resumes {
		if resume.OwnerID == ownerID && resume.DeletedAt == nil {
			owned = append(owned, resume)
		}
	}
	r.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	if offset >= len(owned) {
		return []Resume{}, nil
	}
	end := len(owned)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return owned[offset:end], nil
}

func (r *MemoryRepo) UpdateTitle(ctx context.Context, ownerID, resumeID, title string) error {
	return r.update(ctx, ownerID, resumeID, func(resume *Resume) {
		resume.Title = title
	})
}

func (r *MemoryRepo) SetImportedJSON(ctx context.Context, ownerID, resumeID string, doc json.RawMessage) error {
	return r.update(ctx, ownerID, resumeID, func(resume *Resume) {
		resume.OriginalImportedJSON = doc
	})
}

func (r *MemoryRepo) SetAIGeneratedJSON(ctx context.Context, ownerID, resumeID string, doc json.RawMessage) error {
	return r.update(ctx, ownerID, resumeID, func(resume *Resume) {
		resume.AIGeneratedJSON = doc
	})
}

func (r *MemoryRepo) SoftDelete(ctx context.Context, ownerID, resumeID string) error {
	now := time.Now().UTC()
	return r.update(ctx, ownerID, resumeID, func(resume *Resume) {
		resume.DeletedAt = &now
	})
}

func (r *MemoryRepo) update(ctx context.Context, ownerID, resumeID string, fn func(*Resume)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.DeletedAt != nil || resume.OwnerID != ownerID {
		return ErrNotFound
	}
	fn(&resume)
	resume.UpdatedAt = time.Now().UTC()
	r.resumes[resumeID] = resume
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
