package versions

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu       sync.RWMutex
	versions map[string]ResumeVersion // versionID -> version
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{versions: make(map[string]ResumeVersion)}
}

func (r *MemoryRepo) Create(ctx context.Context, version ResumeVersion) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[version.ID] = version
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, versionID string) (ResumeVersion, error) {
	if err := ctx.Err(); err != nil {
		return ResumeVersion{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	version, ok := r.versions[versionID]
	if !ok {
		return ResumeVersion{}, ErrNotFound
	}
	return version, nil
}

func (r *MemoryRepo) ListByResume(ctx context.Context, resumeID string, limit, offset int) ([]ResumeVersion, error) {
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
	var owned []ResumeVersion
	for _, version := range r.versions {
		if version.ResumeID == resumeID {
			owned = append(owned, version)
		}
	}
	r.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	if offset >= len(owned) {
		return []ResumeVersion{}, nil
	}
	end := len(owned)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return owned[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
