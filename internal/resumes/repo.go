package resumes

import (
	"context"
	"encoding/json"
)

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, ownerID, resumeID string) (Resume, error)
	// GetAny fetches a resume regardless of owner. Used by the public link
	// path where the viewer is not the owner.
	GetAny(ctx context.Context, resumeID string) (Resume, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Resume, error)
	UpdateTitle(ctx context.Context, ownerID, resumeID, title string) error
	SetImportedJSON(ctx context.Context, ownerID, resumeID string, doc json.RawMessage) error
	SetAIGeneratedJSON(ctx context.Context, ownerID, resumeID string, doc json.RawMessage) error
	SoftDelete(ctx context.Context, ownerID, resumeID string) error
}
