package versions

import "context"

// Repo defines persistence operations for resume versions. Versions are
// insert-only; there is no update or delete.
type Repo interface {
	Create(ctx context.Context, version ResumeVersion) error
	GetByID(ctx context.Context, versionID string) (ResumeVersion, error)
	ListByResume(ctx context.Context, resumeID string, limit, offset int) ([]ResumeVersion, error)
}
