package resumes

import (
	"encoding/json"
	"time"
)

// Resume is the live, editable resume owned by a user. Two snapshots may be
// attached: the raw imported profile and the AI-normalized document.
type Resume struct {
	ID                   string
	OwnerID              string
	Title                string
	OriginalImportedJSON json.RawMessage
	AIGeneratedJSON      json.RawMessage
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time
}
