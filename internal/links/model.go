package links

import (
	"encoding/json"
	"time"
)

// DefaultTemplate is used when a link does not declare a rendering style.
// Template values are not validated here: the renderer decides what it
// recognizes, this package only carries the declared string.
const DefaultTemplate = "classic"

// PublicLink is a shareable, slug-addressed pointer to a resume. Slug is
// globally unique and immutable once created. Links are never physically
// deleted; owners deactivate them instead.
type PublicLink struct {
	ID           string
	Slug         string
	ResumeID     string
	VersionID    *string
	Template     string
	IsActive     bool
	ViewCount    int
	LastViewedAt *time.Time
	CreatedAt    time.Time
}

// ResumeRecord is the subset of a resume the link path needs.
type ResumeRecord struct {
	ID                   string
	OwnerID              string
	Title                string
	AIGeneratedJSON      json.RawMessage
	OriginalImportedJSON json.RawMessage
}

// OwnerProfile is the subset of the owning user relevant to access control.
type OwnerProfile struct {
	ID                 string
	SubscriptionStatus string
	TrialEndDate       *time.Time
}

// VersionRecord is the subset of a pinned resume version the link path needs.
type VersionRecord struct {
	ID            string
	ResumeID      string
	OptimizedJSON json.RawMessage
}

// Slide is one pitch-deck slide decorating a public page.
type Slide struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
}
