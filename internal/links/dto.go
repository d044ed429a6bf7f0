package links

import "time"

type linkResponse struct {
	LinkID       string     `json:"linkId"`
	Slug         string     `json:"slug"`
	ResumeID     string     `json:"resumeId"`
	VersionID    *string    `json:"versionId,omitempty"`
	Template     string     `json:"template"`
	IsActive     bool       `json:"isActive"`
	ViewCount    int        `json:"viewCount"`
	LastViewedAt *time.Time `json:"lastViewedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func toResponse(link PublicLink) linkResponse {
	return linkResponse{
		LinkID:       link.ID,
		Slug:         link.Slug,
		ResumeID:     link.ResumeID,
		VersionID:    link.VersionID,
		Template:     link.Template,
		IsActive:     link.IsActive,
		ViewCount:    link.ViewCount,
		LastViewedAt: link.LastViewedAt,
		CreatedAt:    link.CreatedAt,
	}
}
