package resumes

import (
	"encoding/json"
	"time"
)

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ResumeID      string          `json:"resumeId"`
	Title         string          `json:"title"`
	ImportedJSON  json.RawMessage `json:"importedJson,omitempty"`
	GeneratedJSON json.RawMessage `json:"generatedJson,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		ResumeID:      resume.ID,
		Title:         resume.Title,
		ImportedJSON:  resume.OriginalImportedJSON,
		GeneratedJSON: resume.AIGeneratedJSON,
		CreatedAt:     resume.CreatedAt,
		UpdatedAt:     resume.UpdatedAt,
	}
}
