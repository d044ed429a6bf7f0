package versions

import (
	"encoding/json"
	"time"
)

type versionResponse struct {
	VersionID     string          `json:"versionId"`
	ResumeID      string          `json:"resumeId"`
	JobTitle      string          `json:"jobTitle"`
	CompanyName   string          `json:"companyName"`
	ATSScore      *float64        `json:"atsScore,omitempty"`
	OptimizedJSON json.RawMessage `json:"optimizedJson,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func toResponse(version ResumeVersion) versionResponse {
	return versionResponse{
		VersionID:     version.ID,
		ResumeID:      version.ResumeID,
		JobTitle:      version.JobTitle,
		CompanyName:   version.CompanyName,
		ATSScore:      version.ATSScore,
		OptimizedJSON: version.OptimizedJSON,
		CreatedAt:     version.CreatedAt,
	}
}
