package resumes

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document is the structured shape of a resume JSON payload. Unknown fields
// are tolerated so older documents keep rendering; the known fields are what
// the renderer and the ATS scorer rely on.
type Document struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Summary      string       `json:"summary,omitempty"`
	Experience   []Experience `json:"experience,omitempty"`
	Education    []Education  `json:"education,omitempty"`
	Skills       []string     `json:"skills,omitempty"`
}

type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Headline string `json:"headline,omitempty"`
}

type Experience struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets,omitempty"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ValidateDocument checks that raw is a JSON object renderable as a resume
// document. It rejects non-object payloads and documents with no usable
// content at all.
func ValidateDocument(raw json.RawMessage) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: empty document", ErrInvalidInput)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: malformed document: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(doc.PersonalInfo.FullName) == "" &&
		strings.TrimSpace(doc.Summary) == "" &&
		len(doc.Experience) == 0 &&
		len(doc.Skills) == 0 {
		return fmt.Errorf("%w: document has no recognizable resume content", ErrInvalidInput)
	}
	return nil
}
