package versions

import (
	"encoding/json"
	"time"
)

// ResumeVersion is an immutable, frozen resume snapshot created when a
// job-specific optimization is applied. Never mutated after creation.
type ResumeVersion struct {
	ID            string
	ResumeID      string
	OptimizedJSON json.RawMessage
	JobTitle      string
	CompanyName   string
	ATSScore      *float64
	CreatedAt     time.Time
}
