package links

import (
	"encoding/json"
	"strings"
)

// Snapshot is the single resume document chosen for rendering plus the
// declared template.
type Snapshot struct {
	JSON     json.RawMessage `json:"json"`
	Template string          `json:"template"`
}

// ResolveSnapshot picks the document a public link serves. Precedence:
// the pinned version's optimized snapshot, then the live AI-generated
// document, then the raw import. When all three are absent JSON is nil and
// the caller renders an empty state rather than erroring.
//
// Pure function over already-fetched records; unrecognized template strings
// pass through untouched for the renderer to judge.
func ResolveSnapshot(resume ResumeRecord, version *VersionRecord, template string) Snapshot {
	if strings.TrimSpace(template) == "" {
		template = DefaultTemplate
	}

	if version != nil && len(version.OptimizedJSON) > 0 {
		return Snapshot{JSON: version.OptimizedJSON, Template: template}
	}
	if len(resume.AIGeneratedJSON) > 0 {
		return Snapshot{JSON: resume.AIGeneratedJSON, Template: template}
	}
	if len(resume.OriginalImportedJSON) > 0 {
		return Snapshot{JSON: resume.OriginalImportedJSON, Template: template}
	}
	return Snapshot{JSON: nil, Template: template}
}
