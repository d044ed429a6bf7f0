package links

import (
	"encoding/json"
	"testing"
)

func TestResolveSnapshotPrecedence(t *testing.T) {
	optimized := json.RawMessage(`{"personal_info":{"full_name":"Optimized Person"}}`)
	generated := json.RawMessage(`{"personal_info":{"full_name":"Generated Person"}}`)
	imported := json.RawMessage(`{"personal_info":{"full_name":"Imported Person"}}`)

	full := ResumeRecord{ID: "r1", AIGeneratedJSON: generated, OriginalImportedJSON: imported}
	version := &VersionRecord{ID: "v1", ResumeID: "r1", OptimizedJSON: optimized}

	tests := []struct {
		name    string
		resume  ResumeRecord
		version *VersionRecord
		want    json.RawMessage
	}{
		{"pinned version wins", full, version, optimized},
		{"no pin falls back to generated", full, nil, generated},
		{"empty pinned snapshot falls back", full, &VersionRecord{ID: "v1", ResumeID: "r1"}, generated},
		{"no generated falls back to import", ResumeRecord{ID: "r1", OriginalImportedJSON: imported}, nil, imported},
		{"nothing available yields nil", ResumeRecord{ID: "r1"}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSnapshot(tt.resume, tt.version, "classic")
			if string(got.JSON) != string(tt.want) {
				t.Fatalf("JSON = %s, want %s", got.JSON, tt.want)
			}
		})
	}
}

func TestResolveSnapshotTemplate(t *testing.T) {
	resume := ResumeRecord{ID: "r1"}

	if got := ResolveSnapshot(resume, nil, "").Template; got != DefaultTemplate {
		t.Fatalf("empty template = %q, want %q", got, DefaultTemplate)
	}
	if got := ResolveSnapshot(resume, nil, "   ").Template; got != DefaultTemplate {
		t.Fatalf("blank template = %q, want %q", got, DefaultTemplate)
	}
	// Unrecognized values pass through; the renderer decides what it supports.
	if got := ResolveSnapshot(resume, nil, "brutalist").Template; got != "brutalist" {
		t.Fatalf("custom template = %q, want brutalist", got)
	}
}
