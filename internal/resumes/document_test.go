package resumes

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"full document", `{"personal_info":{"full_name":"Ada Lovelace"},"summary":"Engineer","skills":["go"]}`, false},
		{"name only", `{"personal_info":{"full_name":"Ada"}}`, false},
		{"summary only", `{"summary":"Generalist"}`, false},
		{"experience only", `{"experience":[{"company":"Acme","title":"Engineer"}]}`, false},
		{"empty payload", ``, true},
		{"malformed json", `{"personal_info":`, true},
		{"no content", `{"personal_info":{"email":"a@b.c"}}`, true},
		{"array payload", `["not","a","document"]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(json.RawMessage(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
