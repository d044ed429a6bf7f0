package versions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"resumedeck-backend/internal/ats"
)

type fakeLLM struct {
	optimized json.RawMessage
	scoreJSON json.RawMessage
	scoreErr  error
}

func (f fakeLLM) GenerateResume(ctx context.Context, profileText string) (json.RawMessage, error) {
	return nil, errors.New("not used")
}

func (f fakeLLM) OptimizeResume(ctx context.Context, resumeJSON json.RawMessage, jobTitle, companyName, jobDescription string) (json.RawMessage, error) {
	return f.optimized, nil
}

func (f fakeLLM) ScoreResume(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (json.RawMessage, error) {
	return f.scoreJSON, f.scoreErr
}

func (f fakeLLM) GeneratePitchDeck(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (json.RawMessage, error) {
	return nil, errors.New("not used")
}

type fakeResumes struct {
	resumes map[string]ResumeRecord
}

func (f fakeResumes) GetResumeByID(ctx context.Context, ownerID, resumeID string) (ResumeRecord, error) {
	r, ok := f.resumes[resumeID]
	if !ok || r.OwnerID != ownerID {
		return ResumeRecord{}, ErrNotFound
	}
	return r, nil
}

func newVersionService(llm fakeLLM) *Service {
	source := fakeResumes{resumes: map[string]ResumeRecord{
		"r1": {ID: "r1", OwnerID: "u1", AIGeneratedJSON: json.RawMessage(`{"summary":"live"}`)},
		"r2": {ID: "r2", OwnerID: "u1", ImportedJSON: json.RawMessage(`{"summary":"imported"}`)},
		"r3": {ID: "r3", OwnerID: "u1"},
	}}
	return &Service{
		Repo:    NewMemoryRepo(),
		Resumes: source,
		LLM:     llm,
		ATS:     &ats.Service{LLM: llm},
	}
}

func TestCreateVersionScoresResult(t *testing.T) {
	svc := newVersionService(fakeLLM{
		optimized: json.RawMessage(`{"summary":"tailored"}`),
		scoreJSON: json.RawMessage(`{"score":82.5,"matched_keywords":["go"],"missing_keywords":["k8s"]}`),
	})

	version, err := svc.Create(context.Background(), "u1", CreateInput{
		ResumeID:       "r1",
		JobTitle:       "Backend Engineer",
		CompanyName:    "Acme",
		JobDescription: "Go services",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if string(version.OptimizedJSON) != `{"summary":"tailored"}` {
		t.Fatalf("OptimizedJSON = %s", version.OptimizedJSON)
	}
	if version.ATSScore == nil || *version.ATSScore != 82.5 {
		t.Fatalf("ATSScore = %v, want 82.5", version.ATSScore)
	}

	got, err := svc.Get(context.Background(), "u1", version.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != version.ID {
		t.Fatalf("Get returned %q, want %q", got.ID, version.ID)
	}
}

func TestCreateVersionSurvivesScoreFailure(t *testing.T) {
	svc := newVersionService(fakeLLM{
		optimized: json.RawMessage(`{"summary":"tailored"}`),
		scoreErr:  errors.New("llm down"),
	})

	version, err := svc.Create(context.Background(), "u1", CreateInput{
		ResumeID:       "r1",
		JobDescription: "Go services",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if version.ATSScore != nil {
		t.Fatalf("ATSScore = %v, want nil after score failure", version.ATSScore)
	}
}

func TestCreateVersionFallsBackToImport(t *testing.T) {
	llm := fakeLLM{
		optimized: json.RawMessage(`{"summary":"tailored"}`),
		scoreJSON: json.RawMessage(`{"score":50}`),
	}
	svc := newVersionService(llm)

	if _, err := svc.Create(context.Background(), "u1", CreateInput{ResumeID: "r2", JobDescription: "jd"}); err != nil {
		t.Fatalf("Create from import: %v", err)
	}
}

func TestCreateVersionRejectsEmptyResume(t *testing.T) {
	svc := newVersionService(fakeLLM{optimized: json.RawMessage(`{}`)})

	_, err := svc.Create(context.Background(), "u1", CreateInput{ResumeID: "r3", JobDescription: "jd"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestGetVersionChecksOwnership(t *testing.T) {
	svc := newVersionService(fakeLLM{
		optimized: json.RawMessage(`{}`),
		scoreJSON: json.RawMessage(`{"score":10}`),
	})

	version, err := svc.Create(context.Background(), "u1", CreateInput{ResumeID: "r1", JobDescription: "jd"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Get(context.Background(), "intruder", version.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
