package versions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumedeck-backend/internal/ats"
	"resumedeck-backend/internal/llm"
	"resumedeck-backend/internal/shared/telemetry"
)

// ResumeRecord is the subset of a resume this service needs.
type ResumeRecord struct {
	ID              string
	OwnerID         string
	AIGeneratedJSON json.RawMessage
	ImportedJSON    json.RawMessage
}

// ResumeSource fetches resumes with an ownership check.
type ResumeSource interface {
	GetResumeByID(ctx context.Context, ownerID, resumeID string) (ResumeRecord, error)
}

// Service creates and reads immutable resume versions.
type Service struct {
	Repo    Repo
	Resumes ResumeSource
	LLM     llm.Client
	ATS     *ats.Service
}

// CreateInput captures the inputs for an optimization.
type CreateInput struct {
	ResumeID       string
	JobTitle       string
	CompanyName    string
	JobDescription string
}

// Create runs the optimizer against a job description and freezes the result
// as a new version. The source document is the AI snapshot when present,
// otherwise the raw import.
func (s *Service) Create(ctx context.Context, ownerID string, input CreateInput) (ResumeVersion, error) {
	if strings.TrimSpace(input.JobDescription) == "" {
		return ResumeVersion{}, fmt.Errorf("%w: job description required", ErrInvalidInput)
	}

	resume, err := s.Resumes.GetResumeByID(ctx, ownerID, input.ResumeID)
	if err != nil {
		return ResumeVersion{}, err
	}

	source := resume.AIGeneratedJSON
	if len(source) == 0 {
		source = resume.ImportedJSON
	}
	if len(source) == 0 {
		return ResumeVersion{}, fmt.Errorf("%w: resume has no content to optimize", ErrInvalidInput)
	}

	optimized, err := s.LLM.OptimizeResume(ctx, source, input.JobTitle, input.CompanyName, input.JobDescription)
	if err != nil {
		return ResumeVersion{}, fmt.Errorf("optimize resume: %w", err)
	}

	version := ResumeVersion{
		ID:            uuid.NewString(),
		ResumeID:      input.ResumeID,
		OptimizedJSON: optimized,
		JobTitle:      input.JobTitle,
		CompanyName:   input.CompanyName,
		CreatedAt:     time.Now().UTC(),
	}

	// Scoring is best-effort: a failed score still yields a usable version.
	if s.ATS != nil {
		if result, err := s.ATS.Score(ctx, optimized, input.JobDescription); err == nil {
			score := result.Score
			version.ATSScore = &score
		} else {
			telemetry.Warn("version.score_failed", map[string]any{
				"resume_id": input.ResumeID,
				"error":     err.Error(),
			})
		}
	}

	if err := s.Repo.Create(ctx, version); err != nil {
		return ResumeVersion{}, err
	}
	return version, nil
}

// Get fetches a version, verifying the caller owns the parent resume.
func (s *Service) Get(ctx context.Context, ownerID, versionID string) (ResumeVersion, error) {
	version, err := s.Repo.GetByID(ctx, versionID)
	if err != nil {
		return ResumeVersion{}, err
	}
	if _, err := s.Resumes.GetResumeByID(ctx, ownerID, version.ResumeID); err != nil {
		return ResumeVersion{}, ErrNotFound
	}
	return version, nil
}

// List returns versions for an owned resume, newest first.
func (s *Service) List(ctx context.Context, ownerID, resumeID string, limit, offset int) ([]ResumeVersion, error) {
	if _, err := s.Resumes.GetResumeByID(ctx, ownerID, resumeID); err != nil {
		return nil, err
	}
	return s.Repo.ListByResume(ctx, resumeID, limit, offset)
}
