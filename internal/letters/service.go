package letters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumedeck-backend/internal/llm"
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

// Service generates and reads cover-letter decks.
type Service struct {
	Repo    Repo
	Resumes ResumeSource
	LLM     llm.Client
}

// Generate produces a four-slide pitch deck for an owned resume against a job
// description and stores it.
func (s *Service) Generate(ctx context.Context, ownerID, resumeID, jobDescription string) (CoverLetterDeck, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return CoverLetterDeck{}, fmt.Errorf("%w: job description required", ErrInvalidInput)
	}

	resume, err := s.Resumes.GetResumeByID(ctx, ownerID, resumeID)
	if err != nil {
		return CoverLetterDeck{}, err
	}

	source := resume.AIGeneratedJSON
	if len(source) == 0 {
		source = resume.ImportedJSON
	}
	if len(source) == 0 {
		return CoverLetterDeck{}, fmt.Errorf("%w: resume has no content", ErrInvalidInput)
	}

	raw, err := s.LLM.GeneratePitchDeck(ctx, source, jobDescription)
	if err != nil {
		return CoverLetterDeck{}, fmt.Errorf("generate pitch deck: %w", err)
	}

	deck := CoverLetterDeck{
		ID:        uuid.NewString(),
		ResumeID:  resumeID,
		Content:   string(raw),
		CreatedAt: time.Now().UTC(),
	}
	if deck.Slides() == nil {
		return CoverLetterDeck{}, fmt.Errorf("%w: model did not return 4 slides", ErrInvalidInput)
	}

	if err := s.Repo.Create(ctx, deck); err != nil {
		return CoverLetterDeck{}, err
	}
	return deck, nil
}

// List returns decks for an owned resume, newest first.
func (s *Service) List(ctx context.Context, ownerID, resumeID string, limit, offset int) ([]CoverLetterDeck, error) {
	if _, err := s.Resumes.GetResumeByID(ctx, ownerID, resumeID); err != nil {
		return nil, err
	}
	return s.Repo.ListByResume(ctx, resumeID, limit, offset)
}
