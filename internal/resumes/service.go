package resumes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumedeck-backend/internal/llm"
)

// Service contains business logic for resumes.
type Service struct {
	Repo Repo
	LLM  llm.Client
}

// Create starts a new, empty resume.
func (s *Service) Create(ctx context.Context, ownerID, title string) (Resume, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Resume{}, fmt.Errorf("%w: owner id required", ErrInvalidInput)
	}
	if strings.TrimSpace(title) == "" {
		title = "Untitled resume"
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Get returns a resume owned by the given user.
func (s *Service) Get(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	return s.Repo.GetByID(ctx, ownerID, resumeID)
}

// List returns the owner's resumes, newest first.
func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]Resume, error) {
	return s.Repo.ListByOwner(ctx, ownerID, limit, offset)
}

// Rename updates a resume title.
func (s *Service) Rename(ctx context.Context, ownerID, resumeID, title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title required", ErrInvalidInput)
	}
	return s.Repo.UpdateTitle(ctx, ownerID, resumeID, title)
}

// Delete soft-deletes a resume.
func (s *Service) Delete(ctx context.Context, ownerID, resumeID string) error {
	return s.Repo.SoftDelete(ctx, ownerID, resumeID)
}

// ImportJSON stores an imported profile snapshot as the resume's raw import.
func (s *Service) ImportJSON(ctx context.Context, ownerID, resumeID string, doc json.RawMessage) (Resume, error) {
	if !json.Valid(doc) {
		return Resume{}, fmt.Errorf("%w: payload is not valid JSON", ErrInvalidInput)
	}
	if err := s.Repo.SetImportedJSON(ctx, ownerID, resumeID, doc); err != nil {
		return Resume{}, err
	}
	return s.Repo.GetByID(ctx, ownerID, resumeID)
}

// ImportPDF extracts text from a profile PDF, runs it through the resume
// generator and stores both snapshots: the extracted text as the raw import
// and the generated document as the AI snapshot.
func (s *Service) ImportPDF(ctx context.Context, ownerID, resumeID string, data []byte) (Resume, error) {
	text, err := ExtractProfileText(data)
	if err != nil {
		return Resume{}, err
	}

	rawImport, err := json.Marshal(map[string]string{"source": "pdf", "text": text})
	if err != nil {
		return Resume{}, err
	}
	if err := s.Repo.SetImportedJSON(ctx, ownerID, resumeID, rawImport); err != nil {
		return Resume{}, err
	}

	generated, err := s.LLM.GenerateResume(ctx, text)
	if err != nil {
		return Resume{}, fmt.Errorf("generate resume: %w", err)
	}
	if err := ValidateDocument(generated); err != nil {
		return Resume{}, err
	}
	if err := s.Repo.SetAIGeneratedJSON(ctx, ownerID, resumeID, generated); err != nil {
		return Resume{}, err
	}

	return s.Repo.GetByID(ctx, ownerID, resumeID)
}

// Generate runs the AI writer over the resume's imported snapshot and stores
// the result as the AI snapshot.
func (s *Service) Generate(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	resume, err := s.Repo.GetByID(ctx, ownerID, resumeID)
	if err != nil {
		return Resume{}, err
	}
	if len(resume.OriginalImportedJSON) == 0 {
		return Resume{}, fmt.Errorf("%w: resume has no imported profile to generate from", ErrInvalidInput)
	}

	generated, err := s.LLM.GenerateResume(ctx, string(resume.OriginalImportedJSON))
	if err != nil {
		return Resume{}, fmt.Errorf("generate resume: %w", err)
	}
	if err := ValidateDocument(generated); err != nil {
		return Resume{}, err
	}
	if err := s.Repo.SetAIGeneratedJSON(ctx, ownerID, resumeID, generated); err != nil {
		return Resume{}, err
	}

	resume.AIGeneratedJSON = generated
	resume.UpdatedAt = time.Now().UTC()
	return resume, nil
}
