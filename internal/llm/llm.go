package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for resume writing and scoring.
type Client interface {
	// GenerateResume normalizes imported profile text into a resume document.
	GenerateResume(ctx context.Context, profileText string) (json.RawMessage, error)
	// OptimizeResume rewrites a resume document against a job description.
	OptimizeResume(ctx context.Context, resumeJSON json.RawMessage, jobTitle, companyName, jobDescription string) (json.RawMessage, error)
	// ScoreResume evaluates ATS match between a resume and a job description.
	ScoreResume(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (json.RawMessage, error)
	// GeneratePitchDeck produces cover-letter slides for a resume.
	GeneratePitchDeck(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (json.RawMessage, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

func (PlaceholderClient) GenerateResume(ctx context.Context, profileText string) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}

func (PlaceholderClient) OptimizeResume(ctx context.Context, resumeJSON json.RawMessage, jobTitle, companyName, jobDescription string) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}

func (PlaceholderClient) ScoreResume(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}

func (PlaceholderClient) GeneratePitchDeck(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}
