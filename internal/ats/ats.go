package ats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resumedeck-backend/internal/llm"
)

// ErrInvalidScore indicates the model returned an unusable score payload.
var ErrInvalidScore = errors.New("invalid score payload")

// Result is an ATS match evaluation of a resume against a job description.
type Result struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// Service scores resumes against job descriptions via the LLM client.
type Service struct {
	LLM llm.Client
}

// Score runs the match evaluation. Scores are clamped to [0, 100].
func (s *Service) Score(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (Result, error) {
	raw, err := s.LLM.ScoreResume(ctx, resumeJSON, jobDescription)
	if err != nil {
		return Result{}, fmt.Errorf("score resume: %w", err)
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidScore, err)
	}
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	return result, nil
}
