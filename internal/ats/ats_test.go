package ats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type scriptedLLM struct {
	scoreJSON json.RawMessage
	scoreErr  error
}

func (s scriptedLLM) GenerateResume(ctx context.Context, profileText string) (json.RawMessage, error) {
	return nil, errors.New("not used")
}

func (s scriptedLLM) OptimizeResume(ctx context.Context, resumeJSON json.RawMessage, jobTitle, companyName, jobDescription string) (json.RawMessage, error) {
	return nil, errors.New("not used")
}

func (s scriptedLLM) ScoreResume(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (json.RawMessage, error) {
	return s.scoreJSON, s.scoreErr
}

func (s scriptedLLM) GeneratePitchDeck(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (json.RawMessage, error) {
	return nil, errors.New("not used")
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		scoreJSON string
		want      float64
	}{
		{"plain score", `{"score":73,"matched_keywords":["go"],"missing_keywords":[]}`, 73},
		{"clamps above 100", `{"score":250}`, 100},
		{"clamps below 0", `{"score":-4}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &Service{LLM: scriptedLLM{scoreJSON: json.RawMessage(tt.scoreJSON)}}
			result, err := svc.Score(context.Background(), json.RawMessage(`{}`), "jd")
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if result.Score != tt.want {
				t.Fatalf("Score = %v, want %v", result.Score, tt.want)
			}
		})
	}
}

func TestScoreMalformedPayload(t *testing.T) {
	svc := &Service{LLM: scriptedLLM{scoreJSON: json.RawMessage(`not json`)}}
	_, err := svc.Score(context.Background(), json.RawMessage(`{}`), "jd")
	if !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("error = %v, want ErrInvalidScore", err)
	}
}
