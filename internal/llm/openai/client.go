package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"resumedeck-backend/internal/llm"
	"resumedeck-backend/internal/shared/telemetry"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    *float32        `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (c *Client) GenerateResume(ctx context.Context, profileText string) (json.RawMessage, error) {
	return c.completeJSON(ctx, "generate_resume", llm.GenerateResumePrompt, profileText, true)
}

func (c *Client) OptimizeResume(ctx context.Context, resumeJSON json.RawMessage, jobTitle, companyName, jobDescription string) (json.RawMessage, error) {
	user := fmt.Sprintf("Resume:\n%s\n\nJob title: %s\nCompany: %s\nJob description:\n%s",
		resumeJSON, jobTitle, companyName, jobDescription)
	return c.completeJSON(ctx, "optimize_resume", llm.OptimizeResumePrompt, user, true)
}

func (c *Client) ScoreResume(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (json.RawMessage, error) {
	user := fmt.Sprintf("Resume:\n%s\n\nJob description:\n%s", resumeJSON, jobDescription)
	return c.completeJSON(ctx, "score_resume", llm.ScoreResumePrompt, user, true)
}

func (c *Client) GeneratePitchDeck(ctx context.Context, resumeJSON json.RawMessage, jobDescription string) (json.RawMessage, error) {
	user := fmt.Sprintf("Resume:\n%s\n\nJob description:\n%s", resumeJSON, jobDescription)
	// json_object mode rejects top-level arrays, so the deck call goes without it.
	return c.completeJSON(ctx, "pitch_deck", llm.PitchDeckPrompt, user, false)
}

func (c *Client) completeJSON(ctx context.Context, op, system, user string, jsonMode bool) (json.RawMessage, error) {
	messages := []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}

	reqBody := chatRequest{
		Model:    c.model,
		Messages: messages,
	}
	if jsonMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai %s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai %s: read response: %w", op, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("openai %s: decode response: %w", op, err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("openai %s: %s (%s)", op, parsed.Error.Message, parsed.Error.Type)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai %s: status %d", op, resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("openai %s: empty choices", op)
	}

	if parsed.Usage != nil {
		telemetry.Info("llm.usage", map[string]any{
			"op":                op,
			"model":             parsed.Model,
			"prompt_tokens":     parsed.Usage.PromptTokens,
			"completion_tokens": parsed.Usage.CompletionTokens,
			"total_tokens":      parsed.Usage.TotalTokens,
		})
	}

	raw := stripCodeFence(parsed.Choices[0].Message.Content)
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("openai %s: invalid JSON in response", op)
	}
	return json.RawMessage(raw), nil
}

// stripCodeFence removes a markdown ```json fence some models wrap replies in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

var _ llm.Client = (*Client)(nil)
