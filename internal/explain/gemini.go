// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/matheqs/pkg/types"
)

// geminiAPIURL is the Gemini OpenAI-compatible chat completions endpoint.
// Package-level var for test substitution.
var geminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions"

// GeminiBackend calls the Gemini API through its OpenAI-compatible chat
// completions endpoint. It is the production CompletionBackend.
type GeminiBackend struct {
	APIKey    string
	UserAgent string
	Client    *http.Client
}

// NewGeminiBackend builds the production backend from config. A non-zero
// HTTP timeout is applied to the underlying client.
func NewGeminiBackend(cfg types.ExplainerConfig) *GeminiBackend {
	backend := &GeminiBackend{APIKey: cfg.APIKey, UserAgent: cfg.UserAgent}
	if cfg.Timeout > 0 {
		backend.Client = &http.Client{Timeout: cfg.Timeout}
	}
	return backend
}

// chatRequest is the request body for the chat completions endpoint.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// chatMessage is a single message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat completions endpoint.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// chatChoice is one completion choice in the response.
type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Complete sends one two-message conversation and returns the raw reply
// text. It makes no attempt to validate the reply; the parser handles
// malformed content.
func (g *GeminiBackend) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if g.APIKey == "" {
		return "", fmt.Errorf("gemini API key is empty")
	}

	reqBody := chatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.APIKey)
	if g.UserAgent != "" {
		httpReq.Header.Set("User-Agent", g.UserAgent)
	}

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding Gemini response: %w", err)
	}

	if len(cResp.Choices) == 0 {
		return "", fmt.Errorf("Gemini API returned no choices")
	}

	return cResp.Choices[0].Message.Content, nil
}
