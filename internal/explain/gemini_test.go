// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/matheqs/pkg/types"
)

func testCompletionRequest() CompletionRequest {
	return CompletionRequest{
		Model:       "gemini-2.5-flash",
		System:      systemPrompt,
		User:        "Explain F = ma",
		Temperature: 0.7,
	}
}

func withBackendServer(t *testing.T, handler http.HandlerFunc) *GeminiBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	orig := geminiAPIURL
	geminiAPIURL = srv.URL
	t.Cleanup(func() { geminiAPIURL = orig })

	return &GeminiBackend{APIKey: "test-key", Client: srv.Client()}
}

func TestGeminiBackendComplete(t *testing.T) {
	var gotBody chatRequest
	var gotAuth string

	backend := withBackendServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := chatResponse{Choices: []chatChoice{
			{Message: chatMessage{Role: "assistant", Content: "the reply text"}},
		}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	got, err := backend.Complete(context.Background(), testCompletionRequest())
	require.NoError(t, err)
	assert.Equal(t, "the reply text", got)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gemini-2.5-flash", gotBody.Model)
	assert.InDelta(t, 0.7, gotBody.Temperature, 1e-9)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, systemPrompt, gotBody.Messages[0].Content)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
}

func TestGeminiBackendHTTPError(t *testing.T) {
	backend := withBackendServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	})

	_, err := backend.Complete(context.Background(), testCompletionRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGeminiBackendNoChoices(t *testing.T) {
	backend := withBackendServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(chatResponse{}))
	})

	_, err := backend.Complete(context.Background(), testCompletionRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestNewGeminiBackend(t *testing.T) {
	cfg := types.ExplainerConfig{APIKey: "k"}
	cfg.Timeout = 30 * time.Second
	cfg.UserAgent = "matheqs/0.1"

	backend := NewGeminiBackend(cfg)
	assert.Equal(t, "k", backend.APIKey)
	assert.Equal(t, "matheqs/0.1", backend.UserAgent)
	require.NotNil(t, backend.Client)
	assert.Equal(t, 30*time.Second, backend.Client.Timeout)

	// Without a timeout the default client is used.
	assert.Nil(t, NewGeminiBackend(types.ExplainerConfig{APIKey: "k"}).Client)
}

func TestGeminiBackendEmptyAPIKey(t *testing.T) {
	backend := &GeminiBackend{}

	_, err := backend.Complete(context.Background(), testCompletionRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
