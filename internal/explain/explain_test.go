// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/matheqs/pkg/types"
)

// mockBackend returns a canned reply and records the requests it receives.
type mockBackend struct {
	reply    string
	err      error
	requests []CompletionRequest
}

func (m *mockBackend) Complete(_ context.Context, req CompletionRequest) (string, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func TestExplainStructuredReply(t *testing.T) {
	backend := &mockBackend{reply: validPayload}
	svc := NewService(backend, types.ExplainerConfig{})

	req, err := types.NewExplanationRequest("F = ma", "Newton's Second Law", "", types.DifficultyBeginner)
	require.NoError(t, err)

	got, err := svc.Explain(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Newton's Second Law", got.EquationName)
	assert.Equal(t, "F = ma", got.Equation)
	assert.Equal(t, []string{"force", "mass", "acceleration"}, got.KeyConcepts)
}

func TestExplainUnparseableReply(t *testing.T) {
	backend := &mockBackend{reply: "not json at all"}
	svc := NewService(backend, types.ExplainerConfig{})

	req, err := types.NewExplanationRequest("F = ma", "Newton's Second Law", "", types.DifficultyBeginner)
	require.NoError(t, err)

	got, err := svc.Explain(context.Background(), req)
	require.NoError(t, err, "an unparseable reply is never an error")

	assert.Equal(t, "not json at all", got.SimpleExplanation)
	assert.Empty(t, got.KeyConcepts)
	assert.Equal(t, "Newton's Second Law", got.EquationName)
}

func TestExplainBackendFailure(t *testing.T) {
	backend := &mockBackend{err: fmt.Errorf("connection refused")}
	svc := NewService(backend, types.ExplainerConfig{})

	req, err := types.NewExplanationRequest("F = ma", "", "", "")
	require.NoError(t, err)

	_, err = svc.Explain(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBackend))

	// A single attempt per call, no retry.
	assert.Len(t, backend.requests, 1)
}

func TestExplainRejectsInvalidRequest(t *testing.T) {
	backend := &mockBackend{reply: validPayload}
	svc := NewService(backend, types.ExplainerConfig{})

	tests := []struct {
		name    string
		req     types.ExplanationRequest
		wantErr error
	}{
		{
			name:    "empty equation",
			req:     types.ExplanationRequest{Difficulty: types.DifficultyBeginner},
			wantErr: types.ErrEmptyEquation,
		},
		{
			name:    "unknown difficulty",
			req:     types.ExplanationRequest{Equation: "F = ma", Difficulty: "expert"},
			wantErr: types.ErrInvalidDifficulty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Explain(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}

	// No backend call is made for an invalid request.
	assert.Empty(t, backend.requests)
}

func TestExplainCompletionParameters(t *testing.T) {
	backend := &mockBackend{reply: validPayload}
	svc := NewService(backend, types.ExplainerConfig{})

	req, err := types.NewExplanationRequest("F = ma", "", "", "")
	require.NoError(t, err)

	_, err = svc.Explain(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, backend.requests, 1)
	sent := backend.requests[0]
	assert.Equal(t, DefaultModel, sent.Model)
	assert.Equal(t, systemPrompt, sent.System)
	assert.InDelta(t, DefaultTemperature, sent.Temperature, 1e-9)
	assert.Contains(t, sent.User, "F = ma")
}

func TestNewServiceConfigOverrides(t *testing.T) {
	backend := &mockBackend{reply: validPayload}
	svc := NewService(backend, types.ExplainerConfig{Model: "gemini-2.5-pro", Temperature: 0.2})

	req, err := types.NewExplanationRequest("F = ma", "", "", "")
	require.NoError(t, err)

	_, err = svc.Explain(context.Background(), req)
	require.NoError(t, err)

	sent := backend.requests[0]
	assert.Equal(t, "gemini-2.5-pro", sent.Model)
	assert.InDelta(t, 0.2, sent.Temperature, 1e-9)
}

func TestHistory(t *testing.T) {
	backend := &mockBackend{reply: `{
		"year_discovered": 1687,
		"discoverer": "Isaac Newton",
		"historical_context": "Published in the Principia.",
		"impact": "Founded classical mechanics."
	}`}
	svc := NewService(backend, types.ExplainerConfig{})

	got, err := svc.History(context.Background(), "Newton's Second Law")
	require.NoError(t, err)

	assert.Equal(t, 1687, got.YearDiscovered)
	assert.Equal(t, "Newton's Second Law", got.EquationName)
	require.Len(t, backend.requests, 1)
	assert.Contains(t, backend.requests[0].User, "historical")
}

func TestHistoryEmptyName(t *testing.T) {
	svc := NewService(&mockBackend{}, types.ExplainerConfig{})

	_, err := svc.History(context.Background(), "")
	assert.True(t, errors.Is(err, types.ErrEmptyEquation))
}

func TestDerivation(t *testing.T) {
	backend := &mockBackend{reply: `{
		"starting_principles": ["Definition of momentum"],
		"derivation_steps": [{"step_number": 1, "title": "Differentiate", "description": "d", "mathematical_expression": "F = dp/dt", "reasoning": "r"}]
	}`}
	svc := NewService(backend, types.ExplainerConfig{})

	got, err := svc.Derivation(context.Background(), "F = ma")
	require.NoError(t, err)

	require.Len(t, got.DerivationSteps, 1)
	assert.Equal(t, "F = dp/dt", got.DerivationSteps[0].MathematicalExpression)
}

func TestDerivationBackendFailure(t *testing.T) {
	svc := NewService(&mockBackend{err: fmt.Errorf("timeout")}, types.ExplainerConfig{})

	_, err := svc.Derivation(context.Background(), "F = ma")
	assert.True(t, errors.Is(err, ErrBackend))
}

func TestAvailableEquations(t *testing.T) {
	got := AvailableEquations()

	require.NotEmpty(t, got)
	assert.Contains(t, got, "Newton's Second Law")
	assert.Contains(t, got, "Einstein's Mass-Energy Equivalence")

	// Callers get a copy, not the backing array.
	got[0] = "mutated"
	assert.Equal(t, "Newton's Second Law", AvailableEquations()[0])
}
