// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package explain produces structured explanations of physics equations by
// prompting an LLM completion backend and recovering typed records from its
// raw replies. Parsing never fails; only an unreachable backend surfaces an
// error to the caller.
package explain

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/matheqs/pkg/types"
)

const (
	// systemPrompt is the fixed system message for every completion call.
	systemPrompt = "You are an expert physics teacher. Explain equations clearly and accurately."

	// DefaultModel is the completion model used when the config names none.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTemperature favors some creative variance in explanations.
	DefaultTemperature = 0.7
)

// ErrBackend wraps transport-level failures of the completion backend.
// Callers can distinguish it from request validation errors with errors.Is.
var ErrBackend = errors.New("completion backend request failed")

// CompletionRequest is one two-message conversation sent to the backend.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	Temperature float64
}

// CompletionBackend abstracts the LLM completion API so tests can supply a
// mock. The returned text is untrusted: it may or may not contain valid JSON.
type CompletionBackend interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Service orchestrates prompt construction, the completion call, and
// response parsing. It holds no mutable state; concurrent callers do not
// contend.
type Service struct {
	backend     CompletionBackend
	model       string
	temperature float64
}

// NewService builds a Service around a ready-to-use backend. Zero config
// fields fall back to the package defaults.
func NewService(backend CompletionBackend, cfg types.ExplainerConfig) *Service {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	return &Service{
		backend:     backend,
		model:       model,
		temperature: temperature,
	}
}

// Explain produces a structured explanation for one validated request. It
// issues exactly one backend call, with no retry; an unparseable reply is
// not an error, the parser's fallback fills the record instead.
func (s *Service) Explain(ctx context.Context, req types.ExplanationRequest) (types.EquationExplanation, error) {
	if err := req.Validate(); err != nil {
		return types.EquationExplanation{}, err
	}

	prompt, err := buildExplanationPrompt(req)
	if err != nil {
		return types.EquationExplanation{}, fmt.Errorf("building prompt: %w", err)
	}

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return types.EquationExplanation{}, err
	}

	return parseExplanation(raw, req), nil
}

// History produces the historical record for a named equation.
func (s *Service) History(ctx context.Context, name string) (types.HistoryModel, error) {
	if name == "" {
		return types.HistoryModel{}, types.ErrEmptyEquation
	}

	prompt, err := buildHistoryPrompt(name)
	if err != nil {
		return types.HistoryModel{}, fmt.Errorf("building prompt: %w", err)
	}

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return types.HistoryModel{}, err
	}

	return parseHistory(raw, name), nil
}

// Derivation produces the step-by-step derivation for a named equation.
func (s *Service) Derivation(ctx context.Context, name string) (types.DerivationModel, error) {
	if name == "" {
		return types.DerivationModel{}, types.ErrEmptyEquation
	}

	prompt, err := buildDerivationPrompt(name)
	if err != nil {
		return types.DerivationModel{}, fmt.Errorf("building prompt: %w", err)
	}

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return types.DerivationModel{}, err
	}

	return parseDerivation(raw, name), nil
}

// complete issues the single backend call for one prompt.
func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	raw, err := s.backend.Complete(ctx, CompletionRequest{
		Model:       s.model,
		System:      systemPrompt,
		User:        prompt,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return raw, nil
}

// availableEquations is the fixed example catalogue shown by the CLI.
var availableEquations = []string{
	"Newton's Second Law",
	"Einstein's Mass-Energy Equivalence",
	"Schrödinger's Equation",
	"Wave Equation",
	"Heat Conduction Equation",
	"Maxwell's Equations",
	"Ohm's Law",
	"Ideal Gas Law",
	"Universal Law of Gravitation",
	"Coulomb's Law",
}

// AvailableEquations returns the ordered example equation catalogue.
func AvailableEquations() []string {
	out := make([]string, len(availableEquations))
	copy(out, availableEquations)
	return out
}
