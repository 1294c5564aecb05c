// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for matheqs: explanation
// requests, structured explanation records, and the richer history and
// derivation records.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects the audience level for an explanation.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ErrEmptyEquation is returned when a request names no equation.
var ErrEmptyEquation = errors.New("equation must not be empty")

// ErrInvalidDifficulty is returned for a difficulty outside the closed set.
var ErrInvalidDifficulty = errors.New("difficulty must be beginner, intermediate, or advanced")

// ParseDifficulty converts a user-supplied string into a Difficulty.
// The empty string maps to the default, intermediate. Any other value
// outside the closed set is rejected.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case "":
		return DifficultyIntermediate, nil
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidDifficulty, s)
	}
}

// ExplanationRequest describes one equation explanation to produce.
// Construct with NewExplanationRequest; a valid request always carries a
// non-empty equation and a difficulty from the closed set.
type ExplanationRequest struct {
	// Equation is the equation expression or name as given by the caller.
	Equation string `json:"equation" yaml:"equation"`

	// EquationName is an optional display name, distinct from the raw
	// equation string.
	EquationName string `json:"equation_name,omitempty" yaml:"equation_name,omitempty"`

	// Context is an optional free-form domain hint (e.g. "classical mechanics").
	Context string `json:"context,omitempty" yaml:"context,omitempty"`

	// Difficulty is the audience level; defaults to intermediate.
	Difficulty Difficulty `json:"difficulty_level" yaml:"difficulty_level"`
}

// NewExplanationRequest builds a validated ExplanationRequest. An empty
// difficulty defaults to intermediate; an empty equation or an unrecognized
// difficulty is rejected.
func NewExplanationRequest(equation, name, context string, difficulty Difficulty) (ExplanationRequest, error) {
	if difficulty == "" {
		difficulty = DifficultyIntermediate
	}
	req := ExplanationRequest{
		Equation:     equation,
		EquationName: name,
		Context:      context,
		Difficulty:   difficulty,
	}
	if err := req.Validate(); err != nil {
		return ExplanationRequest{}, err
	}
	return req, nil
}

// Validate checks the request invariants: non-empty equation and a
// difficulty from the closed set.
func (r ExplanationRequest) Validate() error {
	if strings.TrimSpace(r.Equation) == "" {
		return ErrEmptyEquation
	}
	switch r.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidDifficulty, r.Difficulty)
	}
}

// IntroductionModel is the optional nested introduction to an equation.
type IntroductionModel struct {
	EquationName string `json:"equation_name" yaml:"equation_name"`
	Equation     string `json:"equation" yaml:"equation"`

	// Overview is a brief description of what the equation describes.
	Overview string `json:"overview" yaml:"overview"`

	// Significance explains why the equation matters in physics.
	Significance string `json:"significance" yaml:"significance"`

	// Context names the field of physics and the broader setting.
	Context string `json:"context" yaml:"context"`

	// KeyVariables maps variable symbols to their meanings.
	KeyVariables map[string]string `json:"key_variables,omitempty" yaml:"key_variables,omitempty"`
}

// EquationExplanation is the structured explanation of one equation.
// EquationName and Equation always come from the originating request, never
// from the model's reply; the explainer overwrites them after parsing.
type EquationExplanation struct {
	EquationName string `json:"equation_name" yaml:"equation_name"`
	Equation     string `json:"equation" yaml:"equation"`

	// SimpleExplanation is a beginner-friendly explanation.
	SimpleExplanation string `json:"simple_explanation" yaml:"simple_explanation"`

	// DetailedExplanation is a more technical explanation with deeper insight.
	DetailedExplanation string `json:"detailed_explanation" yaml:"detailed_explanation"`

	// RealWorldExample describes the equation in action.
	RealWorldExample string `json:"real_world_example" yaml:"real_world_example"`

	// KeyConcepts lists related concepts in the order the model gave them.
	// May be empty, never nil after parsing.
	KeyConcepts []string `json:"key_concepts" yaml:"key_concepts"`

	// Introduction is present only when the model supplied one.
	Introduction *IntroductionModel `json:"introduction,omitempty" yaml:"introduction,omitempty"`
}
