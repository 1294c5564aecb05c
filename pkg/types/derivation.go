// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DerivationStep is a single step in an equation derivation.
type DerivationStep struct {
	// StepNumber is the sequential position of the step, starting at 1.
	StepNumber int `json:"step_number" yaml:"step_number"`

	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	// MathematicalExpression is the expression or operation for this step.
	MathematicalExpression string `json:"mathematical_expression" yaml:"mathematical_expression"`

	// Reasoning justifies the step.
	Reasoning string `json:"reasoning" yaml:"reasoning"`

	FromEquation string `json:"from_equation,omitempty" yaml:"from_equation,omitempty"`
	ToEquation   string `json:"to_equation,omitempty" yaml:"to_equation,omitempty"`
}

// DerivationModel captures the step-by-step derivation of a physics equation.
// EquationName and Equation are overwritten from the request after parsing.
type DerivationModel struct {
	EquationName string `json:"equation_name" yaml:"equation_name"`
	Equation     string `json:"equation" yaml:"equation"`

	// StartingPrinciples lists the laws or axioms the derivation starts from.
	StartingPrinciples []string `json:"starting_principles" yaml:"starting_principles"`

	// DerivationSteps is the ordered derivation.
	DerivationSteps []DerivationStep `json:"derivation_steps" yaml:"derivation_steps"`

	AlternativeDerivations    []string `json:"alternative_derivations,omitempty" yaml:"alternative_derivations,omitempty"`
	SpecialCases              []string `json:"special_cases,omitempty" yaml:"special_cases,omitempty"`
	ValidityConditions        []string `json:"validity_conditions,omitempty" yaml:"validity_conditions,omitempty"`
	Limitations               []string `json:"limitations,omitempty" yaml:"limitations,omitempty"`
	ExtensionsGeneralizations []string `json:"extensions_generalizations,omitempty" yaml:"extensions_generalizations,omitempty"`
	MathematicalPrerequisites []string `json:"mathematical_prerequisites,omitempty" yaml:"mathematical_prerequisites,omitempty"`
	RelatedEquations          []string `json:"related_equations,omitempty" yaml:"related_equations,omitempty"`
}
