// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ApplicationModel describes one modern application of an equation.
type ApplicationModel struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// HistoryModel captures the historical development of a physics equation.
// EquationName and Equation are overwritten from the request after parsing,
// same rule as EquationExplanation.
type HistoryModel struct {
	EquationName string `json:"equation_name" yaml:"equation_name"`
	Equation     string `json:"equation" yaml:"equation"`

	// YearDiscovered is the year the equation was discovered or developed.
	YearDiscovered int `json:"year_discovered" yaml:"year_discovered"`

	// Discoverer names the scientist(s) who developed the equation.
	Discoverer string `json:"discoverer" yaml:"discoverer"`

	// HistoricalContext describes the scientific setting of the discovery.
	HistoricalContext string `json:"historical_context" yaml:"historical_context"`

	// Impact summarizes the effect on physics and science.
	Impact string `json:"impact" yaml:"impact"`

	EarlierRelatedEquations []string           `json:"earlier_related_equations,omitempty" yaml:"earlier_related_equations,omitempty"`
	KeyDevelopments         []string           `json:"key_developments,omitempty" yaml:"key_developments,omitempty"`
	OriginalPublication     string             `json:"original_publication,omitempty" yaml:"original_publication,omitempty"`
	CountryOfOrigin         string             `json:"country_of_origin,omitempty" yaml:"country_of_origin,omitempty"`
	CompetingTheories       []string           `json:"competing_theories,omitempty" yaml:"competing_theories,omitempty"`
	Applications            []ApplicationModel `json:"applications,omitempty" yaml:"applications,omitempty"`
}
