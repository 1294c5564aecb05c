// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explain

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/matheqs/pkg/types"
)

// explanationPromptTmpl is the prompt sent to the completion API for one
// explanation request. It enumerates the exact response fields so the model
// is steered toward a parseable JSON reply.
var explanationPromptTmpl = template.Must(template.New("explanation").Parse(`Explain the following physics equation in detail:

Equation Name: {{.Name}}
Equation: {{.Equation}}{{if .Context}}
Context: {{.Context}}{{end}}

{{.Guidance}}

Provide a comprehensive explanation with:
- simple_explanation: a beginner-friendly explanation
- detailed_explanation: a more technical explanation with deeper insights
- real_world_example: practical applications of this equation
- key_concepts: a list of important concepts related to this equation
- introduction (optional): an object with overview, significance, context, and key_variables (a mapping of variable symbols to their meanings)

Respond with a single JSON object containing exactly those fields. Do not include any text outside the JSON object.

Example response:
{"simple_explanation": "Force equals mass times acceleration.", "detailed_explanation": "The net force on a body is proportional to ...", "real_world_example": "Braking distance of a car ...", "key_concepts": ["force", "mass", "acceleration"]}
`))

// historyPromptTmpl requests the historical record of an equation.
var historyPromptTmpl = template.Must(template.New("history").Parse(`Describe the historical development of the following physics equation:

Equation: {{.Name}}

Provide:
- year_discovered: the year the equation was discovered or developed (integer)
- discoverer: the scientist(s) who discovered or developed it
- historical_context: the historical and scientific context of the discovery
- impact: the impact on physics and science
- earlier_related_equations (optional): earlier equations or concepts that led to it
- key_developments (optional): a timeline of key developments and refinements
- original_publication (optional): journal and paper title of the original publication
- country_of_origin (optional): where the equation was developed
- competing_theories (optional): competing theories from the same period
- applications (optional): a list of objects with title and description for modern applications

Respond with a single JSON object containing those fields. Do not include any text outside the JSON object.
`))

// derivationPromptTmpl requests the step-by-step derivation of an equation.
var derivationPromptTmpl = template.Must(template.New("derivation").Parse(`Derive the following physics equation step by step:

Equation: {{.Name}}

Provide:
- starting_principles: the fundamental principles, laws, or axioms the derivation starts from
- derivation_steps: an ordered list of steps, each with step_number, title, description, mathematical_expression, reasoning, and optional from_equation and to_equation
- special_cases (optional): simplified versions of the equation
- validity_conditions (optional): conditions under which the equation holds
- limitations (optional): limitations or constraints
- mathematical_prerequisites (optional): mathematics needed to follow the derivation
- related_equations (optional): equations derived from this one

Respond with a single JSON object containing those fields. Do not include any text outside the JSON object.
`))

// difficultyGuidance maps each difficulty level to the audience guidance
// embedded in the prompt.
var difficultyGuidance = map[types.Difficulty]string{
	types.DifficultyBeginner:     "Target a beginner audience: use everyday language and simple analogies, and assume no physics background or calculus.",
	types.DifficultyIntermediate: "Target an intermediate audience: assume undergraduate-level physics and use standard terminology, with basic calculus where it helps.",
	types.DifficultyAdvanced:     "Target an advanced audience: assume graduate-level fluency, and discuss the formal structure, limiting cases, and connections to deeper theory.",
}

// guidanceFor returns the guidance string for level, falling back to the
// intermediate guidance for anything outside the closed set.
func guidanceFor(level types.Difficulty) string {
	if g, ok := difficultyGuidance[level]; ok {
		return g
	}
	return difficultyGuidance[types.DifficultyIntermediate]
}

// promptData is the template input for the prompt templates.
type promptData struct {
	Name     string
	Equation string
	Context  string
	Guidance string
}

// buildExplanationPrompt renders the explanation prompt for a validated
// request. Pure: same request, same prompt.
func buildExplanationPrompt(req types.ExplanationRequest) (string, error) {
	name := req.EquationName
	if name == "" {
		name = req.Equation
	}
	return renderPrompt(explanationPromptTmpl, promptData{
		Name:     name,
		Equation: req.Equation,
		Context:  req.Context,
		Guidance: guidanceFor(req.Difficulty),
	})
}

func buildHistoryPrompt(name string) (string, error) {
	return renderPrompt(historyPromptTmpl, promptData{Name: name})
}

func buildDerivationPrompt(name string) (string, error) {
	return renderPrompt(derivationPromptTmpl, promptData{Name: name})
}

func renderPrompt(tmpl *template.Template, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
