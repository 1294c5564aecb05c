// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explain

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pdiddy/matheqs/pkg/types"
)

const (
	// fallbackEquationName labels results when the request carried no name.
	fallbackEquationName = "Physics Equation"

	// fallbackExample fills real_world_example when the reply could not be
	// decoded.
	fallbackExample = "Example not available"

	// fallbackText fills text fields of history/derivation fallback records.
	fallbackText = "Not available"
)

// fencedBlockPattern matches a Markdown code fence, with or without a
// language tag, capturing the enclosed text.
var fencedBlockPattern = regexp.MustCompile("(?s)```[a-zA-Z]*[ \t]*\n?(.*?)```")

// extractCandidate returns the contents of the first fenced block in raw,
// or the whole text (trimmed) when no non-empty block is present.
func extractCandidate(raw string) string {
	if m := fencedBlockPattern.FindStringSubmatch(raw); m != nil {
		if inner := strings.TrimSpace(m[1]); inner != "" {
			return inner
		}
	}
	return strings.TrimSpace(raw)
}

// parseExplanation recovers a structured explanation from the model's raw
// reply. It never fails: when the candidate payload does not decode to an
// object carrying all required fields, the raw text itself becomes the
// explanation. In every outcome EquationName and Equation are overwritten
// from the request; the model's opinion of those two fields is discarded.
func parseExplanation(raw string, req types.ExplanationRequest) types.EquationExplanation {
	var out types.EquationExplanation

	var payload types.EquationExplanation
	err := json.Unmarshal([]byte(extractCandidate(raw)), &payload)
	switch {
	case err == nil && payload.SimpleExplanation != "" &&
		payload.DetailedExplanation != "" && payload.RealWorldExample != "":
		out = payload
		if out.KeyConcepts == nil {
			out.KeyConcepts = []string{}
		}
	default:
		out = types.EquationExplanation{
			SimpleExplanation:   raw,
			DetailedExplanation: raw,
			RealWorldExample:    fallbackExample,
			KeyConcepts:         []string{},
		}
	}

	out.EquationName = req.EquationName
	if out.EquationName == "" {
		out.EquationName = fallbackEquationName
	}
	out.Equation = req.Equation
	return out
}

// parseHistory recovers a HistoryModel from the model's raw reply, with the
// same no-fail discipline as parseExplanation. The fallback record carries
// the raw text as historical context.
func parseHistory(raw, name string) types.HistoryModel {
	var h types.HistoryModel
	err := json.Unmarshal([]byte(extractCandidate(raw)), &h)
	if err != nil || h.Discoverer == "" || h.HistoricalContext == "" || h.Impact == "" {
		h = types.HistoryModel{
			Discoverer:        "Unknown",
			HistoricalContext: raw,
			Impact:            fallbackText,
		}
	}
	h.EquationName = name
	h.Equation = name
	return h
}

// parseDerivation recovers a DerivationModel from the model's raw reply.
// The fallback record folds the raw text into a single synthesized step.
func parseDerivation(raw, name string) types.DerivationModel {
	var d types.DerivationModel
	err := json.Unmarshal([]byte(extractCandidate(raw)), &d)
	if err != nil || len(d.StartingPrinciples) == 0 || len(d.DerivationSteps) == 0 {
		d = types.DerivationModel{
			StartingPrinciples: []string{},
			DerivationSteps: []types.DerivationStep{{
				StepNumber:             1,
				Title:                  "Derivation",
				Description:            raw,
				MathematicalExpression: name,
				Reasoning:              fallbackText,
			}},
		}
	}
	d.EquationName = name
	d.Equation = name
	return d
}
