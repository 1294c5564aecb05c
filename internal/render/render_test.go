// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/matheqs/pkg/types"
)

func sampleExplanation() types.EquationExplanation {
	return types.EquationExplanation{
		EquationName:        "Newton's Second Law",
		Equation:            "F = ma",
		SimpleExplanation:   "Force equals mass times acceleration.",
		DetailedExplanation: "The net force on a body equals its mass times its acceleration.",
		RealWorldExample:    "A car braking on a highway.",
		KeyConcepts:         []string{"force", "mass", "acceleration"},
	}
}

func TestExplanationDocument(t *testing.T) {
	doc := ExplanationDocument(sampleExplanation())

	assert.Equal(t, "Newton's Second Law", doc.Title)
	assert.Equal(t, "F = ma", doc.Equation)
	require.Len(t, doc.Sections, 4)
	assert.Equal(t, "Simple Explanation", doc.Sections[0].Heading)
	assert.Equal(t, "Key Concepts", doc.Sections[3].Heading)
	assert.Equal(t, "force, mass, acceleration", doc.Sections[3].Body)
}

func TestHistoryDocument(t *testing.T) {
	doc := HistoryDocument(types.HistoryModel{
		EquationName:      "Newton's Second Law",
		Equation:          "F = ma",
		YearDiscovered:    1687,
		Discoverer:        "Isaac Newton",
		HistoricalContext: "Published in the Principia.",
		Impact:            "Founded classical mechanics.",
		Applications: []types.ApplicationModel{
			{Title: "Rocketry", Description: "Thrust calculations."},
		},
	})

	assert.Equal(t, "History: Newton's Second Law", doc.Title)
	require.NotEmpty(t, doc.Sections)
	assert.Equal(t, "Discovered", doc.Sections[0].Heading)
	assert.Equal(t, "1687 by Isaac Newton", doc.Sections[0].Body)

	last := doc.Sections[len(doc.Sections)-1]
	assert.Equal(t, "Modern Applications", last.Heading)
	assert.Contains(t, last.Body, "Rocketry")
}

func TestDerivationDocument(t *testing.T) {
	doc := DerivationDocument(types.DerivationModel{
		EquationName:       "Newton's Second Law",
		Equation:           "F = ma",
		StartingPrinciples: []string{"Definition of momentum"},
		DerivationSteps: []types.DerivationStep{
			{StepNumber: 1, Title: "Differentiate", Description: "Differentiate momentum.", MathematicalExpression: "F = dp/dt", Reasoning: "Newton's formulation."},
		},
		Limitations: []string{"Non-relativistic speeds"},
	})

	assert.Equal(t, "Derivation: Newton's Second Law", doc.Title)
	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "Starting Principles", doc.Sections[0].Heading)
	assert.Equal(t, "Step 1: Differentiate", doc.Sections[1].Heading)
	assert.Contains(t, doc.Sections[1].Body, "F = dp/dt")
	assert.Equal(t, "Limitations", doc.Sections[2].Heading)
}

func TestMarkdown(t *testing.T) {
	md := Markdown(ExplanationDocument(sampleExplanation()))

	assert.True(t, strings.HasPrefix(md, "# Newton's Second Law\n"))
	assert.Contains(t, md, "**Equation:** `F = ma`")
	assert.Contains(t, md, "## Simple Explanation")
	assert.Contains(t, md, "Force equals mass times acceleration.")
}

func TestYAMLRoundTrip(t *testing.T) {
	doc := ExplanationDocument(sampleExplanation())

	out, err := YAML(doc)
	require.NoError(t, err)

	var got Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, doc, got)
}

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	PrintDocument(&buf, ExplanationDocument(sampleExplanation()))

	out := buf.String()
	assert.Contains(t, out, "Equation\n--------\n")
	assert.Contains(t, out, "Newton's Second Law")
	assert.Contains(t, out, "Simple Explanation")
	assert.Contains(t, out, "force, mass, acceleration")
}

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer
	PrintHeader(&buf, "Equation History", "The historical background.")

	out := buf.String()
	assert.Contains(t, out, "Equation History\n================\n")
	assert.Contains(t, out, "The historical background.")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.md")

	saved, err := Save(path, "# Title\n")
	require.NoError(t, err)
	assert.Equal(t, path, saved)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", string(data))
}

func TestEnsureExtension(t *testing.T) {
	assert.Equal(t, "out.md", EnsureExtension("out", ".md"))
	assert.Equal(t, "out.md", EnsureExtension("out.md", ".md"))
	assert.Equal(t, "out.yaml", EnsureExtension("out.yaml", ".md"))
}
