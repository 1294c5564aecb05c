// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats explanation records for the terminal and for
// Markdown or YAML files.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/matheqs/pkg/types"
)

// Section is one labeled block of a rendered document.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
}

// Document is a renderable view of an explanation: a title, the equation,
// and ordered labeled sections. The same Document feeds the console,
// Markdown, and YAML outputs.
type Document struct {
	Title    string    `json:"title" yaml:"title"`
	Equation string    `json:"equation" yaml:"equation"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// ExplanationDocument builds the standard four-section view of an
// explanation. Key concepts are joined with a comma delimiter for display.
func ExplanationDocument(e types.EquationExplanation) Document {
	return Document{
		Title:    e.EquationName,
		Equation: e.Equation,
		Sections: []Section{
			{Heading: "Simple Explanation", Body: e.SimpleExplanation},
			{Heading: "Detailed Explanation", Body: e.DetailedExplanation},
			{Heading: "Real-World Example", Body: e.RealWorldExample},
			{Heading: "Key Concepts", Body: strings.Join(e.KeyConcepts, ", ")},
		},
	}
}

// HistoryDocument builds the labeled view of a history record.
func HistoryDocument(h types.HistoryModel) Document {
	doc := Document{
		Title:    "History: " + h.EquationName,
		Equation: h.Equation,
	}
	if h.YearDiscovered > 0 {
		doc.Sections = append(doc.Sections, Section{
			Heading: "Discovered",
			Body:    fmt.Sprintf("%d by %s", h.YearDiscovered, h.Discoverer),
		})
	} else {
		doc.Sections = append(doc.Sections, Section{Heading: "Discovered", Body: h.Discoverer})
	}
	doc.Sections = append(doc.Sections,
		Section{Heading: "Historical Context", Body: h.HistoricalContext},
		Section{Heading: "Impact", Body: h.Impact},
	)
	if len(h.KeyDevelopments) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Heading: "Key Developments",
			Body:    bulletList(h.KeyDevelopments),
		})
	}
	if len(h.Applications) > 0 {
		var b strings.Builder
		for _, a := range h.Applications {
			fmt.Fprintf(&b, "- %s: %s\n", a.Title, a.Description)
		}
		doc.Sections = append(doc.Sections, Section{
			Heading: "Modern Applications",
			Body:    strings.TrimRight(b.String(), "\n"),
		})
	}
	return doc
}

// DerivationDocument builds the labeled view of a derivation record.
func DerivationDocument(d types.DerivationModel) Document {
	doc := Document{
		Title:    "Derivation: " + d.EquationName,
		Equation: d.Equation,
	}
	if len(d.StartingPrinciples) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Heading: "Starting Principles",
			Body:    bulletList(d.StartingPrinciples),
		})
	}
	for _, step := range d.DerivationSteps {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n\n", step.Description)
		if step.MathematicalExpression != "" {
			fmt.Fprintf(&b, "    %s\n\n", step.MathematicalExpression)
		}
		if step.Reasoning != "" {
			fmt.Fprintf(&b, "Reasoning: %s", step.Reasoning)
		}
		doc.Sections = append(doc.Sections, Section{
			Heading: fmt.Sprintf("Step %d: %s", step.StepNumber, step.Title),
			Body:    strings.TrimRight(b.String(), "\n"),
		})
	}
	if len(d.Limitations) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Heading: "Limitations",
			Body:    bulletList(d.Limitations),
		})
	}
	return doc
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return strings.TrimRight(b.String(), "\n")
}

// PrintHeader writes a title banner with an optional subtitle.
func PrintHeader(w io.Writer, title, subtitle string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", utf8.RuneCountInString(title)))
	if subtitle != "" {
		fmt.Fprintln(w, subtitle)
	}
	fmt.Fprintln(w)
}

// PrintSection writes one labeled section to the terminal.
func PrintSection(w io.Writer, heading, body string) {
	fmt.Fprintln(w, heading)
	fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(heading)))
	fmt.Fprintln(w, body)
	fmt.Fprintln(w)
}

// PrintDocument writes the equation banner and every section of doc.
func PrintDocument(w io.Writer, doc Document) {
	PrintSection(w, "Equation", fmt.Sprintf("%s\n%s", doc.Title, doc.Equation))
	for _, sec := range doc.Sections {
		PrintSection(w, sec.Heading, sec.Body)
	}
}

// PrintList writes a titled bullet list.
func PrintList(w io.Writer, title string, items []string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(title)))
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

// Markdown renders doc as a standalone Markdown document.
func Markdown(doc Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "**Equation:** `%s`\n\n", doc.Equation)
	for _, sec := range doc.Sections {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", sec.Heading, sec.Body)
	}
	return b.String()
}

// YAML renders doc as a YAML document.
func YAML(doc Document) (string, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshaling document: %w", err)
	}
	return string(data), nil
}

// Save writes content to path, creating parent directories as needed, and
// returns the path written.
func Save(path, content string) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// EnsureExtension appends ext to path when it has no extension yet.
func EnsureExtension(path, ext string) string {
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}
