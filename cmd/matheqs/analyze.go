// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/matheqs/internal/explain"
	"github.com/pdiddy/matheqs/internal/render"
	"github.com/pdiddy/matheqs/pkg/types"
)

// analyzeContexts maps each analysis section to the context hint sent with
// its explanation request.
var analyzeContexts = []struct {
	heading string
	context string
}{
	{"Introduction", "Provide a comprehensive introduction to this equation, including its overview, significance, and the field of physics it belongs to."},
	{"History", "Provide the historical development of this equation, including when it was discovered, who discovered it, and how it evolved."},
	{"Derivation", "Provide a detailed mathematical derivation of this equation, including the starting principles, key assumptions, step-by-step derivation, and limitations."},
	{"Applications", "Provide modern applications and practical uses of this equation in technology, engineering, and science."},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [equation name]",
	Short: "Comprehensive four-section analysis of an equation",
	Long: `Analyze produces a complete analysis of a physics equation in four
sections: Introduction, History, Derivation, and Applications. Each section
comes from its own explanation request; a section that fails produces a
warning rather than aborting the run.

With --md the analysis is saved as a document in the chosen format
(markdown or yaml).`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	difficulty, _ := cmd.Flags().GetString("difficulty")
	mdPath, _ := cmd.Flags().GetString("md")
	format, _ := cmd.Flags().GetString("format")

	level, err := types.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}

	name := args[0]
	render.PrintHeader(os.Stdout, "Comprehensive Equation Analysis", "A complete analysis of a physics equation.")
	fmt.Printf("Equation: %s\n\n", name)

	svc := newService()
	doc := render.Document{Title: name, Equation: name}

	for _, sec := range analyzeContexts {
		fmt.Printf("Generating %s...\n", sec.heading)

		body, err := analyzeSection(cmd, svc, name, sec.context, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not generate %s: %v\n", sec.heading, err)
			continue
		}
		doc.Sections = append(doc.Sections, render.Section{Heading: sec.heading, Body: body})
	}

	if mdPath == "" {
		fmt.Println()
		for _, sec := range doc.Sections {
			render.PrintSection(os.Stdout, sec.Heading, sec.Body)
		}
		return nil
	}

	var content, path string
	switch types.OutputFormat(format) {
	case types.OutputMarkdown, "":
		content = render.Markdown(doc)
		path = render.EnsureExtension(mdPath, ".md")
	case types.OutputYAML:
		content, err = render.YAML(doc)
		if err != nil {
			return err
		}
		path = render.EnsureExtension(mdPath, ".yaml")
	default:
		return fmt.Errorf("unsupported format %q: use markdown or yaml", format)
	}

	saved, err := render.Save(path, content)
	if err != nil {
		return err
	}
	fmt.Printf("\nComplete analysis saved to: %s\n", saved)
	return nil
}

// analyzeSection runs one explanation request with a section-specific
// context hint and folds the reply into a single section body.
func analyzeSection(cmd *cobra.Command, svc *explain.Service, name, contextHint string, level types.Difficulty) (string, error) {
	req, err := types.NewExplanationRequest(name, name, contextHint, level)
	if err != nil {
		return "", err
	}

	explanation, err := svc.Explain(cmd.Context(), req)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s\n\n%s", explanation.SimpleExplanation, explanation.DetailedExplanation), nil
}

func init() {
	analyzeCmd.Flags().StringP("difficulty", "d", "intermediate", "difficulty level: beginner, intermediate, or advanced")
	analyzeCmd.Flags().StringP("md", "m", "", "save output to a file")
	analyzeCmd.Flags().String("format", "markdown", "saved-document format: markdown or yaml")

	rootCmd.AddCommand(analyzeCmd)
}
