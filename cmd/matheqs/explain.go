// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/matheqs/internal/render"
	"github.com/pdiddy/matheqs/pkg/types"
)

var explainCmd = &cobra.Command{
	Use:   "explain [equation]",
	Short: "Explain a physics equation",
	Long: `Explain produces a layered explanation of a physics equation: a simple
explanation, a detailed explanation, a real-world example, and key concepts.
The difficulty flag adjusts the target audience.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		contextHint, _ := cmd.Flags().GetString("context")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		mdPath, _ := cmd.Flags().GetString("md")

		level, err := types.ParseDifficulty(difficulty)
		if err != nil {
			return err
		}

		render.PrintHeader(os.Stdout, "Equation Explanation", "A detailed explanation of a physics equation.")
		return explainEquation(cmd, args[0], name, contextHint, level, mdPath)
	},
}

// explainEquation runs one explanation request and renders the result to
// the terminal, optionally saving a Markdown document.
func explainEquation(cmd *cobra.Command, equation, name, contextHint string, level types.Difficulty, mdPath string) error {
	req, err := types.NewExplanationRequest(equation, name, contextHint, level)
	if err != nil {
		return err
	}

	fmt.Println("Analyzing equation...")
	explanation, err := newService().Explain(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("explaining equation: %w", err)
	}

	doc := render.ExplanationDocument(explanation)
	render.PrintDocument(os.Stdout, doc)

	if mdPath != "" {
		path, err := render.Save(render.EnsureExtension(mdPath, ".md"), render.Markdown(doc))
		if err != nil {
			return err
		}
		fmt.Printf("Markdown file saved to: %s\n", path)
	}
	return nil
}

func init() {
	explainCmd.Flags().StringP("name", "n", "", "name of the equation")
	explainCmd.Flags().StringP("context", "c", "", "additional context about the equation")
	explainCmd.Flags().StringP("difficulty", "d", "intermediate", "difficulty level: beginner, intermediate, or advanced")
	explainCmd.Flags().StringP("md", "m", "", "save output to a Markdown file")

	rootCmd.AddCommand(explainCmd)
}
