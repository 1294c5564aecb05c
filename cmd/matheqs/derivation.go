// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/matheqs/internal/render"
)

var derivationCmd = &cobra.Command{
	Use:   "derivation [equation name]",
	Short: "View the mathematical derivation of an equation",
	Long: `Derivation fetches the step-by-step mathematical derivation of a physics
equation: the starting principles, each derivation step with its expression
and reasoning, and the equation's limitations.

Use --step to show a single step of the derivation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		step, _ := cmd.Flags().GetInt("step")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		mdPath, _ := cmd.Flags().GetString("md")

		render.PrintHeader(os.Stdout, "Equation Derivation", "The mathematical derivation of a physics equation.")
		return derivationEquation(cmd, args[0], step, jsonOutput, mdPath)
	},
}

func derivationEquation(cmd *cobra.Command, name string, step int, jsonOutput bool, mdPath string) error {
	fmt.Printf("Fetching derivation for: %s...\n", name)
	derivation, err := newService().Derivation(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("fetching equation derivation: %w", err)
	}

	if step > 0 {
		for _, s := range derivation.DerivationSteps {
			if s.StepNumber == step {
				render.PrintSection(os.Stdout, fmt.Sprintf("Step %d: %s", s.StepNumber, s.Title), s.Description)
				if s.MathematicalExpression != "" {
					fmt.Printf("    %s\n\n", s.MathematicalExpression)
				}
				return nil
			}
		}
		return fmt.Errorf("derivation has no step %d (%d steps total)", step, len(derivation.DerivationSteps))
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(derivation)
	}

	doc := render.DerivationDocument(derivation)
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
	derivationCmd.Flags().IntP("step", "s", 0, "show a specific derivation step")
	derivationCmd.Flags().BoolP("json", "j", false, "output as JSON")
	derivationCmd.Flags().StringP("md", "m", "", "save output to a Markdown file")

	rootCmd.AddCommand(derivationCmd)
}
