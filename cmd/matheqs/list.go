// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/matheqs/internal/explain"
	"github.com/pdiddy/matheqs/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List example equations",
	Run: func(cmd *cobra.Command, args []string) {
		render.PrintHeader(os.Stdout, "MathEqs - Physics Equation Explainer", "Your AI-powered physics equation assistant.")

		fmt.Println(`This tool can analyze ANY physics equation. Just enter the equation name or
expression, and get detailed explanations, historical context, and mathematical
derivations powered by AI.`)
		fmt.Println()

		render.PrintList(os.Stdout, "Available Equations", explain.AvailableEquations())

		fmt.Println(`
Examples
--------
  matheqs "Newton's Second Law"
  matheqs analyze "E = mc²" -m einstein.md
  matheqs explain "F = ma"
  matheqs history "Einstein's Mass-Energy"
  matheqs derivation "Schrödinger's Equation"
  matheqs explain "F = ma" --md equation.md
  matheqs history "Wave Equation" -m wave_history.md
  matheqs analyze "Heat Conduction" -d beginner -m heat.md`)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
