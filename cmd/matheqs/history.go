// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/matheqs/internal/render"
)

var historyCmd = &cobra.Command{
	Use:   "history [equation name]",
	Short: "View the historical development of an equation",
	Long: `History fetches the historical record of a physics equation: when and by
whom it was discovered, the scientific context of the discovery, and its
impact and modern applications.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		mdPath, _ := cmd.Flags().GetString("md")

		render.PrintHeader(os.Stdout, "Equation History", "The historical background of a physics equation.")
		return historyEquation(cmd, args[0], jsonOutput, mdPath)
	},
}

func historyEquation(cmd *cobra.Command, name string, jsonOutput bool, mdPath string) error {
	fmt.Printf("Fetching history for: %s...\n", name)
	history, err := newService().History(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("fetching equation history: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(history)
	}

	doc := render.HistoryDocument(history)
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
	historyCmd.Flags().BoolP("json", "j", false, "output as JSON")
	historyCmd.Flags().StringP("md", "m", "", "save output to a Markdown file")

	rootCmd.AddCommand(historyCmd)
}
