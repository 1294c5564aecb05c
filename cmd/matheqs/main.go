// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the matheqs CLI, an AI-powered
// physics equation explainer.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/matheqs/internal/explain"
	"github.com/pdiddy/matheqs/internal/render"
	"github.com/pdiddy/matheqs/internal/secrets"
	"github.com/pdiddy/matheqs/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from the secrets directory at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the matheqs CLI. Invoked with a bare
// equation name (no subcommand) it runs the full explain/history/derivation
// walkthrough for that equation.
var rootCmd = &cobra.Command{
	Use:   "matheqs [equation]",
	Short: "AI-powered physics equation explainer",
	Long: `matheqs explains physics equations using a hosted LLM. It can produce a
layered explanation (simple, detailed, real-world), the historical background
of an equation, and its step-by-step mathematical derivation, on the terminal
or as Markdown and YAML documents.

Run a subcommand (explain, history, derivation, analyze, list) or pass an
equation name directly for a complete walkthrough.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runWalkthrough(cmd, args[0])
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./matheqs.yaml or ~/.config/matheqs/config.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets/", "directory of plain-text secret files")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("matheqs")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "matheqs"))
		}
	}

	viper.SetEnvPrefix("MATHEQS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newService builds the explainer service from viper config, the loaded
// secrets, and the GEMINI_API_KEY environment variable (which wins).
func newService() *explain.Service {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = loadedSecrets["gemini-api-key"]
	}

	cfg := types.ExplainerConfig{
		Model:       viper.GetString("model"),
		APIKey:      apiKey,
		Temperature: viper.GetFloat64("temperature"),
	}
	cfg.Timeout = viper.GetDuration("timeout")

	return explain.NewService(explain.NewGeminiBackend(cfg), cfg)
}

// runWalkthrough runs the three-stage analysis for a bare equation argument.
func runWalkthrough(cmd *cobra.Command, equation string) error {
	render.PrintHeader(os.Stdout, "Physics Equation Analysis", "A complete analysis of a physics equation.")
	fmt.Printf("Equation: %s\n\n", equation)

	fmt.Println("[1/3] Explaining the equation...")
	if err := explainEquation(cmd, equation, "", "", types.DifficultyIntermediate, ""); err != nil {
		return err
	}

	fmt.Println("\n[2/3] Fetching historical information...")
	if err := historyEquation(cmd, equation, false, ""); err != nil {
		return err
	}

	fmt.Println("\n[3/3] Fetching mathematical derivation...")
	return derivationEquation(cmd, equation, 0, false, "")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
