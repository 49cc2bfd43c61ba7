package cmd

import (
	"fmt"
	"os"

	"ingredient-intelligence/internal/core/match"
	"ingredient-intelligence/internal/infrastructure/config"
	"ingredient-intelligence/internal/pkg/common"

	"github.com/spf13/cobra"
)

var cfg *config.Config

// rootCmd is the base command; subcommands expose the individual pipeline
// stages for batch use and debugging.
var rootCmd = &cobra.Command{
	Use:   "ingredient-intelligence",
	Short: "Ingredient intelligence pipeline for the recipe platform",
	Long: `Ingredient intelligence pipeline: parses and canonicalizes ingredient
lines across languages, estimates calories, matches recipes against
recognized ingredients, scores recipe search, and ranks "Tonight"
recommendations.

Each subcommand runs one pipeline stage over stdin/flags and prints JSON,
so stages can be exercised and scripted independently of the platform.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := common.InitLogger(cfg.LogLevel); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
}

// Execute runs the CLI. Errors are printed by cobra; we only set the exit
// code.
func Execute() {
	defer common.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// matcherFromConfig builds the configured matcher.
func matcherFromConfig() *match.Matcher {
	var strategy match.Strategy
	switch cfg.Match.Strategy {
	case "levenshtein":
		strategy = match.LevenshteinStrategy{Threshold: cfg.Match.Threshold}
	default:
		strategy = match.SubstringStrategy{}
	}
	return match.NewMatcher(strategy, cfg.Match.Staples)
}
