package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"ingredient-intelligence/internal/core/ingredient"
	"ingredient-intelligence/internal/core/search"

	"github.com/spf13/cobra"
)

var (
	searchCorpusFile string
	searchLimit      int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Score a recipe corpus against a search query",
	Long: `Expands the query through the multilingual alias table (so "rosii"
finds tomato recipes) and scores each document of the JSON corpus with
idf-weighted field matching. Prints the ranked hits as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(searchCorpusFile)
		if err != nil {
			return fmt.Errorf("read corpus: %w", err)
		}
		var docs []search.Document
		if err := json.Unmarshal(data, &docs); err != nil {
			return fmt.Errorf("parse corpus: %w", err)
		}

		scorer := search.NewScorer(ingredient.Expand)
		hits := scorer.Score(docs, args[0], searchLimit)
		return printJSON(cmd, hits)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchCorpusFile, "corpus", "", "path to the JSON document corpus (required)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum number of hits")
	searchCmd.MarkFlagRequired("corpus")
	rootCmd.AddCommand(searchCmd)
}
