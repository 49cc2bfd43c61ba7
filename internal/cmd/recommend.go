package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"ingredient-intelligence/internal/core/recommend"

	"github.com/spf13/cobra"
)

var (
	recommendCandidatesFile string
	recommendSavedApproach  []string
	recommendLimit          int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: `Rank "Tonight" recommendation candidates`,
	Long: `Scores a JSON candidate set through the saved / similar-approach /
trending buckets and prints the ranked recommendations. When personalized
ranking yields nothing, the trending fallback is applied so the surface is
never empty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(recommendCandidatesFile)
		if err != nil {
			return fmt.Errorf("read candidates: %w", err)
		}
		var candidates []recommend.Candidate
		if err := json.Unmarshal(data, &candidates); err != nil {
			return fmt.Errorf("parse candidates: %w", err)
		}

		saved := make(map[string]struct{}, len(recommendSavedApproach))
		for _, id := range recommendSavedApproach {
			saved[id] = struct{}{}
		}

		recs := recommend.Rank(candidates, saved, recommendLimit)
		if len(recs) == 0 {
			recs = recommend.TrendingFallback(candidates, recommendLimit)
		}
		return printJSON(cmd, recs)
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendCandidatesFile, "candidates", "", "path to the JSON candidate set (required)")
	recommendCmd.Flags().StringSliceVar(&recommendSavedApproach, "saved-approach", nil, "approach ids the user has saved into")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 10, "maximum number of recommendations")
	recommendCmd.MarkFlagRequired("candidates")
	rootCmd.AddCommand(recommendCmd)
}
