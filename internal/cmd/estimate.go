package cmd

import (
	"bufio"
	"encoding/json"
	"os"

	"ingredient-intelligence/internal/core/nutrition"

	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [ingredient lines...]",
	Short: "Estimate calories for ingredient lines",
	Long: `Parses each ingredient line ("2 1/2 cups flour", "500 g chicken breast"),
canonicalizes the name, converts the amount, and estimates calories from the
per-100g reference table. Lines are taken from the arguments, or from stdin
when no arguments are given. Prints the batch estimate as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := args
		if len(lines) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if line := scanner.Text(); line != "" {
					lines = append(lines, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
		}

		batch := nutrition.NewEstimator().EstimateBatch(lines)
		return printJSON(cmd, batch)
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

// printJSON writes indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
