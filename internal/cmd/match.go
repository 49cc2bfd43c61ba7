package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"ingredient-intelligence/internal/core/match"
	"ingredient-intelligence/internal/core/pantry"
	"ingredient-intelligence/internal/core/vendors"

	"github.com/spf13/cobra"
)

var (
	matchRecipesFile string
	matchPantryFile  string
	matchAvailable   []string
	matchSort        string
	matchPrice       bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a recipe corpus against available ingredients",
	Long: `Loads a JSON recipe corpus ([{"id": ..., "ingredients": [...]}]) and
scores every recipe against the --have ingredient set, optionally extended
by a JSON pantry file ([{"name": ..., "quantity": ..., "unit": ...}]).
Pantry staples from the configuration never count as missing. With --price,
small missing baskets are priced through the vendor catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(matchRecipesFile)
		if err != nil {
			return fmt.Errorf("read recipes: %w", err)
		}
		var recipes []match.Recipe
		if err := json.Unmarshal(data, &recipes); err != nil {
			return fmt.Errorf("parse recipes: %w", err)
		}

		available := matchAvailable
		if matchPantryFile != "" {
			names, err := pantryNames(matchPantryFile)
			if err != nil {
				return err
			}
			available = append(available, names...)
		}

		policy, ok := match.ParseSortPolicy(matchSort)
		if !ok {
			return fmt.Errorf("unknown sort policy %q", matchSort)
		}

		var pricer match.Pricer
		if matchPrice {
			builder, err := basketBuilderFromConfig()
			if err != nil {
				return err
			}
			pricer = builder
		}

		results := matcherFromConfig().MatchAll(cmd.Context(), recipes, available, pricer, policy)
		return printJSON(cmd, results)
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchRecipesFile, "recipes", "", "path to the JSON recipe corpus (required)")
	matchCmd.Flags().StringVar(&matchPantryFile, "pantry", "", "path to a JSON pantry file merged into the available set")
	matchCmd.Flags().StringSliceVar(&matchAvailable, "have", nil, "available ingredient names")
	matchCmd.Flags().StringVar(&matchSort, "sort", "", "sort policy: closest, fewest, cheapest or perfect")
	matchCmd.Flags().BoolVar(&matchPrice, "price", false, "price small missing baskets through the vendor catalog")
	matchCmd.MarkFlagRequired("recipes")
	rootCmd.AddCommand(matchCmd)
}

// pantryNames loads a pantry file into a store and returns the canonical
// names, so the matcher sees the same view a long-lived host would.
func pantryNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pantry: %w", err)
	}
	var items []pantry.SyncItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse pantry: %w", err)
	}

	store := pantry.NewStore()
	store.Sync("local", items)
	return store.Names("local"), nil
}

// basketBuilderFromConfig wires the configured catalog (remote or mock,
// optionally cached) into a basket builder.
func basketBuilderFromConfig() (*vendors.Builder, error) {
	tier, err := vendors.ParseBudgetTier(cfg.Vendor.DefaultTier)
	if err != nil {
		return nil, err
	}

	var catalog vendors.Catalog
	if cfg.Vendor.Enabled {
		catalog = vendors.NewHTTPCatalog(cfg.Vendor.BaseURL, cfg.Vendor.Timeout)
	} else {
		catalog = &vendors.MockCatalog{}
	}
	if cfg.Cache.Enabled {
		catalog = vendors.NewCachedCatalog(catalog, cfg.Cache.TTL, cfg.Cache.MaxSize, cfg.Cache.CleanupInterval)
	}

	return vendors.NewBuilder(catalog, cfg.Vendor.DefaultID, tier, cfg.App.Currency), nil
}
