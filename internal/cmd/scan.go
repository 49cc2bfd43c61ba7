package cmd

import (
	"fmt"
	"os"
	"sort"

	"ingredient-intelligence/internal/core/recognition"
	"ingredient-intelligence/internal/core/session"
	"ingredient-intelligence/internal/core/vendors"

	"github.com/spf13/cobra"
)

var (
	scanSessionID string
	scanHint      string
	scanBasket    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <image file>",
	Short: "Recognize ingredients in a photo and merge them into a session",
	Long: `Runs the photo through the recognition collaborator (the deterministic
mock unless recognition is enabled in the configuration) and merges the
result into a recognition session. With --session the scan extends an
existing session; repeated scans accumulate the highest-confidence entry
per canonical ingredient. With --basket the recognized ingredients are
priced into a vendor basket.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		var recogniser recognition.Recogniser
		if cfg.Recognition.Enabled {
			recogniser = recognition.NewClient(cfg.Recognition.BaseURL, cfg.Recognition.APIKey, cfg.Recognition.Timeout)
		} else {
			recogniser = &recognition.MockRecogniser{}
		}

		sessions, cleanup, err := sessionRepositoryFromConfig()
		if err != nil {
			return err
		}
		defer cleanup()

		service := recognition.NewScanService(recogniser, sessions)
		result, err := service.Scan(cmd.Context(), scanSessionID, image, scanHint)
		if err != nil {
			return err
		}

		if !scanBasket {
			return printJSON(cmd, result)
		}

		builder, err := basketBuilderFromConfig()
		if err != nil {
			return err
		}
		requests := make([]vendors.Request, 0, len(result.Session.Ingredients))
		for name := range result.Session.Ingredients {
			requests = append(requests, vendors.Request{CanonicalName: name})
		}
		sort.Slice(requests, func(i, j int) bool {
			return requests[i].CanonicalName < requests[j].CanonicalName
		})

		return printJSON(cmd, struct {
			*recognition.ScanResult
			Basket vendors.Basket `json:"basket"`
		}{result, builder.Build(cmd.Context(), requests)})
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanSessionID, "session", "", "existing session id to extend")
	scanCmd.Flags().StringVar(&scanHint, "hint", "", "context hint passed to the recognizer")
	scanCmd.Flags().BoolVar(&scanBasket, "basket", false, "price the session's ingredients into a vendor basket")
	rootCmd.AddCommand(scanCmd)
}

// sessionRepositoryFromConfig picks the Redis-backed store when enabled,
// otherwise process memory. The cleanup closes the Redis connection.
func sessionRepositoryFromConfig() (session.Repository, func(), error) {
	if !cfg.Redis.Enabled {
		return session.NewMemoryRepository(), func() {}, nil
	}
	repo, err := session.NewRedisRepository(cfg.Redis.Addr, cfg.Redis.TTL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect session store: %w", err)
	}
	return repo, func() { repo.Close() }, nil
}
