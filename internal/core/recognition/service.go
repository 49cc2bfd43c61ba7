package recognition

import (
	"context"
	"errors"
	"fmt"

	"ingredient-intelligence/internal/core/session"
	"ingredient-intelligence/internal/pkg/common"

	"go.uber.org/zap"
)

// ScanService runs the photo → recognition → session merge flow.
type ScanService struct {
	recogniser Recogniser
	sessions   session.Repository
}

func NewScanService(recogniser Recogniser, sessions session.Repository) *ScanService {
	return &ScanService{recogniser: recogniser, sessions: sessions}
}

// ScanResult is one completed scan: the merged session plus the raw
// recognition output for this image.
type ScanResult struct {
	Session    session.Session `json:"session"`
	Recognised Output          `json:"recognised"`
}

// Scan recognizes the image and merges the result into the session. An
// empty sessionID starts a fresh session; a non-empty unknown one surfaces
// session.ErrSessionNotFound rather than silently creating it.
func (s *ScanService) Scan(ctx context.Context, sessionID string, image []byte, contextHint string) (*ScanResult, error) {
	output, err := s.recogniser.Recognise(ctx, image, contextHint)
	if err != nil {
		return nil, fmt.Errorf("recognise image: %w", err)
	}

	var merged *session.Session
	if sessionID == "" {
		merged, err = s.sessions.Create(ctx, session.NewID(), output.Ingredients)
		if err != nil {
			// A uuid collision is effectively impossible; treat it as internal.
			if errors.Is(err, session.ErrSessionExists) {
				return nil, common.NewError(common.ErrCodeInternalError, "session id collision", err)
			}
			return nil, fmt.Errorf("create session: %w", err)
		}
	} else {
		merged, err = s.sessions.Merge(ctx, sessionID, output.Ingredients)
		if err != nil {
			return nil, fmt.Errorf("merge session %s: %w", sessionID, err)
		}
	}

	common.LogInfo("scan merged into session",
		zap.String("session_id", merged.ID),
		zap.Int("recognised", len(output.Ingredients)),
		zap.Int("session_ingredients", len(merged.Ingredients)),
		zap.Int("scans", merged.ScansCount),
	)
	return &ScanResult{Session: *merged, Recognised: *output}, nil
}
