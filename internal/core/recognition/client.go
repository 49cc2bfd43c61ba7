package recognition

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"ingredient-intelligence/internal/core/vendors"
	"ingredient-intelligence/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// maxImageBytes bounds the payload we are willing to ship upstream; larger
// images should be downscaled by the caller.
const maxImageBytes = 8 << 20

// Client talks to the remote AI recognition service.
type Client struct {
	client  *resty.Client
	baseURL string
}

var _ Recogniser = (*Client)(nil)

// NewClient builds a recognition client against baseURL with apiKey
// attached as a bearer token.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(1)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}

	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

type recogniseRequest struct {
	Image       string `json:"image"`
	ContextHint string `json:"context_hint,omitempty"`
}

type normaliseRequest struct {
	Ingredients []string `json:"ingredients"`
	BudgetTier  string   `json:"budget_tier"`
	VendorName  string   `json:"vendor_name,omitempty"`
}

type normaliseResponse struct {
	Results []Normalised `json:"results"`
}

// Recognise ships the image as a base64 data URL and returns the detected
// ingredients. The image bytes themselves are never logged.
func (c *Client) Recognise(ctx context.Context, image []byte, contextHint string) (*Output, error) {
	if len(image) == 0 {
		return nil, common.NewError(common.ErrCodeInvalidRequest, "empty image", nil)
	}
	if len(image) > maxImageBytes {
		return nil, common.NewError(common.ErrCodeInvalidRequest,
			fmt.Sprintf("image exceeds %d bytes", maxImageBytes), nil)
	}

	payload := recogniseRequest{
		Image:       encodeDataURL(image),
		ContextHint: contextHint,
	}

	var result Output
	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post(c.baseURL + "/v1/recognise")
	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "recognition request failed", err)
	}
	if resp.IsError() {
		return nil, common.NewError(common.ErrCodeUpstream,
			fmt.Sprintf("recognition service status %d", resp.StatusCode()), nil)
	}

	if result.ProcessingTimeMs == 0 {
		result.ProcessingTimeMs = time.Since(start).Milliseconds()
	}

	common.LogInfo("image recognised",
		zap.Int("ingredients", len(result.Ingredients)),
		zap.Int64("processing_time_ms", result.ProcessingTimeMs),
		zap.Int("image_bytes", len(image)),
	)
	return &result, nil
}

// Normalise asks the upstream service to canonicalize raw ingredient
// strings with vendor and budget context.
func (c *Client) Normalise(ctx context.Context, raw []string, tier vendors.BudgetTier, vendorName string) ([]Normalised, error) {
	if len(raw) == 0 {
		return []Normalised{}, nil
	}

	var result normaliseResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(normaliseRequest{
			Ingredients: raw,
			BudgetTier:  string(tier),
			VendorName:  vendorName,
		}).
		SetResult(&result).
		Post(c.baseURL + "/v1/normalise")
	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "normalise request failed", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, common.NewError(common.ErrCodeUpstream, "normalise endpoint unavailable", nil)
	}
	if resp.IsError() {
		return nil, common.NewError(common.ErrCodeUpstream,
			fmt.Sprintf("normalise service status %d", resp.StatusCode()), nil)
	}
	return result.Results, nil
}

// encodeDataURL wraps raw image bytes in the data-URL form the recognition
// service expects. The mime type is advisory; the service sniffs content.
func encodeDataURL(image []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
}
