package vendors

import (
	"context"
	"fmt"
	"time"

	"ingredient-intelligence/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// HTTPCatalog talks to a remote vendor catalog service. The wire contract is
// a single search endpoint returning a product array.
type HTTPCatalog struct {
	client  *resty.Client
	baseURL string
}

var _ Catalog = (*HTTPCatalog)(nil)

// NewHTTPCatalog builds a catalog client against baseURL with the given
// request timeout.
func NewHTTPCatalog(baseURL string, timeout time.Duration) *HTTPCatalog {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond)

	return &HTTPCatalog{
		client:  client,
		baseURL: baseURL,
	}
}

type catalogSearchResponse struct {
	Products []Product `json:"products"`
}

// Search queries the remote catalog. An upstream non-2xx status is an error;
// a 2xx with no products is a legitimate empty result.
func (c *HTTPCatalog) Search(ctx context.Context, canonicalName, category, vendorID string, tier BudgetTier) ([]Product, error) {
	var result catalogSearchResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":      canonicalName,
			"category":  category,
			"vendor_id": vendorID,
			"tier":      string(tier),
		}).
		SetResult(&result).
		Get(c.baseURL + "/v1/products/search")
	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "vendor catalog request failed", err)
	}

	if resp.IsError() {
		common.LogWarn("vendor catalog returned error status",
			zap.Int("status", resp.StatusCode()),
			zap.String("name", canonicalName),
			zap.String("vendor_id", vendorID),
		)
		return nil, common.NewError(common.ErrCodeUpstream,
			fmt.Sprintf("vendor catalog status %d", resp.StatusCode()), nil)
	}

	return result.Products, nil
}
